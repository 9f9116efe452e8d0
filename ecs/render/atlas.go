package render

import (
	"fmt"
	"image"
)

// Atlas describes a texture sheet cut into a fixed grid of sprite cells,
// indexed 0-based, left-to-right then top-to-bottom. The pixels themselves
// live in the image registry; the atlas only carries the geometry.
type Atlas struct {
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
}

// NewAtlas describes a cols x rows grid of cellW x cellH cells.
func NewAtlas(cellW, cellH, cols, rows int) (*Atlas, error) {
	if cellW <= 0 || cellH <= 0 || cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("render: invalid atlas grid %dx%d cells of %dx%d", cols, rows, cellW, cellH)
	}
	return &Atlas{CellWidth: cellW, CellHeight: cellH, Columns: cols, Rows: rows}, nil
}

// Fits checks that an image of the given bounds covers the full cell grid.
func (a *Atlas) Fits(bounds image.Rectangle) error {
	if bounds.Dx() < a.Columns*a.CellWidth || bounds.Dy() < a.Rows*a.CellHeight {
		return fmt.Errorf("render: atlas image %dx%d too small for %dx%d grid of %dx%d cells",
			bounds.Dx(), bounds.Dy(), a.Columns, a.Rows, a.CellWidth, a.CellHeight)
	}
	return nil
}

// SpriteCount returns the number of cells in the atlas.
func (a *Atlas) SpriteCount() int {
	return a.Columns * a.Rows
}

// SourceRect returns the pixel rectangle of the indexed cell.
func (a *Atlas) SourceRect(index int) (image.Rectangle, error) {
	if index < 0 || index >= a.SpriteCount() {
		return image.Rectangle{}, fmt.Errorf("render: sprite index %d out of range [0, %d)", index, a.SpriteCount())
	}
	col := index % a.Columns
	row := index / a.Columns
	x := col * a.CellWidth
	y := row * a.CellHeight
	return image.Rect(x, y, x+a.CellWidth, y+a.CellHeight), nil
}
