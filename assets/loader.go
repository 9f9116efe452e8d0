// Package assets loads game assets off the main loop and exposes per-asset
// and aggregate load states for the loading-screen gate to poll.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sync"
)

// State is the load state of a single tracked asset.
type State int

const (
	StatePending State = iota
	StateLoaded
	StateFailed
)

// GroupState aggregates every tracked asset. Failed dominates: one failed
// asset keeps the group failed forever.
type GroupState int

const (
	GroupPending GroupState = iota
	GroupLoaded
	GroupFailed
)

// LoadFunc produces the decoded asset value. It runs on its own goroutine.
type LoadFunc func() (any, error)

type entry struct {
	load   LoadFunc
	state  State
	result any
	err    error
}

// Loader tracks named assets and loads each on its own goroutine once
// started. All queries are safe from the main loop while loads run.
type Loader struct {
	mu      sync.Mutex
	assets  map[string]*entry
	order   []string
	started bool
}

func NewLoader() *Loader {
	return &Loader{assets: map[string]*entry{}}
}

// Track registers an asset under name. Tracking after Start is a no-op.
func (l *Loader) Track(name string, load LoadFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || name == "" || load == nil {
		return
	}
	if _, ok := l.assets[name]; ok {
		return
	}
	l.assets[name] = &entry{load: load}
	l.order = append(l.order, name)
}

// Start kicks off one load goroutine per tracked asset. Idempotent.
func (l *Loader) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return
	}
	l.started = true
	for name, ent := range l.assets {
		go l.run(name, ent.load)
	}
}

func (l *Loader) run(name string, load LoadFunc) {
	result, err := load()

	l.mu.Lock()
	defer l.mu.Unlock()
	ent := l.assets[name]
	if err != nil {
		ent.state = StateFailed
		ent.err = err
		return
	}
	ent.state = StateLoaded
	ent.result = result
}

// State returns the load state of one asset.
func (l *Loader) State(name string) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ent, ok := l.assets[name]; ok {
		return ent.state
	}
	return StateFailed
}

// Err returns the load error for a failed asset.
func (l *Loader) Err(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ent, ok := l.assets[name]; ok {
		return ent.err
	}
	return fmt.Errorf("assets: unknown asset %q", name)
}

// Result returns the decoded value of a loaded asset.
func (l *Loader) Result(name string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ent, ok := l.assets[name]
	if !ok || ent.state != StateLoaded {
		return nil, false
	}
	return ent.result, true
}

// GroupState returns the aggregate state across all tracked assets.
func (l *Loader) GroupState() GroupState {
	l.mu.Lock()
	defer l.mu.Unlock()
	loaded := 0
	for _, ent := range l.assets {
		switch ent.state {
		case StateFailed:
			return GroupFailed
		case StateLoaded:
			loaded++
		}
	}
	if loaded == len(l.assets) && len(l.assets) > 0 {
		return GroupLoaded
	}
	return GroupPending
}

// Len returns how many assets are tracked.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.assets)
}

// Errors returns every load error, keyed by asset name.
func (l *Loader) Errors() map[string]error {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := map[string]error{}
	for name, ent := range l.assets {
		if ent.err != nil {
			out[name] = ent.err
		}
	}
	return out
}

// LoadImageFile returns a LoadFunc that reads and decodes a PNG from disk.
// The decoded image.Image is converted to a GPU image on the main loop once
// loading finishes.
func LoadImageFile(path string) LoadFunc {
	return func() (any, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", path, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", path, err)
		}
		return img, nil
	}
}
