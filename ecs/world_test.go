package ecs

import (
	"testing"

	"github.com/milk9111/tilewalk/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				if !e.Valid() || !w.IsAlive(e) {
					t.Fatalf("created entity should be valid and alive")
				}
				ents = append(ents, e)
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("double destroy should return false")
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)
	second := w.CreateEntity()

	if first == second {
		t.Fatalf("recycled handle must differ from the dead one")
	}
	if w.IsAlive(first) {
		t.Fatalf("stale handle should stay dead after id reuse")
	}
	if !w.IsAlive(second) {
		t.Fatalf("recycled entity should be alive")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	type position struct{ X, Y int }
	type health struct{ HP int }

	positionComponent := component.NewComponent[position]()
	healthComponent := component.NewComponent[health]()

	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, positionComponent, &position{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e2, positionComponent, &position{X: 2}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e2, healthComponent, &health{HP: 10}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, e3, healthComponent, &health{HP: 20}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	t.Run("get_returns_stored_pointer", func(t *testing.T) {
		p, ok := Get(w, e1, positionComponent)
		if !ok || p.X != 1 {
			t.Fatalf("Get = (%+v, %v), want X=1", p, ok)
		}
		p.X = 99
		p2, _ := Get(w, e1, positionComponent)
		if p2.X != 99 {
			t.Fatalf("components are shared by pointer; got X=%d", p2.X)
		}
	})

	t.Run("query_intersection", func(t *testing.T) {
		got := w.Query(positionComponent.ID(), healthComponent.ID())
		if len(got) != 1 || got[0] != e2 {
			t.Fatalf("Query = %v, want [%v]", got, e2)
		}
	})

	t.Run("first", func(t *testing.T) {
		e, ok := w.First(positionComponent.ID())
		if !ok || (e != e1 && e != e2) {
			t.Fatalf("First = (%v, %v), want a position-bearing entity", e, ok)
		}
	})

	t.Run("remove", func(t *testing.T) {
		if !Remove(w, e2, healthComponent) {
			t.Fatalf("Remove should report true for present component")
		}
		if Has(w, e2, healthComponent) {
			t.Fatalf("component should be gone after Remove")
		}
		if Remove(w, e2, healthComponent) {
			t.Fatalf("second Remove should report false")
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		w.DestroyEntity(e1)
		if _, ok := Get(w, e1, positionComponent); ok {
			t.Fatalf("dead entity should have no components")
		}
		got := w.Query(positionComponent.ID())
		for _, e := range got {
			if e == e1 {
				t.Fatalf("dead entity should not appear in queries")
			}
		}
	})
}

func TestSingle(t *testing.T) {
	type tag struct{}
	tagComponent := component.NewComponent[tag]()

	w := NewWorld()
	if _, ok := w.Single(tagComponent.ID()); ok {
		t.Fatalf("Single should report false on an empty table")
	}

	e1 := w.CreateEntity()
	if err := Add(w, e1, tagComponent, &tag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got, ok := w.Single(tagComponent.ID()); !ok || got != e1 {
		t.Fatalf("Single = (%v, %v), want (%v, true)", got, ok, e1)
	}

	e2 := w.CreateEntity()
	if err := Add(w, e2, tagComponent, &tag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := w.Single(tagComponent.ID()); ok {
		t.Fatalf("Single should report false when two entities carry the tag")
	}

	w.DestroyEntity(e2)
	if got, ok := w.Single(tagComponent.ID()); !ok || got != e1 {
		t.Fatalf("Single after destroy = (%v, %v), want (%v, true)", got, ok, e1)
	}
}

func TestAddErrors(t *testing.T) {
	type marker struct{}
	markerComponent := component.NewComponent[marker]()

	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	if err := Add(w, e, markerComponent, &marker{}); err != component.ErrEntityNotAlive {
		t.Fatalf("Add on dead entity = %v, want ErrEntityNotAlive", err)
	}

	alive := w.CreateEntity()
	if err := Add(w, alive, markerComponent, nil); err != component.ErrNilComponent {
		t.Fatalf("Add nil = %v, want ErrNilComponent", err)
	}
}

func TestForEachSnapshotAllowsMutation(t *testing.T) {
	type counter struct{ N int }
	counterComponent := component.NewComponent[counter]()

	w := NewWorld()
	for i := 0; i < 4; i++ {
		e := w.CreateEntity()
		if err := Add(w, e, counterComponent, &counter{N: i}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	visited := 0
	ForEach(w, counterComponent, func(e Entity, c *counter) {
		visited++
		// Removing mid-iteration must not panic or skip live entries.
		Remove(w, e, counterComponent)
	})
	if visited != 4 {
		t.Fatalf("visited %d entities, want 4", visited)
	}
	if w.Count(counterComponent.ID()) != 0 {
		t.Fatalf("all components should have been removed")
	}
}
