package ecs

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/milk9111/arcade/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

// spawn creates n entities, each carrying a Transform at x = index.
func spawn(t *testing.T, w *World, n int) []Entity {
	t.Helper()
	ents := make([]Entity, n)
	for i := range ents {
		ents[i] = CreateEntity(w)
		if err := Add(w, ents[i], component.TransformComponent.Kind(), &component.Transform{X: float64(i)}); err != nil {
			t.Fatalf("add transform: %v", err)
		}
	}
	return ents
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
	}{
		{"empty", 0, nil},
		{"destroy_only", 1, []int{0}},
		{"destroy_middle", 3, []int{1}},
		{"destroy_ends", 4, []int{0, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := spawn(t, w, c.create)
			for _, i := range c.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("destroy %d failed", i)
				}
				if IsAlive(w, ents[i]) {
					t.Fatalf("entity %d still alive", i)
				}
				if Has(w, ents[i], component.TransformComponent.Kind()) {
					t.Fatalf("entity %d kept its transform", i)
				}
			}
			want := c.create - len(c.destroy)
			if got := len(Entities(w)); got != want {
				t.Fatalf("expected %d entities, got %d", want, got)
			}
			if got := Count(w, component.TransformComponent.Kind()); got != want {
				t.Fatalf("expected %d transforms, got %d", want, got)
			}
		})
	}
}

func TestGetReturnsStoredPointer(t *testing.T) {
	w := NewWorld()
	e := spawn(t, w, 1)[0]

	tr, ok := Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("expected transform")
	}
	tr.X = 42

	again, _ := Get(w, e, component.TransformComponent.Kind())
	if again.X != 42 {
		t.Fatalf("expected mutation through pointer, got %v", again.X)
	}

	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 7}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	again, _ = Get(w, e, component.TransformComponent.Kind())
	if again.X != 7 {
		t.Fatalf("expected replaced value 7, got %v", again.X)
	}

	if !Remove(w, e, component.TransformComponent.Kind()) {
		t.Fatalf("remove failed")
	}
	if Remove(w, e, component.TransformComponent.Kind()) {
		t.Fatalf("second remove should report false")
	}
	if _, ok := Get(w, e, component.TransformComponent.Kind()); ok {
		t.Fatalf("expected transform gone")
	}
}

func TestQueriesIntersect(t *testing.T) {
	tr := component.TransformComponent.Kind()
	body := component.BodyComponent.Kind()
	enemy := component.EnemyComponent.Kind()
	pickup := component.PickupComponent.Kind()

	// has lists, per entity, which of body/enemy/pickup it carries on top of a transform.
	has := []string{"", "b", "be", "bep", "ep", "p"}

	setup := func(t *testing.T) (*World, []Entity) {
		w := NewWorld()
		ents := spawn(t, w, len(has))
		for i, set := range has {
			if strings.Contains(set, "b") {
				_ = Add(w, ents[i], body, &component.Body{Width: 1})
			}
			if strings.Contains(set, "e") {
				_ = Add(w, ents[i], enemy, &component.Enemy{})
			}
			if strings.Contains(set, "p") {
				_ = Add(w, ents[i], pickup, &component.Pickup{})
			}
		}
		return w, ents
	}

	cases := []struct {
		name string
		run  func(w *World) []Entity
		want []int
	}{
		{"one", func(w *World) (out []Entity) {
			ForEach(w, pickup, func(e Entity, _ *component.Pickup) { out = append(out, e) })
			return
		}, []int{3, 4, 5}},
		{"two", func(w *World) (out []Entity) {
			ForEach2(w, tr, body, func(e Entity, _ *component.Transform, _ *component.Body) { out = append(out, e) })
			return
		}, []int{1, 2, 3}},
		{"three", func(w *World) (out []Entity) {
			ForEach3(w, tr, body, enemy, func(e Entity, _ *component.Transform, _ *component.Body, _ *component.Enemy) {
				out = append(out, e)
			})
			return
		}, []int{2, 3}},
		{"four", func(w *World) (out []Entity) {
			ForEach4(w, tr, body, enemy, pickup, func(e Entity, _ *component.Transform, _ *component.Body, _ *component.Enemy, _ *component.Pickup) {
				out = append(out, e)
			})
			return
		}, []int{3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, ents := setup(t)
			got := c.run(w)
			if len(got) != len(c.want) {
				t.Fatalf("expected %d matches, got %v", len(c.want), got)
			}
			for _, i := range c.want {
				if !slices.Contains(got, ents[i]) {
					t.Fatalf("expected entity %d in %v", i, got)
				}
			}

			for _, i := range c.want {
				DestroyEntity(w, ents[i])
			}
			if got := c.run(w); len(got) != 0 {
				t.Fatalf("expected no matches after destroy, got %v", got)
			}
		})
	}
}

func TestQueryWithUnusedKind(t *testing.T) {
	w := NewWorld()
	spawn(t, w, 2)
	unused := component.NewComponentKind[int]()

	calls := 0
	ForEach2(w, component.TransformComponent.Kind(), unused, func(Entity, *component.Transform, *int) { calls++ })
	ForEach(w, unused, func(Entity, *int) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no calls, got %d", calls)
	}
	if Count(w, unused) != 0 {
		t.Fatalf("expected zero count for unused kind")
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !DestroyEntity(w, old) {
		t.Fatalf("destroy failed")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("expected a new generation for the recycled slot")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity must not inherit components")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
	if DestroyEntity(w, old) {
		t.Fatalf("destroying a stale handle should fail")
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); err == nil || !strings.Contains(err.Error(), "int") {
		t.Fatalf("expected the kind name in %v", err)
	}
}

func TestDestroyDuringForEach(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	var ents []Entity
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		ents = append(ents, e)
	}

	visited := 0
	ForEach(w, k, func(e Entity, v *int) {
		visited++
		// Kill the last entity while the first is being visited.
		if *v == 0 {
			DestroyEntity(w, ents[4])
		}
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if Count(w, k) != 4 {
		t.Fatalf("expected 4 stored components, got %d", Count(w, k))
	}
}

func TestFirstAndForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	if _, ok := First(w, ka); ok {
		t.Fatalf("expected no result on empty world")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	_ = Add(w, e1, ka, intPtr(1))
	_ = Add(w, e2, ka, intPtr(2))
	_ = Add(w, e2, kb, stringPtr("two"))

	e, ok := First(w, ka)
	if !ok || e != e1 {
		t.Fatalf("expected e1, got %v ok=%v", e, ok)
	}

	var got []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, s *string) {
		if *s != "two" {
			t.Fatalf("unexpected value %q", *s)
		}
		got = append(got, e)
	})
	if len(got) != 1 || got[0] != e2 {
		t.Fatalf("expected only e2, got %v", got)
	}
}

func TestEventQueueAndScheduler(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(w *World) {
			order = append(order, "a")
			w.Events().Push(Event{Kind: EventCoin, Value: 10})
		}),
		nil,
		SystemFunc(func(w *World) { order = append(order, "b") }),
	)
	if len(s.Systems()) != 2 {
		t.Fatalf("expected nil system to be dropped, got %d", len(s.Systems()))
	}

	s.Update(w)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Kind != EventCoin || events[0].Value != 10 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Events().Len() != 0 || w.Events().Drain() != nil {
		t.Fatalf("expected queue to be empty after drain")
	}
}
