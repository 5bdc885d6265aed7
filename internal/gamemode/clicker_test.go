package gamemode

import (
	"errors"
	"math/rand"
	"testing"

	"clickfruit/internal/entity"
)

func defaultOptions() Options {
	return Options{Width: 800, Height: 600, Size: 100, Count: 1}
}

func newMode(t *testing.T, opts Options, seed int64) *ClickMode {
	t.Helper()
	m, err := New(opts, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestFreshStart(t *testing.T) {
	m := newMode(t, defaultOptions(), 1)

	if m.State() != StateRunning {
		t.Errorf("expected running, got %v", m.State())
	}
	if m.Score() != 0 {
		t.Errorf("expected score 0, got %d", m.Score())
	}
	if n := len(m.Targets()); n != 1 {
		t.Errorf("expected 1 target, got %d", n)
	}
}

func TestPressTopLeftPixelScores(t *testing.T) {
	m := newMode(t, defaultOptions(), 2)
	old := m.Targets()[0]

	hit, ok := m.Press(old.X, old.Y)
	if !ok {
		t.Fatalf("press at top-left (%d,%d) should hit", old.X, old.Y)
	}
	if m.Score() != 1 || hit.Score != 1 {
		t.Errorf("expected score 1, got %d (hit reports %d)", m.Score(), hit.Score)
	}
	if hit.Removed.ID != old.ID {
		t.Errorf("removed %v, expected %v", hit.Removed.ID, old.ID)
	}

	targets := m.Targets()
	if len(targets) != 1 {
		t.Fatalf("expected 1 target after hit, got %d", len(targets))
	}
	if targets[0].ID == old.ID {
		t.Error("old target still present")
	}
	if targets[0].ID != hit.Spawned.ID {
		t.Error("spawned target not in container")
	}
}

func TestMissIsIdempotent(t *testing.T) {
	// Margin keeps every box away from the origin.
	opts := defaultOptions()
	opts.Margin = 50
	m := newMode(t, opts, 3)
	before := m.Targets()

	for i := 0; i < 20; i++ {
		if _, ok := m.Press(0, 0); ok {
			t.Fatal("press at origin should miss")
		}
	}

	if m.Score() != 0 {
		t.Errorf("expected score 0, got %d", m.Score())
	}
	after := m.Targets()
	if len(after) != len(before) || after[0] != before[0] {
		t.Errorf("container changed on miss: %+v -> %+v", before, after)
	}
}

func TestSpawnBounds(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"default window", defaultOptions()},
		{"with margin", Options{Width: 800, Height: 600, Size: 100, Margin: 50, Count: 1}},
		{"exact fit", Options{Width: 100, Height: 100, Size: 100, Count: 1}},
		{"many targets", Options{Width: 320, Height: 240, Size: 32, Count: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newMode(t, tc.opts, 42)
			lo := tc.opts.Margin
			maxX := tc.opts.Width - tc.opts.Size - lo
			maxY := tc.opts.Height - tc.opts.Size - lo

			for i := 0; i < 500; i++ {
				tg := m.spawn()
				if tg.X < lo || tg.X > maxX || tg.Y < lo || tg.Y > maxY {
					t.Fatalf("spawn (%d,%d) outside [%d..%d]x[%d..%d]", tg.X, tg.Y, lo, maxX, lo, maxY)
				}
				if tg.Size != tc.opts.Size {
					t.Fatalf("spawned size %d, want %d", tg.Size, tc.opts.Size)
				}
			}
		})
	}
}

func TestScoreMonotonicAndContainerSizeInvariant(t *testing.T) {
	m := newMode(t, defaultOptions(), 7)
	rng := rand.New(rand.NewSource(99))

	prev := 0
	for i := 0; i < 1000; i++ {
		var x, y int
		if i%3 == 0 {
			tg := m.Targets()[0]
			x, y = tg.X+rng.Intn(tg.Size), tg.Y+rng.Intn(tg.Size)
		} else {
			x, y = rng.Intn(800), rng.Intn(600)
		}

		_, ok := m.Press(x, y)
		m.Tick()

		want := prev
		if ok {
			want++
		}
		if m.Score() != want {
			t.Fatalf("step %d: score %d, want %d", i, m.Score(), want)
		}
		if n := len(m.Targets()); n != 1 {
			t.Fatalf("step %d: container size %d", i, n)
		}
		prev = m.Score()
	}
	if m.Ticks() != 1000 {
		t.Errorf("expected 1000 ticks, got %d", m.Ticks())
	}
}

func TestPressRemovesOnlyFirstMatch(t *testing.T) {
	m := newMode(t, Options{Width: 800, Height: 600, Size: 100, Count: 2}, 5)

	// Stack both targets on the same spot.
	first := entity.NewTarget(100, 100, 100)
	second := entity.NewTarget(100, 100, 100)
	m.targets = []entity.Target{first, second}

	hit, ok := m.Press(150, 150)
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Removed.ID != first.ID {
		t.Errorf("removed %v, want first target %v", hit.Removed.ID, first.ID)
	}
	if m.Score() != 1 {
		t.Errorf("expected score 1, got %d", m.Score())
	}

	targets := m.Targets()
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	if targets[0].ID != second.ID {
		t.Error("second target should now lead the container")
	}
	if targets[1].ID != hit.Spawned.ID {
		t.Error("spawned target should be appended")
	}
}

func TestQuitStopsEverything(t *testing.T) {
	m := newMode(t, defaultOptions(), 11)
	tg := m.Targets()[0]

	m.Quit()
	if m.State() != StateTerminated {
		t.Fatalf("expected terminated, got %v", m.State())
	}

	if _, ok := m.Press(tg.X, tg.Y); ok {
		t.Error("press after quit should be ignored")
	}
	m.Tick()
	if m.Score() != 0 || m.Ticks() != 0 {
		t.Errorf("state changed after quit: score=%d ticks=%d", m.Score(), m.Ticks())
	}
}

func TestDeterministicSpawns(t *testing.T) {
	a := newMode(t, defaultOptions(), 1234)
	b := newMode(t, defaultOptions(), 1234)

	for i := 0; i < 50; i++ {
		ta, tb := a.Targets()[0], b.Targets()[0]
		if ta.X != tb.X || ta.Y != tb.Y {
			t.Fatalf("step %d: (%d,%d) vs (%d,%d)", i, ta.X, ta.Y, tb.X, tb.Y)
		}
		a.Press(ta.X, ta.Y)
		b.Press(tb.X, tb.Y)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		noRoom bool
	}{
		{"zero size", Options{Width: 800, Height: 600, Size: 0, Count: 1}, true},
		{"box wider than window", Options{Width: 50, Height: 600, Size: 100, Count: 1}, true},
		{"margin too large", Options{Width: 800, Height: 600, Size: 100, Margin: 260, Count: 1}, true},
		{"negative margin", Options{Width: 800, Height: 600, Size: 100, Margin: -1, Count: 1}, true},
		{"no targets", Options{Width: 800, Height: 600, Size: 100, Count: 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts, rand.New(rand.NewSource(1)))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrNoRoom); got != tc.noRoom {
				t.Errorf("errors.Is(err, ErrNoRoom) = %v, want %v (err: %v)", got, tc.noRoom, err)
			}
		})
	}
}
