package gamemode

import (
	"errors"
	"fmt"
	"math/rand"

	"clickfruit/internal/entity"
)

// ErrNoRoom is returned when a target cannot fit inside the playfield.
var ErrNoRoom = errors.New("target does not fit in playfield")

type State int

const (
	StateRunning    State = iota // Accepting presses
	StateTerminated              // Quit received, loop must stop
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options fixes the playfield for the lifetime of a ClickMode.
type Options struct {
	Width, Height int // Playfield size in logical units
	Size          int // Target box edge
	Margin        int // Minimum distance between a target and the playfield edge
	Count         int // Targets kept on screen
}

// Hit describes one successful press.
type Hit struct {
	Removed entity.Target
	Spawned entity.Target
	Score   int
}

// ClickMode owns the active targets and the score.
// It is driven by a single loop and is not safe for concurrent use.
type ClickMode struct {
	opts    Options
	rng     *rand.Rand
	state   State
	targets []entity.Target
	score   int
	ticks   int
}

func New(opts Options, rng *rand.Rand) (*ClickMode, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("target size %d: %w", opts.Size, ErrNoRoom)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("negative margin %d: %w", opts.Margin, ErrNoRoom)
	}
	if opts.Width-opts.Size-2*opts.Margin < 0 || opts.Height-opts.Size-2*opts.Margin < 0 {
		return nil, fmt.Errorf("%dx%d box with margin %d in %dx%d playfield: %w",
			opts.Size, opts.Size, opts.Margin, opts.Width, opts.Height, ErrNoRoom)
	}
	if opts.Count < 1 {
		return nil, fmt.Errorf("target count must be at least 1, got %d", opts.Count)
	}

	m := &ClickMode{
		opts:    opts,
		rng:     rng,
		state:   StateRunning,
		targets: make([]entity.Target, 0, opts.Count),
	}
	for i := 0; i < opts.Count; i++ {
		m.targets = append(m.targets, m.spawn())
	}
	return m, nil
}

// spawn picks a top-left corner uniformly so the box stays inside the margins.
func (m *ClickMode) spawn() entity.Target {
	lo := m.opts.Margin
	x := lo + m.rng.Intn(m.opts.Width-m.opts.Size-2*lo+1)
	y := lo + m.rng.Intn(m.opts.Height-m.opts.Size-2*lo+1)
	return entity.NewTarget(x, y, m.opts.Size)
}

// Press handles one pointer press at (x, y).
// The first target in container order that contains the point is replaced
// and the score goes up by one. Misses leave everything untouched.
func (m *ClickMode) Press(x, y int) (Hit, bool) {
	if m.state != StateRunning {
		return Hit{}, false
	}

	for i, t := range m.targets {
		if !t.Contains(x, y) {
			continue
		}
		m.targets = append(m.targets[:i], m.targets[i+1:]...)
		spawned := m.spawn()
		m.targets = append(m.targets, spawned)
		m.score++
		return Hit{Removed: t, Spawned: spawned, Score: m.score}, true
	}
	return Hit{}, false
}

// Tick advances the tick counter while running.
func (m *ClickMode) Tick() {
	if m.state == StateRunning {
		m.ticks++
	}
}

func (m *ClickMode) Quit() {
	m.state = StateTerminated
}

func (m *ClickMode) State() State { return m.state }
func (m *ClickMode) Score() int { return m.score }
func (m *ClickMode) Ticks() int { return m.ticks }

// Targets returns a copy of the active targets in container order.
func (m *ClickMode) Targets() []entity.Target {
	out := make([]entity.Target, len(m.targets))
	copy(out, m.targets)
	return out
}
