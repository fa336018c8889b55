// Package goals tracks sustainability goals, offers goal templates and
// projects emission-reduction plans.
package goals

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/oklog/ulid/v2"
)

var (
	// ErrGoalNotFound is returned for an unknown goal id.
	ErrGoalNotFound = errors.New("goal not found")
	// ErrMissingField is returned when a goal lacks a title, target or deadline.
	ErrMissingField = errors.New("please fill in all fields")
	// ErrInvalidTarget is returned for a non-positive or non-finite target.
	ErrInvalidTarget = errors.New("goal target must be a positive number")
)

// DeadlineLayout is the date format of goal deadlines.
const DeadlineLayout = "2006-01-02"

// Goal is a percentage-reduction objective with a deadline.
type Goal struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Target   float64   `json:"target"`
	Current  float64   `json:"current"`
	Deadline time.Time `json:"deadline"`
}

// Progress returns current as a percentage of target.
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Current / g.Target * 100 //nolint:mnd // Ratio to percent.
}

// Completed reports whether the goal reached its target.
func (g Goal) Completed() bool {
	return g.Target > 0 && g.Current >= g.Target
}

// Tracker holds goals for the lifetime of a process. It is safe for
// concurrent use.
type Tracker struct {
	mu    sync.Mutex
	clock clockwork.Clock
	goals []Goal
}

// NewTracker returns a tracker seeded with the default goals.
func NewTracker(clock clockwork.Clock) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	t := &Tracker{clock: clock}
	for _, seed := range []struct {
		title    string
		target   float64
		current  float64
		deadline time.Time
	}{
		{"Reduce Transport Emissions", 30, 18, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"Switch to Renewable Energy", 50, 35, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	} {
		t.goals = append(t.goals, Goal{
			ID:       t.newID(),
			Title:    seed.title,
			Target:   seed.target,
			Current:  seed.current,
			Deadline: seed.deadline,
		})
	}
	return t
}

func (t *Tracker) newID() string {
	return ulid.MustNew(ulid.Timestamp(t.clock.Now()), ulid.DefaultEntropy()).String()
}

// Add creates a goal with zero progress. deadline uses DeadlineLayout.
func (t *Tracker) Add(title string, target float64, deadline string) (Goal, error) {
	title = strings.TrimSpace(title)
	deadline = strings.TrimSpace(deadline)
	if title == "" || deadline == "" || target == 0 {
		return Goal{}, ErrMissingField
	}
	if target < 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Goal{}, fmt.Errorf("%w: got %v", ErrInvalidTarget, target)
	}
	due, err := time.Parse(DeadlineLayout, deadline)
	if err != nil {
		return Goal{}, fmt.Errorf("invalid deadline %q: %w", deadline, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	g := Goal{ID: t.newID(), Title: title, Target: target, Deadline: due}
	t.goals = append(t.goals, g)
	return g, nil
}

// UpdateProgress sets a goal's current value, capped at its target and
// floored at zero.
func (t *Tracker) UpdateProgress(id string, value float64) (Goal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.goals {
		if t.goals[i].ID != id {
			continue
		}
		if math.IsNaN(value) {
			value = 0
		}
		t.goals[i].Current = math.Max(0, math.Min(value, t.goals[i].Target))
		return t.goals[i], nil
	}
	return Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
}

// Get returns the goal with id.
func (t *Tracker) Get(id string) (Goal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, g := range t.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
}

// Goals returns a snapshot of all goals in creation order.
func (t *Tracker) Goals() []Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Goal, len(t.goals))
	copy(out, t.goals)
	return out
}

// Progress returns the goal's progress percentage.
func (t *Tracker) Progress(g Goal) float64 {
	return g.Progress()
}

// Completed returns the goals that reached their target.
func (t *Tracker) Completed() []Goal {
	var out []Goal
	for _, g := range t.Goals() {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}

// ApplyTemplate adds a goal from tpl, due tpl.TimeframeMonths after now.
func (t *Tracker) ApplyTemplate(tpl Template) (Goal, error) {
	due := t.clock.Now().UTC().AddDate(0, tpl.TimeframeMonths, 0)
	return t.Add(tpl.Title, tpl.TargetReduction, due.Format(DeadlineLayout))
}
