// Package planner implements the client-owned wellness state: the weekly
// plan per trimester, the completed-week history and the exercise progress
// set. Everything is scoped to the signed-in user's email and persisted
// through a localstore.Store, so progress survives logout and reload.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/reda-h/wellness-companion/internal/content"
	"github.com/reda-h/wellness-companion/internal/localstore"
)

var (
	// ErrNotLoaded is returned when a mutation arrives before LoadWeek.
	// The guard keeps a fresh session from clobbering stored state with
	// zero values.
	ErrNotLoaded = errors.New("planner state not loaded")

	// ErrUnknownDay is returned for a day outside the fixed weekday set.
	ErrUnknownDay = errors.New("unknown weekday")

	// ErrUnknownTrimester is returned for trimesters outside 1-3.
	ErrUnknownTrimester = errors.New("unknown trimester")
)

// DayEntry is one editable day of the weekly plan.
type DayEntry struct {
	Activity string `json:"activity"`
	Notes    string `json:"notes"`
	Done     bool   `json:"done"`
}

// WeeklyPlan maps each weekday label to its entry. A valid plan always has
// exactly the seven fixed days.
type WeeklyPlan map[string]DayEntry

// HistoryRecord is an immutable snapshot of a completed week.
type HistoryRecord struct {
	ID        string     `json:"id"`
	Week      int        `json:"week"`
	Trimester int        `json:"trimester"`
	Data      WeeklyPlan `json:"data"`
	Date      string     `json:"date"`
}

// Planner holds one user's planner state for the active trimester.
type Planner struct {
	store     localstore.Store
	email     string
	trimester int
	plan      WeeklyPlan
	history   []HistoryRecord
	exercises map[int]bool
	weekCount int
	loaded    bool
	now       func() time.Time
}

// New creates a Planner for the given user. Call LoadWeek before mutating.
func New(store localstore.Store, email string) *Planner {
	return &Planner{
		store: store,
		email: email,
		now:   time.Now,
	}
}

func (p *Planner) plannerKey(trimester int) string {
	return fmt.Sprintf("%s_planner_%d", p.email, trimester)
}

func (p *Planner) historyKey() string {
	return p.email + "_history"
}

func (p *Planner) exercisesKey() string {
	return p.email + "_exercises"
}

// defaultPlan builds a fresh plan from the trimester's daily-focus
// suggestions.
func defaultPlan(trimester int) (WeeklyPlan, error) {
	guide, ok := content.Guide(trimester)
	if !ok {
		return nil, ErrUnknownTrimester
	}
	plan := make(WeeklyPlan, len(content.Days))
	for i, day := range content.Days {
		plan[day] = DayEntry{Activity: guide.DailyFocus[i]}
	}
	return plan, nil
}

// LoadWeek loads the plan for the trimester, the history and the exercise
// progress, falling back to defaults where nothing is stored yet. It must
// run before any mutation; until then saves are refused.
func (p *Planner) LoadWeek(trimester int) error {
	if _, ok := content.Guide(trimester); !ok {
		return ErrUnknownTrimester
	}

	raw, ok, err := p.store.Load(p.plannerKey(trimester))
	if err != nil {
		return fmt.Errorf("failed to load planner: %w", err)
	}
	if ok {
		var plan WeeklyPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return fmt.Errorf("failed to decode planner: %w", err)
		}
		p.plan = plan
	} else {
		plan, err := defaultPlan(trimester)
		if err != nil {
			return err
		}
		p.plan = plan
	}

	raw, ok, err = p.store.Load(p.historyKey())
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	p.history = nil
	if ok {
		if err := json.Unmarshal(raw, &p.history); err != nil {
			return fmt.Errorf("failed to decode history: %w", err)
		}
	}

	raw, ok, err = p.store.Load(p.exercisesKey())
	if err != nil {
		return fmt.Errorf("failed to load exercise progress: %w", err)
	}
	p.exercises = make(map[int]bool)
	if ok {
		var ids []int
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("failed to decode exercise progress: %w", err)
		}
		for _, id := range ids {
			p.exercises[id] = true
		}
	}

	p.trimester = trimester
	p.weekCount = len(p.history) + 1
	p.loaded = true
	return nil
}

// Trimester returns the active trimester.
func (p *Planner) Trimester() int {
	return p.trimester
}

// Week returns the current week counter.
func (p *Planner) Week() int {
	return p.weekCount
}

// Plan returns a copy of the current weekly plan.
func (p *Planner) Plan() WeeklyPlan {
	out := make(WeeklyPlan, len(p.plan))
	for day, entry := range p.plan {
		out[day] = entry
	}
	return out
}

// History returns the completed weeks, most recent first.
func (p *Planner) History() []HistoryRecord {
	out := make([]HistoryRecord, len(p.history))
	copy(out, p.history)
	return out
}

func (p *Planner) savePlan() error {
	raw, err := json.Marshal(p.plan)
	if err != nil {
		return err
	}
	return p.store.Save(p.plannerKey(p.trimester), raw)
}

func (p *Planner) saveHistory() error {
	raw, err := json.Marshal(p.history)
	if err != nil {
		return err
	}
	return p.store.Save(p.historyKey(), raw)
}

func (p *Planner) saveExercises() error {
	ids := make([]int, 0, len(p.exercises))
	for id := range p.exercises {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return p.store.Save(p.exercisesKey(), raw)
}

func (p *Planner) mutateDay(day string, fn func(*DayEntry)) error {
	if !p.loaded {
		return ErrNotLoaded
	}
	entry, ok := p.plan[day]
	if !ok {
		return ErrUnknownDay
	}
	fn(&entry)
	p.plan[day] = entry
	return p.savePlan()
}

// SetActivity updates the activity text for the day and saves.
func (p *Planner) SetActivity(day, activity string) error {
	return p.mutateDay(day, func(e *DayEntry) { e.Activity = activity })
}

// SetNotes updates the reflections text for the day and saves.
func (p *Planner) SetNotes(day, notes string) error {
	return p.mutateDay(day, func(e *DayEntry) { e.Notes = notes })
}

// ToggleDone flips the day's done flag and saves.
func (p *Planner) ToggleDone(day string) error {
	return p.mutateDay(day, func(e *DayEntry) { e.Done = !e.Done })
}

// newHistoryID builds an identifier unique within this user's history:
// a millisecond timestamp plus a random suffix.
func (p *Planner) newHistoryID() string {
	return fmt.Sprintf("%d-%s", p.now().UnixMilli(), uuid.NewString()[:8])
}

// CompleteWeek snapshots the current plan into a new history record,
// advances the week counter and resets the plan, keeping each day's
// activity and clearing notes and done flags. The three effects are one
// action from the caller's point of view.
func (p *Planner) CompleteWeek() (HistoryRecord, error) {
	if !p.loaded {
		return HistoryRecord{}, ErrNotLoaded
	}

	record := HistoryRecord{
		ID:        p.newHistoryID(),
		Week:      p.weekCount,
		Trimester: p.trimester,
		Data:      p.Plan(),
		Date:      p.now().Format("1/2/2006"),
	}

	p.history = append([]HistoryRecord{record}, p.history...)
	p.weekCount++

	for day, entry := range p.plan {
		p.plan[day] = DayEntry{Activity: entry.Activity}
	}

	if err := p.saveHistory(); err != nil {
		return HistoryRecord{}, err
	}
	if err := p.savePlan(); err != nil {
		return HistoryRecord{}, err
	}
	return record, nil
}

// DeleteHistoryEntry removes exactly the record with the given id. A
// missing id is a no-op. Confirmation is the caller's responsibility; the
// deletion itself is irreversible.
func (p *Planner) DeleteHistoryEntry(id string) error {
	if !p.loaded {
		return ErrNotLoaded
	}

	kept := p.history[:0]
	for _, record := range p.history {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(p.history) {
		return nil
	}
	p.history = kept
	return p.saveHistory()
}

// ToggleExercise flips the completion state of the exercise id and saves.
func (p *Planner) ToggleExercise(id int) error {
	if !p.loaded {
		return ErrNotLoaded
	}
	if p.exercises[id] {
		delete(p.exercises, id)
	} else {
		p.exercises[id] = true
	}
	return p.saveExercises()
}

// CompletedExercises returns the ids marked complete, ascending.
func (p *Planner) CompletedExercises() []int {
	ids := make([]int, 0, len(p.exercises))
	for id := range p.exercises {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsCompleted reports whether the exercise id is marked complete.
func (p *Planner) IsCompleted(id int) bool {
	return p.exercises[id]
}

// ResetProgress wipes every persistence key for this user (the three
// planner slots, the history and the exercise progress) and reloads the
// defaults for the active trimester.
func (p *Planner) ResetProgress() error {
	if !p.loaded {
		return ErrNotLoaded
	}

	for trimester := 1; trimester <= 3; trimester++ {
		if err := p.store.Delete(p.plannerKey(trimester)); err != nil {
			return fmt.Errorf("failed to reset planner: %w", err)
		}
	}
	if err := p.store.Delete(p.historyKey()); err != nil {
		return fmt.Errorf("failed to reset history: %w", err)
	}
	if err := p.store.Delete(p.exercisesKey()); err != nil {
		return fmt.Errorf("failed to reset exercise progress: %w", err)
	}

	return p.LoadWeek(p.trimester)
}
