package pwf

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// PlanBuilder assembles a Plan through chained calls. The builder owns a
// mutable draft whose day list may be empty mid-construction; Build
// enforces the nonempty-day and nonempty-exercise invariants before any
// document leaves the builder.
//
// A builder tracks one current day: AddDay appends a day and makes it
// current, AddExercise appends to the current day. Calling AddExercise with
// no current day is a contract violation by the caller and is recorded as a
// sticky error — the first such error is kept, later calls become no-ops,
// and Build returns it. A single builder is not safe for concurrent use;
// independent builders are.
type PlanBuilder struct {
	draft Plan
	cur   int // index of the current day, -1 when none
	err   error
}

// errNoActiveDay reports AddExercise being called before any AddDay.
var errNoActiveDay = errors.New("no active day: call AddDay before AddExercise")

// NewPlanBuilder returns an empty builder with the version tag preset and
// an initialized, empty day list.
func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{
		draft: Plan{
			PlanVersion: PlanVersion,
			Cycle:       Cycle{Days: []Day{}},
		},
		cur: -1,
	}
}

// Version sets the plan version tag. No validation happens here; Build and
// schema validation are where an unsupported tag surfaces.
func (b *PlanBuilder) Version(v int) *PlanBuilder {
	b.draft.PlanVersion = v
	return b
}

// Meta attaches plan metadata.
func (b *PlanBuilder) Meta(m Meta) *PlanBuilder {
	b.draft.Meta = &m
	return b
}

// Glossary attaches the term glossary.
func (b *PlanBuilder) Glossary(g map[string]string) *PlanBuilder {
	b.draft.Glossary = g
	return b
}

// StartDate sets the cycle start date (YYYY-MM-DD).
func (b *PlanBuilder) StartDate(date string) *PlanBuilder {
	b.draft.Cycle.StartDate = date
	return b
}

// CycleNotes sets free-form notes on the cycle.
func (b *PlanBuilder) CycleNotes(notes string) *PlanBuilder {
	b.draft.Cycle.Notes = notes
	return b
}

// AddDay appends a new day with the given focus and makes it the current
// day for subsequent AddExercise calls.
func (b *PlanBuilder) AddDay(focus string) *PlanBuilder {
	return b.AddDayDetailed(Day{Focus: focus})
}

// AddDayDetailed appends a fully specified day and makes it current. A nil
// exercise list is initialized empty so the draft always holds a concrete
// collection.
func (b *PlanBuilder) AddDayDetailed(day Day) *PlanBuilder {
	if b.err != nil {
		return b
	}
	if day.Exercises == nil {
		day.Exercises = []Exercise{}
	}
	b.draft.Cycle.Days = append(b.draft.Cycle.Days, day)
	b.cur = len(b.draft.Cycle.Days) - 1
	return b
}

// AddExercise appends an exercise to the current day. The name parameter
// overrides any name set on the passed exercise value.
func (b *PlanBuilder) AddExercise(name string, ex Exercise) *PlanBuilder {
	if b.err != nil {
		return b
	}
	if b.cur < 0 || b.cur >= len(b.draft.Cycle.Days) {
		b.err = errNoActiveDay
		return b
	}
	ex.Name = name
	day := &b.draft.Cycle.Days[b.cur]
	day.Exercises = append(day.Exercises, ex)
	return b
}

// Err returns the sticky builder error, if any, without building.
func (b *PlanBuilder) Err() error {
	return b.err
}

// Build checks the draft invariants and returns the finished plan. It fails
// on a recorded builder misuse, an empty day list, or the first day with no
// exercises. Build does not mutate the draft: it can be called repeatedly,
// and the returned plan is a deep copy unaffected by further builder calls.
func (b *PlanBuilder) Build() (*Plan, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.draft.Cycle.Days) == 0 {
		return nil, errors.New("plan must contain at least one day")
	}
	for i, day := range b.draft.Cycle.Days {
		if len(day.Exercises) == 0 {
			return nil, fmt.Errorf("day %d must contain at least one exercise", i+1)
		}
	}
	return clonePlan(&b.draft), nil
}

// ToYAML builds the plan and encodes it as YAML text.
func (b *PlanBuilder) ToYAML() (string, error) {
	p, err := b.Build()
	if err != nil {
		return "", err
	}
	return Encode(p)
}

// clonePlan deep-copies a plan so the built document is independent of the
// builder's draft.
func clonePlan(p *Plan) *Plan {
	out := *p
	if p.Meta != nil {
		m := *p.Meta
		out.Meta = &m
	}
	out.Glossary = maps.Clone(p.Glossary)
	out.Cycle.Days = make([]Day, len(p.Cycle.Days))
	for i, day := range p.Cycle.Days {
		out.Cycle.Days[i] = cloneDay(day)
	}
	return &out
}

func cloneDay(day Day) Day {
	out := day
	out.Exercises = make([]Exercise, len(day.Exercises))
	for i, ex := range day.Exercises {
		out.Exercises[i] = cloneExercise(ex)
	}
	return out
}

func cloneExercise(ex Exercise) Exercise {
	out := ex
	out.Zones = slices.Clone(ex.Zones)
	out.IntervalPhases = slices.Clone(ex.IntervalPhases)
	if ex.Ramp != nil {
		r := *ex.Ramp
		out.Ramp = &r
	}
	return out
}
