package pwf

import (
	"strings"
	"testing"
)

// TestBuildEmptyPlan verifies that building with no days fails with the
// nonempty-day invariant message.
func TestBuildEmptyPlan(t *testing.T) {
	_, err := NewPlanBuilder().Build()
	if err == nil {
		t.Fatal("expected error building a plan with no days")
	}
	if !strings.Contains(err.Error(), "at least one day") {
		t.Errorf("error = %q, want mention of at least one day", err)
	}
}

// TestBuildDayWithoutExercises verifies the per-day nonempty-exercise
// invariant, including the 1-indexed day reference in the message.
func TestBuildDayWithoutExercises(t *testing.T) {
	_, err := NewPlanBuilder().AddDay("upper").Build()
	if err == nil {
		t.Fatal("expected error building a day with no exercises")
	}
	if !strings.Contains(err.Error(), "at least one exercise") {
		t.Errorf("error = %q, want mention of at least one exercise", err)
	}
	if !strings.Contains(err.Error(), "day 1") {
		t.Errorf("error = %q, want reference to day 1", err)
	}
}

// TestBuildReportsFirstEmptyDay verifies that the first offending day in
// order is the one reported.
func TestBuildReportsFirstEmptyDay(t *testing.T) {
	b := NewPlanBuilder().
		AddDay("upper").
		AddExercise("Bench Press", Exercise{Modality: ModalityStrength, TargetSets: 5, TargetReps: 5}).
		AddDay("lower").
		AddDay("conditioning")
	_, err := b.Build()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "day 2") {
		t.Errorf("error = %q, want reference to day 2", err)
	}
}

// TestAddExerciseWithoutDay verifies the sticky contract-violation error
// when AddExercise runs before any AddDay.
func TestAddExerciseWithoutDay(t *testing.T) {
	b := NewPlanBuilder().AddExercise("Squat", Exercise{Modality: ModalityStrength})
	if b.Err() == nil {
		t.Fatal("expected sticky error after AddExercise without AddDay")
	}
	if !strings.Contains(b.Err().Error(), "active day") {
		t.Errorf("error = %q, want mention of an active day", b.Err())
	}

	// The error survives later valid-looking calls and surfaces from Build.
	b.AddDay("upper").AddExercise("Squat", Exercise{Modality: ModalityStrength})
	if _, err := b.Build(); err == nil || !strings.Contains(err.Error(), "active day") {
		t.Errorf("Build() error = %v, want the sticky no-active-day error", err)
	}
}

// TestAddExerciseTargetsCurrentDay verifies the cursor: exercises land on
// the most recently added day.
func TestAddExerciseTargetsCurrentDay(t *testing.T) {
	p, err := NewPlanBuilder().
		AddDay("upper").
		AddExercise("Bench Press", Exercise{Modality: ModalityStrength, TargetSets: 5, TargetReps: 5}).
		AddDay("lower").
		AddExercise("Squat", Exercise{Modality: ModalityStrength, TargetSets: 3, TargetReps: 5}).
		AddExercise("Deadlift", Exercise{Modality: ModalityStrength, TargetSets: 1, TargetReps: 5}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Cycle.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(p.Cycle.Days))
	}
	if got := len(p.Cycle.Days[0].Exercises); got != 1 {
		t.Errorf("day 1 exercises = %d, want 1", got)
	}
	if got := len(p.Cycle.Days[1].Exercises); got != 2 {
		t.Errorf("day 2 exercises = %d, want 2", got)
	}
	if name := p.Cycle.Days[1].Exercises[1].Name; name != "Deadlift" {
		t.Errorf("day 2 exercise 2 = %q, want Deadlift", name)
	}
}

// TestBuildIsIdempotent verifies that Build is a non-mutating query: two
// builds succeed and produce independent documents.
func TestBuildIsIdempotent(t *testing.T) {
	b := NewPlanBuilder().
		AddDay("upper").
		AddExercise("Bench Press", Exercise{Modality: ModalityStrength, TargetSets: 5, TargetReps: 5})

	first, err := b.Build()
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}

	// Mutating the first result must not leak into the second.
	first.Cycle.Days[0].Exercises[0].Name = "changed"
	if second.Cycle.Days[0].Exercises[0].Name != "Bench Press" {
		t.Error("built documents share day storage")
	}
}

// TestBuiltPlanIndependentOfBuilder verifies that later builder calls do
// not mutate an already built document.
func TestBuiltPlanIndependentOfBuilder(t *testing.T) {
	b := NewPlanBuilder().
		AddDay("upper").
		AddExercise("Bench Press", Exercise{Modality: ModalityStrength, TargetSets: 5, TargetReps: 5})

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b.AddExercise("Overhead Press", Exercise{Modality: ModalityStrength, TargetSets: 3, TargetReps: 8})
	if got := len(p.Cycle.Days[0].Exercises); got != 1 {
		t.Errorf("built plan gained exercises after Build: %d, want 1", got)
	}
}

// TestToYAML verifies the convenience serialization: the output carries the
// version tag and the exercise name, and parses back clean.
func TestToYAML(t *testing.T) {
	text, err := NewPlanBuilder().
		Version(1).
		AddDay("D").
		AddExercise("E", Exercise{Modality: ModalityStrength, TargetSets: 3, TargetReps: 5}).
		ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	if !strings.Contains(text, "plan_version: 1") {
		t.Errorf("output missing version tag:\n%s", text)
	}
	if !strings.Contains(text, "E") {
		t.Errorf("output missing exercise name:\n%s", text)
	}

	result := ParsePlan(text)
	if !result.Valid() {
		t.Errorf("ToYAML output failed validation: %v", result.Issues)
	}
}

// TestBuilderMetaGlossary verifies direct assignment of metadata, glossary,
// and cycle fields.
func TestBuilderMetaGlossary(t *testing.T) {
	p, err := NewPlanBuilder().
		Meta(Meta{Title: "5/3/1", Author: "Jim"}).
		Glossary(map[string]string{"AMRAP": "as many reps as possible"}).
		StartDate("2026-09-01").
		CycleNotes("three week wave").
		AddDay("squat day").
		AddExercise("Squat", Exercise{Modality: ModalityStrength, TargetSets: 3, TargetReps: 5}).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Meta == nil || p.Meta.Title != "5/3/1" {
		t.Errorf("meta = %+v, want title 5/3/1", p.Meta)
	}
	if p.Glossary["AMRAP"] == "" {
		t.Error("glossary entry missing")
	}
	if p.Cycle.StartDate != "2026-09-01" {
		t.Errorf("start date = %q", p.Cycle.StartDate)
	}
	if p.Cycle.Notes != "three week wave" {
		t.Errorf("cycle notes = %q", p.Cycle.Notes)
	}
}
