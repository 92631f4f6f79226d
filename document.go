// Package pwf implements the Portable Workout Format: a YAML interchange
// format for training plans and workout history exports. It provides
// schema validation with path-addressed issues, a fluent plan builder, and
// the encode/decode pair used by every PWF producer and consumer.
package pwf

import "time"

// Version tags. Each document kind carries its own literal version field;
// a document whose tag differs from these is rejected by validation.
const (
	PlanVersion    = 1
	HistoryVersion = 1
)

// Modality is the closed set of exercise execution modes.
type Modality string

const (
	ModalityStrength  Modality = "strength"
	ModalityCountdown Modality = "countdown"
	ModalityStopwatch Modality = "stopwatch"
	ModalityInterval  Modality = "interval"
	ModalityCycling   Modality = "cycling"
	ModalityRunning   Modality = "running"
	ModalityRowing    Modality = "rowing"
	ModalitySwimming  Modality = "swimming"
)

// Modalities returns all valid modality values in declaration order.
func Modalities() []Modality {
	return []Modality{
		ModalityStrength, ModalityCountdown, ModalityStopwatch, ModalityInterval,
		ModalityCycling, ModalityRunning, ModalityRowing, ModalitySwimming,
	}
}

// Plan is a training program: a cycle of ordered days of exercises.
type Plan struct {
	PlanVersion int               `yaml:"plan_version" json:"plan_version"`
	Meta        *Meta             `yaml:"meta,omitempty" json:"meta,omitempty"`
	Glossary    map[string]string `yaml:"glossary,omitempty" json:"glossary,omitempty"`
	Cycle       Cycle             `yaml:"cycle" json:"cycle"`
}

// Meta is optional descriptive metadata attached to a plan.
type Meta struct {
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Author  string `yaml:"author,omitempty" json:"author,omitempty"`
	Notes   string `yaml:"notes,omitempty" json:"notes,omitempty"`
	Created string `yaml:"created,omitempty" json:"created,omitempty"`
}

// Cycle holds the ordered training days plus optional scheduling context.
type Cycle struct {
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	Notes     string `yaml:"notes,omitempty" json:"notes,omitempty"`
	Days      []Day  `yaml:"days" json:"days"`
}

// Day is one training day. A valid day has at least one exercise.
type Day struct {
	ID        string     `yaml:"id,omitempty" json:"id,omitempty"`
	Order     int        `yaml:"order,omitempty" json:"order,omitempty"`
	Focus     string     `yaml:"focus,omitempty" json:"focus,omitempty"`
	Notes     string     `yaml:"notes,omitempty" json:"notes,omitempty"`
	Schedule  string     `yaml:"schedule,omitempty" json:"schedule,omitempty"`
	LengthMin int        `yaml:"length_min,omitempty" json:"length_min,omitempty"`
	Exercises []Exercise `yaml:"exercises" json:"exercises"`
}

// Exercise is a single prescribed exercise. Which target fields are
// meaningful depends on the modality; the schema keeps them all optional
// except the cross-field rule that a percentage load needs its reference max.
type Exercise struct {
	Name            string          `yaml:"name" json:"name"`
	Modality        Modality        `yaml:"modality" json:"modality"`
	TargetSets      int             `yaml:"target_sets,omitempty" json:"target_sets,omitempty"`
	TargetReps      int             `yaml:"target_reps,omitempty" json:"target_reps,omitempty"`
	TargetLoadKg    float64         `yaml:"target_load_kg,omitempty" json:"target_load_kg,omitempty"`
	TargetLoadPct   float64         `yaml:"target_load_pct,omitempty" json:"target_load_pct,omitempty"`
	ReferenceMaxKg  float64         `yaml:"reference_max_kg,omitempty" json:"reference_max_kg,omitempty"`
	TargetDurationS int             `yaml:"target_duration_s,omitempty" json:"target_duration_s,omitempty"`
	TargetDistanceM int             `yaml:"target_distance_m,omitempty" json:"target_distance_m,omitempty"`
	RestS           int             `yaml:"rest_s,omitempty" json:"rest_s,omitempty"`
	Notes           string          `yaml:"notes,omitempty" json:"notes,omitempty"`
	Zones           []Zone          `yaml:"zones,omitempty" json:"zones,omitempty"`
	IntervalPhases  []IntervalPhase `yaml:"interval_phases,omitempty" json:"interval_phases,omitempty"`
	Ramp            *Ramp           `yaml:"ramp,omitempty" json:"ramp,omitempty"`
}

// Zone is a heart-rate/effort zone segment within an endurance exercise.
type Zone struct {
	Zone      int `yaml:"zone" json:"zone"`
	DurationS int `yaml:"duration_s,omitempty" json:"duration_s,omitempty"`
}

// IntervalPhase is one work or rest phase of an interval exercise.
type IntervalPhase struct {
	Phase     string `yaml:"phase" json:"phase"`
	DurationS int    `yaml:"duration_s" json:"duration_s"`
	Repeat    int    `yaml:"repeat,omitempty" json:"repeat,omitempty"`
}

// Ramp describes a load progression across sets, as percentages of the
// reference max.
type Ramp struct {
	StartPct float64 `yaml:"start_pct" json:"start_pct"`
	EndPct   float64 `yaml:"end_pct" json:"end_pct"`
	StepPct  float64 `yaml:"step_pct,omitempty" json:"step_pct,omitempty"`
}

// History is an export of completed workout sessions.
type History struct {
	HistoryVersion   int               `yaml:"history_version" json:"history_version"`
	ExportedAt       time.Time         `yaml:"exported_at" json:"exported_at"`
	Workouts         []Workout         `yaml:"workouts" json:"workouts"`
	PersonalRecords  []PersonalRecord  `yaml:"personal_records,omitempty" json:"personal_records,omitempty"`
	BodyMeasurements []BodyMeasurement `yaml:"body_measurements,omitempty" json:"body_measurements,omitempty"`
}

// Workout is one completed training session.
type Workout struct {
	Date      string            `yaml:"date,omitempty" json:"date,omitempty"`
	Name      string            `yaml:"name,omitempty" json:"name,omitempty"`
	Notes     string            `yaml:"notes,omitempty" json:"notes,omitempty"`
	DurationS int               `yaml:"duration_s,omitempty" json:"duration_s,omitempty"`
	Exercises []WorkoutExercise `yaml:"exercises" json:"exercises"`
}

// WorkoutExercise is a performed exercise with its recorded sets.
type WorkoutExercise struct {
	Name     string       `yaml:"name" json:"name"`
	Modality Modality     `yaml:"modality,omitempty" json:"modality,omitempty"`
	Sets     []WorkoutSet `yaml:"sets" json:"sets"`
}

// WorkoutSet is a single recorded set. All fields are optional; which are
// present depends on how the exercise was performed.
type WorkoutSet struct {
	Reps      int     `yaml:"reps,omitempty" json:"reps,omitempty"`
	WeightKg  float64 `yaml:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	DurationS int     `yaml:"duration_s,omitempty" json:"duration_s,omitempty"`
	DistanceM int     `yaml:"distance_m,omitempty" json:"distance_m,omitempty"`
	RPE       float64 `yaml:"rpe,omitempty" json:"rpe,omitempty"`
}

// PersonalRecord is a best recorded effort for one exercise.
type PersonalRecord struct {
	Exercise     string  `yaml:"exercise" json:"exercise"`
	Reps         int     `yaml:"reps,omitempty" json:"reps,omitempty"`
	WeightKg     float64 `yaml:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	Date         string  `yaml:"date,omitempty" json:"date,omitempty"`
	Estimated1RM float64 `yaml:"estimated_1rm,omitempty" json:"estimated_1rm,omitempty"`
}

// BodyMeasurement is a dated body composition sample.
type BodyMeasurement struct {
	Date       string  `yaml:"date" json:"date"`
	WeightKg   float64 `yaml:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	BodyFatPct float64 `yaml:"body_fat_pct,omitempty" json:"body_fat_pct,omitempty"`
	HeightCm   float64 `yaml:"height_cm,omitempty" json:"height_cm,omitempty"`
}
