package schema

// modalityEnum is the closed set of exercise modalities in Plan schema v1.
var modalityEnum = []string{
	"strength", "countdown", "stopwatch", "interval",
	"cycling", "running", "rowing", "swimming",
}

// planSchema compiles the Plan v1 schema.
func planSchema() *Node {
	zone := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"zone"},
		Properties: map[string]*Node{
			"zone":       {Type: TypeInteger, Min: numPtr(1), Max: numPtr(5)},
			"duration_s": {Type: TypeInteger, Min: numPtr(1)},
		},
	}

	phase := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"phase", "duration_s"},
		Properties: map[string]*Node{
			"phase":      {Type: TypeString, Enum: []string{"work", "rest"}},
			"duration_s": {Type: TypeInteger, Min: numPtr(1)},
			"repeat":     {Type: TypeInteger, Min: numPtr(1)},
		},
	}

	ramp := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"start_pct", "end_pct"},
		Properties: map[string]*Node{
			"start_pct": {Type: TypeNumber, Min: numPtr(0), Max: numPtr(100)},
			"end_pct":   {Type: TypeNumber, Min: numPtr(0), Max: numPtr(100)},
			"step_pct":  {Type: TypeNumber, Min: numPtr(0)},
		},
	}

	exercise := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"name", "modality"},
		Properties: map[string]*Node{
			"name":              {Type: TypeString},
			"modality":          {Type: TypeString, Enum: modalityEnum},
			"target_sets":       {Type: TypeInteger, Min: numPtr(1)},
			"target_reps":       {Type: TypeInteger, Min: numPtr(1)},
			"target_load_kg":    {Type: TypeNumber, Min: numPtr(0)},
			"target_load_pct":   {Type: TypeNumber, Min: numPtr(0), Max: numPtr(100)},
			"reference_max_kg":  {Type: TypeNumber, Min: numPtr(0)},
			"target_duration_s": {Type: TypeInteger, Min: numPtr(1)},
			"target_distance_m": {Type: TypeInteger, Min: numPtr(1)},
			"rest_s":            {Type: TypeInteger, Min: numPtr(0)},
			"notes":             {Type: TypeString},
			"zones":             {Type: TypeArray, Items: zone, MinItems: 1},
			"interval_phases":   {Type: TypeArray, Items: phase, MinItems: 1},
			"ramp":              ramp,
		},
		// A percentage load is meaningless without the max it is relative to.
		DependentRequired: map[string][]string{
			"target_load_pct": {"reference_max_kg"},
		},
	}

	day := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"exercises"},
		Properties: map[string]*Node{
			"id":         {Type: TypeString},
			"order":      {Type: TypeInteger, Min: numPtr(0)},
			"focus":      {Type: TypeString},
			"notes":      {Type: TypeString},
			"schedule":   {Type: TypeString},
			"length_min": {Type: TypeInteger, Min: numPtr(1)},
			"exercises":  {Type: TypeArray, Items: exercise, MinItems: 1},
		},
	}

	cycle := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"days"},
		Properties: map[string]*Node{
			"start_date": {Type: TypeTimestamp},
			"notes":      {Type: TypeString},
			"days":       {Type: TypeArray, Items: day, MinItems: 1},
		},
	}

	meta := &Node{
		Type:   TypeObject,
		Closed: true,
		Properties: map[string]*Node{
			"title":   {Type: TypeString},
			"author":  {Type: TypeString},
			"notes":   {Type: TypeString},
			"created": {Type: TypeTimestamp},
		},
	}

	return &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"plan_version", "cycle"},
		Properties: map[string]*Node{
			"plan_version": {Type: TypeInteger, Const: intPtr(1)},
			"meta":         meta,
			"glossary":     {Type: TypeObject, Values: &Node{Type: TypeString}},
			"cycle":        cycle,
		},
	}
}
