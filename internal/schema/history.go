package schema

// historySchema compiles the History v1 schema.
func historySchema() *Node {
	set := &Node{
		Type:   TypeObject,
		Closed: true,
		Properties: map[string]*Node{
			"reps":       {Type: TypeInteger, Min: numPtr(0)},
			"weight_kg":  {Type: TypeNumber, Min: numPtr(0)},
			"duration_s": {Type: TypeInteger, Min: numPtr(0)},
			"distance_m": {Type: TypeInteger, Min: numPtr(0)},
			"rpe":        {Type: TypeNumber, Min: numPtr(0), Max: numPtr(10)},
		},
	}

	workoutExercise := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"name", "sets"},
		Properties: map[string]*Node{
			"name":     {Type: TypeString},
			"modality": {Type: TypeString, Enum: modalityEnum},
			"sets":     {Type: TypeArray, Items: set, MinItems: 1},
		},
	}

	workout := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"exercises"},
		Properties: map[string]*Node{
			"date":       {Type: TypeTimestamp},
			"name":       {Type: TypeString},
			"notes":      {Type: TypeString},
			"duration_s": {Type: TypeInteger, Min: numPtr(0)},
			"exercises":  {Type: TypeArray, Items: workoutExercise, MinItems: 1},
		},
	}

	personalRecord := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"exercise"},
		Properties: map[string]*Node{
			"exercise":      {Type: TypeString},
			"reps":          {Type: TypeInteger, Min: numPtr(1)},
			"weight_kg":     {Type: TypeNumber, Min: numPtr(0)},
			"date":          {Type: TypeTimestamp},
			"estimated_1rm": {Type: TypeNumber, Min: numPtr(0)},
		},
	}

	bodyMeasurement := &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"date"},
		Properties: map[string]*Node{
			"date":         {Type: TypeTimestamp},
			"weight_kg":    {Type: TypeNumber, Min: numPtr(0)},
			"body_fat_pct": {Type: TypeNumber, Min: numPtr(0), Max: numPtr(100)},
			"height_cm":    {Type: TypeNumber, Min: numPtr(0)},
		},
	}

	return &Node{
		Type:     TypeObject,
		Closed:   true,
		Required: []string{"history_version", "exported_at", "workouts"},
		Properties: map[string]*Node{
			"history_version":   {Type: TypeInteger, Const: intPtr(1)},
			"exported_at":       {Type: TypeTimestamp},
			"workouts":          {Type: TypeArray, Items: workout},
			"personal_records":  {Type: TypeArray, Items: personalRecord},
			"body_measurements": {Type: TypeArray, Items: bodyMeasurement},
		},
	}
}
