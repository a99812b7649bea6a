package models

// All returns every model managed by migrations, in dependency order
func All() []any {
	return []any{
		&Profile{},
		&Athlete{},
		&Video{},
		&Assessment{},
		&TrainingPlan{},
	}
}
