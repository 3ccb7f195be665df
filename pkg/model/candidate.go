package model

// OfferingGroup holds every available offering sharing one course name. A
// candidate always picks exactly one offering from each group.
type OfferingGroup struct {
	Name      string     `json:"name"`
	Offerings []Offering `json:"offerings"`
}

// Conflict records one timetable cell occupied by two or more offerings of the
// same candidate.
type Conflict struct {
	Day       Weekday    `json:"day"`
	Period    int        `json:"period"`
	Offerings []Offering `json:"offerings"`
}

// ScheduleCandidate is one complete selection (one offering per group) together
// with its derived metrics and slot collisions.
type ScheduleCandidate struct {
	Offerings       []Offering `json:"offerings"`
	TotalCredits    int        `json:"totalCredits"`
	RequiredCredits int        `json:"requiredCredits"`
	ElectiveCredits int        `json:"electiveCredits"`
	TotalPriority   int        `json:"totalPriority"`
	Conflicts       []Conflict `json:"conflicts,omitempty"`
	ConflictCount   int        `json:"conflictCount"`
}

// Clean reports whether the candidate is free of slot collisions.
func (c ScheduleCandidate) Clean() bool {
	return c.ConflictCount == 0
}
