package booking

var trackingLabels = map[Status]string{
	StatusPending:   "Booked",
	StatusConfirmed: "Assigned",
	StatusPlanning:  "Planning",
	StatusMaterials: "Materials",
	StatusOnWay:     "On Way",
	StatusSetup:     "Setup",
	StatusCompleted: "Completed",
}

type TrackingStep struct {
	Status  Status
	Label   string
	Reached bool
	Current bool
}

type Tracking struct {
	Status       Status
	Steps        []TrackingStep
	CurrentIndex int
	Paid         bool
	Cancelled    bool
}

// NewTracking renders the progress bar for s. Paid does not advance past
// Completed; a cancelled booking only ever reached Booked.
func NewTracking(s Status) Tracking {
	steps := happyPath[:len(happyPath)-1]

	current := s.ladderIndex()
	switch s {
	case StatusPaid:
		current = StatusCompleted.ladderIndex()
	case StatusCancelled:
		current = StatusPending.ladderIndex()
	}

	t := Tracking{
		Status:       s,
		Steps:        make([]TrackingStep, len(steps)),
		CurrentIndex: current,
		Paid:         s == StatusPaid,
		Cancelled:    s == StatusCancelled,
	}
	for i, st := range steps {
		t.Steps[i] = TrackingStep{
			Status:  st,
			Label:   trackingLabels[st],
			Reached: i <= current,
			Current: i == current,
		}
	}
	return t
}
