package booking

import "styledecor/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPlanning  Status = "planning"
	StatusMaterials Status = "materials"
	StatusOnWay     Status = "on-way"
	StatusSetup     Status = "setup"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// happyPath is the canonical order; paid is reachable only through the
// payment callback.
var happyPath = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPlanning,
	StatusMaterials,
	StatusOnWay,
	StatusSetup,
	StatusCompleted,
	StatusPaid,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusCancelled || s.ladderIndex() >= 0
}

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// IsOperational reports whether a decorator is expected to be working on
// the booking (confirmed through setup).
func (s Status) IsOperational() bool {
	i := s.ladderIndex()
	return i >= 1 && i <= 5
}

func (s Status) ladderIndex() int {
	for i, st := range happyPath {
		if st == s {
			return i
		}
	}
	return -1
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "%q", s)
	}
	return status, nil
}

// NextStatus returns the happy-path rung after s.
func NextStatus(s Status) (Status, bool) {
	i := s.ladderIndex()
	if i < 0 || i == len(happyPath)-1 {
		return "", false
	}
	return happyPath[i+1], true
}

type ServiceType string

const (
	ServiceTypeConsultation ServiceType = "consultation"
	ServiceTypeOnSite       ServiceType = "on-site"
)

func (t ServiceType) IsValid() bool {
	return t == ServiceTypeConsultation || t == ServiceTypeOnSite
}

func (t ServiceType) String() string {
	return string(t)
}
