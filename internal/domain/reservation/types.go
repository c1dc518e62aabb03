package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this status occupies its dates.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Source string

const (
	SourceWebsite  Source = "website"
	SourceWhatsApp Source = "whatsapp"
	SourcePhone    Source = "phone"
	SourceAdmin    Source = "admin"
	SourceEmail    Source = "email"
	SourceWalkIn   Source = "walk-in"
)

func NewSource(s string) (Source, error) {
	if s == "" {
		return SourceWebsite, nil
	}
	src := Source(s)
	switch src {
	case SourceWebsite, SourceWhatsApp, SourcePhone, SourceAdmin, SourceEmail, SourceWalkIn:
		return src, nil
	default:
		return "", ErrInvalidSource
	}
}

func (s Source) String() string {
	return string(s)
}
