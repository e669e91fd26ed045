package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

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

// CountsAsRevenue is true for confirmed and completed bookings.
func (s Status) CountsAsRevenue() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// RevenueStatuses lists the statuses summed into revenue.
func RevenueStatuses() []Status {
	return []Status{StatusConfirmed, StatusCompleted}
}
