package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands.go -package=commandsmock car-rental-engine/internal/usecase/commands BookingCommands,ReservationCommands,FleetCommands

// Reservation attempt outcomes reported to the metrics recorder.
const (
	OutcomeReserved = "reserved"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

type ReservationRecorder interface {
	ReservationAttempt(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ReservationAttempt(string) {}

func recorderOrNop(r ReservationRecorder) ReservationRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
