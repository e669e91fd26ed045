package request

import (
	"car-rental-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReserveRequest is sent by the booking flow for a booking it has already recorded.
type ReserveRequest struct {
	CarID     uuid.UUID `json:"carId" binding:"required"`
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
}

func (r ReserveRequest) ToInput() (commands.ReserveInput, error) {
	w, err := parseWindow(r.StartDate, r.EndDate)
	if err != nil {
		return commands.ReserveInput{}, err
	}
	return commands.ReserveInput{CarID: r.CarID, BookingID: r.BookingID, Window: w}, nil
}
