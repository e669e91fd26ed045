package request

import (
	"strings"

	"car-rental-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type ConfirmBookingRequest struct {
	CarID            uuid.UUID `json:"carId" binding:"required"`
	StartDate        string    `json:"startDate" binding:"required"`
	EndDate          string    `json:"endDate" binding:"required"`
	TierID           string    `json:"tierId" binding:"required"`
	PaymentReference string    `json:"paymentReference" binding:"required,max=128"`
}

func (r ConfirmBookingRequest) ToInput(userID uuid.UUID) (commands.ConfirmBookingInput, error) {
	w, err := parseWindow(r.StartDate, r.EndDate)
	if err != nil {
		return commands.ConfirmBookingInput{}, err
	}
	return commands.ConfirmBookingInput{
		UserID:           userID,
		CarID:            r.CarID,
		Window:           w,
		TierID:           strings.TrimSpace(r.TierID),
		PaymentReference: strings.TrimSpace(r.PaymentReference),
	}, nil
}
