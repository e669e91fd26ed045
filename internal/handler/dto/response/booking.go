package response

import (
	"time"

	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	CarID            uuid.UUID `json:"carId"`
	CarName          string    `json:"carName"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	TierID           string    `json:"tierId"`
	TotalPrice       int64     `json:"totalPrice"`
	Status           string    `json:"status"`
	PaymentReference string    `json:"paymentReference"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromBookingList(rms []*readmodel.BookingRM) []*BookingResponse {
	res := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromBookingRM(rm)
	}
	return res
}

type ConfirmBookingResponse struct {
	BookingID  uuid.UUID `json:"bookingId"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
}

func FromConfirmResult(r *commands.ConfirmBookingResult) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{BookingID: r.BookingID, TotalPrice: r.TotalPrice, Status: "confirmed"}
}
