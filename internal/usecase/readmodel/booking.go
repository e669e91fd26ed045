package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	CarID            uuid.UUID `json:"car_id"`
	CarName          string    `json:"car_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TierID           string    `json:"tier_id"`
	TotalPrice       int64     `json:"total_price"`
	Status           string    `json:"status"`
	PaymentReference string    `json:"payment_reference"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
