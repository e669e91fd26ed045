package request

import (
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/commands"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CarListQuery struct {
	City         string `form:"city"`
	Category     string `form:"category"`
	Transmission string `form:"transmission"`
	FuelType     string `form:"fuelType"`
	Search       string `form:"search"`
	MinPrice     *int64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice     *int64 `form:"maxPrice" binding:"omitempty,min=0"`
	Seats        *int   `form:"seats" binding:"omitempty,min=1"`
	Featured     *bool  `form:"featured"`
	Sort         string `form:"sort"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Limit        int    `form:"limit" binding:"omitempty,min=1"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
}

func (q CarListQuery) ToParams() (queries.CarListParams, error) {
	params := queries.CarListParams{
		Filter: queries.CarFilter{
			City:         q.City,
			Category:     q.Category,
			Transmission: q.Transmission,
			FuelType:     q.FuelType,
			Search:       q.Search,
			MinPrice:     q.MinPrice,
			MaxPrice:     q.MaxPrice,
			MinSeats:     q.Seats,
			Featured:     q.Featured,
			Sort:         queries.CarSort(q.Sort),
		},
		Page: queries.Page{Number: q.Page, Limit: q.Limit},
	}

	switch {
	case q.StartDate == "" && q.EndDate == "":
	case q.StartDate == "" || q.EndDate == "":
		return params, errs.Mark(errs.New("startDate and endDate go together"), errs.ErrInvalidInput)
	default:
		w, err := parseWindow(q.StartDate, q.EndDate)
		if err != nil {
			return params, err
		}
		params.Window = &w
	}
	return params, nil
}

type AvailabilityQuery struct {
	CarID     string `form:"carId" binding:"required,uuid"`
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

func (q AvailabilityQuery) Parse() (uuid.UUID, shared.DateWindow, error) {
	id, err := uuid.Parse(q.CarID)
	if err != nil {
		return uuid.Nil, shared.DateWindow{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	w, err := parseWindow(q.StartDate, q.EndDate)
	return id, w, err
}

type QuoteRequest struct {
	CarID     uuid.UUID `json:"carId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
}

func (r QuoteRequest) Window() (shared.DateWindow, error) {
	return parseWindow(r.StartDate, r.EndDate)
}

type CreateCarRequest struct {
	Brand           string `json:"brand" binding:"required,max=100"`
	Model           string `json:"model" binding:"required,max=100"`
	Category        string `json:"category" binding:"required"`
	FuelType        string `json:"fuelType" binding:"required"`
	Transmission    string `json:"transmission" binding:"required"`
	Seats           int    `json:"seats" binding:"required,min=2,max=12"`
	City            string `json:"city" binding:"required,max=100"`
	Area            string `json:"area" binding:"max=100"`
	Featured        bool   `json:"featured"`
	PricePerDay     int64  `json:"pricePerDay" binding:"required,min=1"`
	ExtraKmCharge   int64  `json:"extraKmCharge" binding:"omitempty,min=0"`
	SecurityDeposit int64  `json:"securityDeposit" binding:"omitempty,min=0"`
}

func (r CreateCarRequest) ToInput() (commands.CreateCarInput, error) {
	var attrs car.Attributes
	if err := copier.Copy(&attrs, &r); err != nil {
		return commands.CreateCarInput{}, errs.Wrap(err, "failed to map car attributes")
	}
	return commands.CreateCarInput{
		Attributes:      attrs,
		BaseRatePerDay:  r.PricePerDay,
		ExtraKmCharge:   r.ExtraKmCharge,
		SecurityDeposit: r.SecurityDeposit,
	}, nil
}

type MaintenanceRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"max=200"`
}

func (r MaintenanceRequest) Window() (shared.DateWindow, error) {
	return parseWindow(r.StartDate, r.EndDate)
}

type AvailabilityToggleRequest struct {
	Available *bool `json:"available" binding:"required"`
}
