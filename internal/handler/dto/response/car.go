package response

import (
	"time"

	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/queries"
	"car-rental-engine/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var deepCopy = copier.Option{DeepCopy: true}

type PricingResponse struct {
	PerDay          int64 `json:"perDay"`
	ExtraKmCharge   int64 `json:"extraKmCharge"`
	SecurityDeposit int64 `json:"securityDeposit"`
}

type MaintenanceResponse struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    string    `json:"reason"`
}

type CarResponse struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Brand             string                `json:"brand"`
	Model             string                `json:"model"`
	Category          string                `json:"category"`
	FuelType          string                `json:"fuelType"`
	Transmission      string                `json:"transmission"`
	Seats             int                   `json:"seats"`
	City              string                `json:"city"`
	Area              string                `json:"area"`
	Featured          bool                  `json:"featured"`
	IsActive          bool                  `json:"isActive"`
	ManuallyAvailable bool                  `json:"isAvailable"`
	Pricing           PricingResponse       `json:"pricing"`
	Maintenance       []MaintenanceResponse `json:"maintenance"`
	TotalBookings     int                   `json:"totalBookings"`
	TotalRevenue      int64                 `json:"totalRevenue"`
	CreatedAt         time.Time             `json:"createdAt"`
}

func FromCarRM(rm *readmodel.CarRM) (*CarResponse, error) {
	var res CarResponse
	if err := copier.CopyWithOption(&res, rm, deepCopy); err != nil {
		return nil, errs.Wrap(err, "map car response")
	}
	if res.Maintenance == nil {
		res.Maintenance = []MaintenanceResponse{}
	}
	return &res, nil
}

type TierResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	KmPerDay        int    `json:"kmPerDay"`
	IncludedKm      int64  `json:"includedKm"`
	Price           int64  `json:"price"`
	Tax             int64  `json:"tax"`
	FinalPrice      int64  `json:"finalPrice"`
	ExtraKmCharge   int64  `json:"extraKmCharge"`
	SecurityDeposit int64  `json:"securityDeposit"`
	Recommended     bool   `json:"recommended"`
}

type DurationResponse struct {
	Days           int     `json:"days"`
	RemainingHours float64 `json:"remainingHours"`
	Text           string  `json:"text"`
	Hours          string  `json:"hours"`
	TotalHours     string  `json:"totalHours"`
}

type QuoteResponse struct {
	CarID    uuid.UUID        `json:"carId"`
	CarName  string           `json:"carName"`
	Duration DurationResponse `json:"duration"`
	Tiers    []TierResponse   `json:"pricingTiers"`
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	if v == nil {
		return nil, nil
	}
	res := &QuoteResponse{
		CarID:   v.CarID,
		CarName: v.CarName,
		Duration: DurationResponse{
			Days:           v.DurationDays,
			RemainingHours: v.RemainingHours,
			Text:           v.DurationText,
			Hours:          v.HoursLabel,
			TotalHours:     v.TotalHoursLabel,
		},
	}
	if err := copier.Copy(&res.Tiers, &v.Tiers); err != nil {
		return nil, errs.Wrap(err, "map pricing tiers")
	}
	return res, nil
}

type CarListItemResponse struct {
	CarResponse
	CalculatedPricing *QuoteResponse `json:"calculatedPricing,omitempty"`
}

type CarListResponse struct {
	Count       int                   `json:"count"`
	Total       int                   `json:"total"`
	TotalPages  int                   `json:"totalPages"`
	CurrentPage int                   `json:"currentPage"`
	Data        []CarListItemResponse `json:"data"`
}

func FromCarListPage(p *queries.CarListPage) (*CarListResponse, error) {
	data := make([]CarListItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		car, err := FromCarRM(it.Car)
		if err != nil {
			return nil, err
		}
		quote, err := FromQuoteView(it.CalculatedPricing)
		if err != nil {
			return nil, err
		}
		data = append(data, CarListItemResponse{CarResponse: *car, CalculatedPricing: quote})
	}
	return &CarListResponse{
		Count:       len(data),
		Total:       p.Total,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Data:        data,
	}, nil
}

// AvailabilityResponse carries a null reason when the car is free.
type AvailabilityResponse struct {
	Available bool    `json:"available"`
	Reason    *string `json:"reason"`
	Message   string  `json:"message"`
}

func FromAvailability(r *queries.AvailabilityResult) *AvailabilityResponse {
	res := &AvailabilityResponse{Available: r.Available, Message: r.Message}
	if !r.Available {
		reason := string(r.Reason)
		res.Reason = &reason
	}
	return res
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
