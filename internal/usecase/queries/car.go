package queries

import (
	"context"
	"strings"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/domain/pricing"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/readmodel"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange = errs.ErrInvalidRange
	ErrInvalidInput = errs.ErrInvalidInput
	ErrCarNotFound  = errs.ErrCarNotFound
)

type CarSort string

const (
	SortNewest    CarSort = "-createdAt"
	SortOldest    CarSort = "createdAt"
	SortPriceAsc  CarSort = "price"
	SortPriceDesc CarSort = "-price"
)

func (s CarSort) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc:
		return true
	default:
		return false
	}
}

// CarFilter narrows active cars. When Window is set the store only needs to load
// reserved and maintenance spans that touch it.
type CarFilter struct {
	City         string
	Category     string
	Transmission string
	FuelType     string
	Search       string
	MinPrice     *int64
	MaxPrice     *int64
	MinSeats     *int
	Featured     *bool
	Sort         CarSort
	Window       *interval.Interval
}

type CarListParams struct {
	Filter CarFilter
	Window *shared.DateWindow
	Page   Page
}

type CarListItem struct {
	Car               *readmodel.CarRM `json:"car"`
	CalculatedPricing *QuoteView       `json:"calculated_pricing,omitempty"`
}

type CarListPage struct {
	Items       []CarListItem `json:"items"`
	Total       int           `json:"total"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
}

type AvailabilityResult struct {
	Available bool       `json:"available"`
	Reason    car.Reason `json:"reason"`
	Message   string     `json:"message"`
}

type CarReadStore interface {
	// FindByID returns the car with its full availability record.
	FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	// Search returns every matching active car in filter.Sort order.
	Search(ctx context.Context, filter CarFilter) ([]*car.Car, error)
	Cities(ctx context.Context) ([]string, error)
}

type CarQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error)
	Cities(ctx context.Context) ([]string, error)
	CheckAvailability(ctx context.Context, carID uuid.UUID, window shared.DateWindow) (*AvailabilityResult, error)
	Quote(ctx context.Context, carID uuid.UUID, window shared.DateWindow) (*QuoteView, error)
	List(ctx context.Context, params CarListParams) (*CarListPage, error)
}

type carQueriesImpl struct {
	store      CarReadStore
	calculator *pricing.Calculator
	recorder   QuoteRecorder
}

func NewCarQueries(store CarReadStore, calculator *pricing.Calculator, recorder QuoteRecorder) CarQueries {
	return &carQueriesImpl{
		store:      store,
		calculator: calculator,
		recorder:   recorderOrNop(recorder),
	}
}

func (q *carQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.CarRM, error) {
	c, err := q.findCar(ctx, id)
	if err != nil {
		return nil, err
	}
	return readmodel.CarFromDomain(c), nil
}

func (q *carQueriesImpl) Cities(ctx context.Context) ([]string, error) {
	return q.store.Cities(ctx)
}

func (q *carQueriesImpl) CheckAvailability(ctx context.Context, carID uuid.UUID, window shared.DateWindow) (*AvailabilityResult, error) {
	iv, err := interval.New(window.Start, window.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	c, err := q.findCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	a := c.CheckAvailability(iv)
	return &AvailabilityResult{
		Available: a.Available,
		Reason:    a.Reason,
		Message:   a.Reason.Message(),
	}, nil
}

func (q *carQueriesImpl) Quote(ctx context.Context, carID uuid.UUID, window shared.DateWindow) (*QuoteView, error) {
	iv, err := interval.New(window.Start, window.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	c, err := q.findCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	return q.quote(c, iv, QuoteSourceQuote)
}

// List filters before paginating so pages only ever contain bookable cars.
func (q *carQueriesImpl) List(ctx context.Context, params CarListParams) (*CarListPage, error) {
	filter := params.Filter
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Sort == "" {
		filter.Sort = SortNewest
	}
	if !filter.Sort.IsValid() {
		return nil, errs.Mark(errs.New("unsupported sort "+string(filter.Sort)), ErrInvalidInput)
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, errs.Mark(errs.New("minPrice exceeds maxPrice"), ErrInvalidInput)
	}

	var iv *interval.Interval
	if params.Window != nil {
		parsed, err := interval.New(params.Window.Start, params.Window.End)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidRange)
		}
		iv = &parsed
	}
	filter.Window = iv

	cars, err := q.store.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if iv != nil {
		cars = car.FilterAvailable(cars, *iv)
	}

	page := params.Page.Normalize()
	rows := paginate(cars, page)

	items := make([]CarListItem, 0, len(rows))
	for _, c := range rows {
		item := CarListItem{Car: readmodel.CarFromDomain(c)}
		if iv != nil {
			view, qerr := q.quote(c, *iv, QuoteSourceList)
			if qerr != nil {
				return nil, qerr
			}
			item.CalculatedPricing = view
		}
		items = append(items, item)
	}

	return &CarListPage{
		Items:       items,
		Total:       len(cars),
		TotalPages:  TotalPages(len(cars), page.Limit),
		CurrentPage: page.Number,
	}, nil
}

func (q *carQueriesImpl) quote(c *car.Car, iv interval.Interval, source string) (*QuoteView, error) {
	quote, err := q.calculator.Quote(c.Pricing(), iv)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	q.recorder.PriceQuote(source)
	return newQuoteView(c, quote), nil
}

func (q *carQueriesImpl) findCar(ctx context.Context, id uuid.UUID) (*car.Car, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCarNotFound)
		}
		return nil, err
	}
	return c, nil
}
