package queries

import (
	"context"

	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/readmodel"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrForbidden       = errs.ErrForbidden
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
}

type BookingQueries interface {
	Get(ctx context.Context, id uuid.UUID, actor shared.Actor) (*readmodel.BookingRM, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID, actor shared.Actor) (*readmodel.BookingRM, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if !actor.CanAccess(b.UserID) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return q.store.ListByUser(ctx, userID)
}
