package commands

import (
	"context"
	"errors"
	"log/slog"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange        = errs.ErrInvalidRange
	ErrInvalidInput        = errs.ErrInvalidInput
	ErrConflict            = errs.ErrConflict
	ErrCarNotFound         = errs.ErrCarNotFound
	ErrReservationNotFound = errs.ErrReservationNotFound
)

type ReserveInput struct {
	CarID     uuid.UUID
	BookingID uuid.UUID
	Window    shared.DateWindow
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) error
	Release(ctx context.Context, carID, bookingID uuid.UUID) error
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	recorder ReservationRecorder
}

func NewReservationUseCase(uow shared.UnitOfWork, recorder ReservationRecorder) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, recorder: recorderOrNop(recorder)}
}

func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) error {
	iv, err := interval.New(in.Window.Start, in.Window.End)
	if err != nil {
		return errs.Mark(err, ErrInvalidRange)
	}
	span, err := car.NewReservedSpan(iv, in.BookingID)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return commitReservation(ctx, tx, uc.recorder, in.CarID, span)
	})
}

func (uc *reservationUseCaseImpl) Release(ctx context.Context, carID, bookingID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Reservations().Release(ctx, carID, bookingID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrReservationNotFound
		}
		return nil
	})
}

// commitReservation is the single write path for reserved spans. A conflict is final
// for this attempt; callers decide whether to offer other dates.
func commitReservation(ctx context.Context, tx shared.Tx, recorder ReservationRecorder, carID uuid.UUID, span car.ReservedSpan) error {
	err := tx.Reservations().Reserve(ctx, carID, span)
	switch {
	case err == nil:
		recorder.ReservationAttempt(OutcomeReserved)
		return nil
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey), errors.Is(err, car.ErrSpanConflict):
		recorder.ReservationAttempt(OutcomeConflict)
		slog.InfoContext(ctx, "reservation conflict",
			"car_id", carID.String(),
			"booking_id", span.BookingID().String())
		return errs.Mark(err, ErrConflict)
	case infra.IsKind(err, infra.KindNotFound):
		recorder.ReservationAttempt(OutcomeError)
		return errs.Mark(err, ErrCarNotFound)
	default:
		recorder.ReservationAttempt(OutcomeError)
		return err
	}
}
