package commands

import (
	"context"
	"log/slog"

	"car-rental-engine/internal/domain/booking"
	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/domain/pricing"
	"car-rental-engine/internal/infra"
	"car-rental-engine/internal/pkg/clock"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidTier      = errs.ErrInvalidTier
	ErrBookingNotFound  = errs.ErrBookingNotFound
	ErrDuplicateBooking = errs.ErrDuplicateBooking
	ErrBookingNotActive = errs.ErrBookingNotActive
	ErrForbidden        = errs.ErrForbidden
)

type ConfirmBookingInput struct {
	UserID           uuid.UUID
	CarID            uuid.UUID
	Window           shared.DateWindow
	TierID           string
	PaymentReference string
}

type ConfirmBookingResult struct {
	BookingID  uuid.UUID
	TotalPrice int64
}

type BookingCommands interface {
	Confirm(ctx context.Context, in ConfirmBookingInput) (*ConfirmBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error
	CompleteFinished(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	calculator *pricing.Calculator
	clock      clock.Clock
	recorder   ReservationRecorder
}

func NewBookingUseCase(uow shared.UnitOfWork, calculator *pricing.Calculator, clk clock.Clock, recorder ReservationRecorder) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		calculator: calculator,
		clock:      clk,
		recorder:   recorderOrNop(recorder),
	}
}

// Confirm runs after the payment gateway reported success. The booking row and the
// car's reserved span commit together or not at all.
func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, in ConfirmBookingInput) (*ConfirmBookingResult, error) {
	iv, err := interval.New(in.Window.Start, in.Window.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if _, ok := uc.calculator.Policy().Tier(in.TierID); !ok {
		return nil, ErrInvalidTier
	}

	var result ConfirmBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Cars().FindForUpdate(ctx, in.CarID)
		if derr != nil {
			return markNotFound(derr, ErrCarNotFound)
		}
		if derr = checkBookable(c, iv); derr != nil {
			return derr
		}

		quote, derr := uc.calculator.Quote(c.Pricing(), iv)
		if derr != nil {
			return errs.Mark(derr, ErrInvalidRange)
		}
		tier, _ := quote.Tier(in.TierID)

		b, derr := booking.NewConfirmedBooking(in.UserID, c.ID(), iv, tier.ID, tier.FinalPrice, in.PaymentReference, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidInput)
		}

		// The booking row goes in last so it never shows up without its span.
		span, derr := car.NewReservedSpan(iv, b.ID())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidInput)
		}
		if derr = commitReservation(ctx, tx, uc.recorder, c.ID(), span); derr != nil {
			return derr
		}
		if derr = tx.Cars().AddRevenue(ctx, c.ID(), b.TotalPrice()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateBooking)
			}
			return derr
		}

		result = ConfirmBookingResult{BookingID: b.ID(), TotalPrice: b.TotalPrice()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking confirmed",
		"booking_id", result.BookingID.String(),
		"car_id", in.CarID.String(),
		"total_price", result.TotalPrice)
	return &result, nil
}

// checkBookable rejects maintenance and manual holds under the inclusive rule.
// Booked spans are left to the strict check in commitReservation.
func checkBookable(c *car.Car, iv interval.Interval) error {
	if !c.IsActive() {
		return errs.Mark(errs.New("car is inactive"), ErrConflict)
	}
	switch reason := c.CheckAvailability(iv).Reason; reason {
	case car.ReasonMaintenance, car.ReasonManuallyDisabled:
		return errs.Mark(errs.New(reason.Message()), ErrConflict)
	}
	return nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByID(ctx, bookingID)
		if derr != nil {
			return markNotFound(derr, ErrBookingNotFound)
		}
		if !actor.CanAccess(b.UserID()) {
			return ErrForbidden
		}

		wasCounted := b.Status().CountsAsRevenue()
		if derr = b.Cancel(uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrBookingNotActive)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, b); derr != nil {
			return derr
		}

		// Spans committed through the internal endpoint may be released already.
		if _, derr = tx.Reservations().Release(ctx, b.CarID(), b.ID()); derr != nil {
			return derr
		}
		if wasCounted {
			return tx.Cars().AddRevenue(ctx, b.CarID(), -b.TotalPrice())
		}
		return nil
	})
}

// CompleteFinished moves confirmed bookings whose rental has ended to completed.
func (uc *bookingUseCaseImpl) CompleteFinished(ctx context.Context) (int64, error) {
	var completed int64
	err := uc.uow.WithinRetry(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Bookings().CompleteFinished(ctx, uc.clock.Now())
		if derr != nil {
			return derr
		}
		completed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return completed, nil
}

func markNotFound(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) || errs.Is(err, target) {
		return errs.Mark(err, target)
	}
	return err
}
