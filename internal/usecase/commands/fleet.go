package commands

import (
	"context"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"
	"car-rental-engine/internal/pkg/clock"
	"car-rental-engine/internal/pkg/errs"
	"car-rental-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrMaintenanceNotFound = errs.ErrMaintenanceNotFound

type CreateCarInput struct {
	Attributes      car.Attributes
	BaseRatePerDay  int64
	ExtraKmCharge   int64
	SecurityDeposit int64
}

type FleetCommands interface {
	CreateCar(ctx context.Context, in CreateCarInput) (uuid.UUID, error)
	ScheduleMaintenance(ctx context.Context, carID uuid.UUID, window shared.DateWindow, reason string) (uuid.UUID, error)
	RemoveMaintenance(ctx context.Context, carID, maintenanceID uuid.UUID) error
	SetManualAvailability(ctx context.Context, carID uuid.UUID, available bool) error
}

type fleetUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFleetUseCase(uow shared.UnitOfWork, clk clock.Clock) FleetCommands {
	return &fleetUseCaseImpl{uow: uow, clock: clk}
}

func (uc *fleetUseCaseImpl) CreateCar(ctx context.Context, in CreateCarInput) (uuid.UUID, error) {
	profile, err := car.NewPricingProfile(in.BaseRatePerDay, in.ExtraKmCharge, in.SecurityDeposit)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}
	c, err := car.NewCar(in.Attributes, profile, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *fleetUseCaseImpl) ScheduleMaintenance(ctx context.Context, carID uuid.UUID, window shared.DateWindow, reason string) (uuid.UUID, error) {
	iv, err := interval.New(window.Start, window.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRange)
	}
	span, err := car.NewMaintenanceSpan(iv, reason)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Cars().FindForUpdate(ctx, carID); derr != nil {
			return markNotFound(derr, ErrCarNotFound)
		}
		return tx.Cars().AddMaintenance(ctx, carID, span)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return span.ID(), nil
}

func (uc *fleetUseCaseImpl) RemoveMaintenance(ctx context.Context, carID, maintenanceID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Cars().FindForUpdate(ctx, carID); derr != nil {
			return markNotFound(derr, ErrCarNotFound)
		}
		removed, derr := tx.Cars().RemoveMaintenance(ctx, carID, maintenanceID)
		if derr != nil {
			return derr
		}
		if !removed {
			return ErrMaintenanceNotFound
		}
		return nil
	})
}

func (uc *fleetUseCaseImpl) SetManualAvailability(ctx context.Context, carID uuid.UUID, available bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Cars().FindForUpdate(ctx, carID); derr != nil {
			return markNotFound(derr, ErrCarNotFound)
		}
		return tx.Cars().SetManualAvailability(ctx, carID, available)
	})
}
