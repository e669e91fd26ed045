//go:build unit

package car_test

import (
	"testing"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityRecord_Check(t *testing.T) {
	booked := builder.Span(t, 24, 48, uuid.New())
	maintenance := builder.Maintenance(t, 72, 96, "brake service")

	testCases := []struct {
		name     string
		manual   bool
		from, to int
		expected car.Availability
	}{
		{name: "free window", manual: true, from: 0, to: 10, expected: car.Availability{Available: true}},
		{name: "overlaps booking", manual: true, from: 30, to: 40, expected: car.Availability{Reason: car.ReasonBooked}},
		{name: "touches booking end", manual: true, from: 48, to: 60, expected: car.Availability{Reason: car.ReasonBooked}},
		{name: "touches booking start", manual: true, from: 10, to: 24, expected: car.Availability{Reason: car.ReasonBooked}},
		{name: "overlaps maintenance", manual: true, from: 80, to: 90, expected: car.Availability{Reason: car.ReasonMaintenance}},
		{name: "touches maintenance start", manual: true, from: 60, to: 72, expected: car.Availability{Reason: car.ReasonMaintenance}},
		{name: "booking wins over maintenance", manual: true, from: 40, to: 80, expected: car.Availability{Reason: car.ReasonBooked}},
		{name: "maintenance wins over manual flag", manual: false, from: 80, to: 90, expected: car.Availability{Reason: car.ReasonMaintenance}},
		{name: "manually disabled", manual: false, from: 0, to: 10, expected: car.Availability{Reason: car.ReasonManuallyDisabled}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := car.NewAvailabilityRecord(tc.manual, []car.ReservedSpan{booked}, []car.MaintenanceSpan{maintenance})
			assert.Equal(t, tc.expected, record.Check(builder.Window(t, tc.from, tc.to)))
		})
	}
}

func TestAvailabilityRecord_TouchingBoundaryAsymmetry(t *testing.T) {
	existing := builder.Span(t, 0, 24, uuid.New())
	record := car.NewAvailabilityRecord(true, []car.ReservedSpan{existing}, nil)
	touching := builder.Window(t, 24, 48)

	assert.Equal(t, car.ReasonBooked, record.Check(touching).Reason, "availability check counts touching endpoints")
	assert.False(t, record.ConflictsWith(touching), "reservation test ignores touching endpoints")
}

func TestFilterAvailable(t *testing.T) {
	free := builder.NewCarBuilder().BuildReconstructed()
	booked := builder.NewCarBuilder().WithReserved(t, 0, 10, uuid.New()).BuildReconstructed()
	inService := builder.NewCarBuilder().WithMaintenance(t, 5, 8, "tyres").BuildReconstructed()
	disabled := builder.NewCarBuilder().WithManuallyAvailable(false).BuildReconstructed()
	touching := builder.NewCarBuilder().WithReserved(t, 10, 20, uuid.New()).BuildReconstructed()

	cars := []*car.Car{free, booked, inService, disabled, touching}
	requested := builder.Window(t, 2, 10)

	batch := car.CheckBatch(cars, requested)
	for i, c := range cars {
		assert.Equal(t, c.CheckAvailability(requested), batch[i], "bulk result must match point-wise result for car %d", i)
	}

	kept := car.FilterAvailable(cars, requested)
	assert.Equal(t, []*car.Car{free}, kept)
}
