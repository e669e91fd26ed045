//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"car-rental-engine/internal/domain/car"
	"car-rental-engine/internal/domain/interval"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// BaseTime anchors hour offsets used by the helpers below.
var BaseTime = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func Hours(h int) time.Time {
	return BaseTime.Add(time.Duration(h) * time.Hour)
}

func Window(t *testing.T, fromHour, toHour int) interval.Interval {
	t.Helper()
	iv, err := interval.New(Hours(fromHour), Hours(toHour))
	require.NoError(t, err)
	return iv
}

func Span(t *testing.T, fromHour, toHour int, bookingID uuid.UUID) car.ReservedSpan {
	t.Helper()
	span, err := car.NewReservedSpan(Window(t, fromHour, toHour), bookingID)
	require.NoError(t, err)
	return span
}

func Maintenance(t *testing.T, fromHour, toHour int, reason string) car.MaintenanceSpan {
	t.Helper()
	m, err := car.NewMaintenanceSpan(Window(t, fromHour, toHour), reason)
	require.NoError(t, err)
	return m
}
