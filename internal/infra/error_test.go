//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"car-rental-engine/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "explicit kind wins", err: errors.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
		{name: "empty result", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "exclusion constraint", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23P01"}), want: infra.KindConflict},
		{name: "nil cause", err: nil, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(wrapped, tc.want))
			if tc.err != nil {
				assert.ErrorIs(t, wrapped, tc.err)
			}
		})
	}

	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
}
