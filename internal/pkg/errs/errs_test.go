//go:build unit

package errs_test

import (
	"errors"
	"strings"
	"testing"

	"car-rental-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	base := errors.New("insert failed")
	marked := errs.Mark(base, errs.ErrConflict)

	assert.True(t, errs.Is(marked, errs.ErrConflict))
	assert.True(t, errs.Is(marked, base))
	assert.ErrorIs(t, marked, base)
	assert.False(t, errs.Is(marked, errs.ErrCarNotFound))
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))

	wrapped := errs.Wrap(errs.ErrCarNotFound, "load car")
	assert.ErrorIs(t, wrapped, errs.ErrCarNotFound)
	assert.Contains(t, wrapped.Error(), "load car")
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}

func TestExtractStackLines_SkipsBlankLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.Wrap(errs.New("boom"), "reserve"), 0)

	assert.NotEmpty(t, lines)
	for _, line := range lines {
		assert.NotEmpty(t, line)
		assert.Equal(t, line, strings.TrimSpace(line))
	}
}
