package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("29/02/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	none, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, none)

	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := ParseDateOr("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)
}

func TestPeriodParams_Parse(t *testing.T) {
	from, to, err := PeriodParams{From: "2024-04-01", To: "2025-03-31"}.Parse()
	require.NoError(t, err)
	assert.True(t, from.Before(to))
}
