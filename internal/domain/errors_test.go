package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{NewInvalidDateError("month %d out of range", 13), "invalid_date"},
		{fmt.Errorf("boy chart: %w", &InvalidLocationError{Latitude: 91}), "invalid_location"},
		{fmt.Errorf("resolve: %w", &EphemerisUnavailableError{Body: Moon, Err: cause}), "ephemeris_unavailable"},
		{&InvalidNakshatraError{Index: 28}, "invalid_nakshatra"},
		{cause, "internal"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Kind(tc.err))
	}
}

func TestEphemerisUnavailable_Unwraps(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("chart: %w", &EphemerisUnavailableError{Body: Sun, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsEphemerisUnavailable(err))
	assert.Contains(t, err.Error(), "ephemeris unavailable for Sun: timeout")
}

func TestBusinessError(t *testing.T) {
	assert.Nil(t, WrapBusinessError(nil))

	inner := NewInvalidDateError("bad")
	err := WrapBusinessError(inner)
	assert.True(t, IsBusinessError(err))
	assert.True(t, IsInvalidDate(err))
	assert.False(t, IsBusinessError(inner))
}
