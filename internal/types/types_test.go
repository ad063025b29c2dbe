package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDates(t *testing.T) {
	date, err := ParseDate("2010-01-13")
	assert.NoError(t, err)
	assert.Equal(t, NewDate(2010, 1, 13), date)
	assert.Equal(t, "2010-01-13", date.String())

	_, err = ParseDate("2010-13-01")
	assert.Error(t, err)

	local := time.Date(2010, 1, 13, 23, 30, 0, 0, time.FixedZone("test", -5*3600))
	assert.Equal(t, NewDate(2010, 1, 13), DateOf(local))
}

func TestDateRanges(t *testing.T) {
	r, err := ParseDateRange("2010-01-12..2011-01-12")
	assert.NoError(t, err)
	assert.Equal(t, DateRange{From: NewDate(2010, 1, 12), To: NewDate(2011, 1, 12)}, r)
	assert.Equal(t, "2010-01-12..2011-01-12", r.String())
	assert.True(t, r.From.Before(r.To))

	_, err = ParseDateRange("2010-01-12")
	assert.Error(t, err)
	_, err = ParseDateRange("2010-01-12..later")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	err := NewError(UnknownAttribute, "name", "unknown")
	assert.True(t, errors.Is(err, Error{Code: UnknownAttribute}))
	assert.False(t, errors.Is(err, Error{Code: AttributeNotFound}))
	assert.Equal(t, "unknown", err.Context["name"])
	assert.Panics(t, func() { NewError("odd", "name") })
}
