package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayAppliesTo(t *testing.T) {
	h := Holiday{Locations: "Pune, Mumbai, Chennai"}

	assert.True(t, h.AppliesTo("chennai"))
	assert.True(t, h.AppliesTo(" Pune "))
	assert.False(t, h.AppliesTo("Bangalore"))

	// empty list means every office
	assert.True(t, Holiday{}.AppliesTo("Pune"))
}
