package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtoiOr(t *testing.T) {
	assert.Equal(t, 7, atoiOr("7", 0))
	assert.Equal(t, 3, atoiOr("", 3))
	assert.Equal(t, 3, atoiOr("abc", 3))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a ,, b "))
	assert.Empty(t, splitCSV(" , "))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "03", monthKey("3"))
	assert.Equal(t, "11", monthKey("11"))
	assert.Equal(t, "09", monthKey(" 9 "))
}

func TestYearMonthParams(t *testing.T) {
	year, month, err := yearMonthParams("2025", "3", 2024, 1)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)

	// defaults when absent
	year, month, err = yearMonthParams("", "", 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)

	_, _, err = yearMonthParams("2025", "13", 2024, 1)
	assert.Error(t, err)
}
