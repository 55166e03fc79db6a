package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m := Build([]Record{
		{ResourceID: 7, Date: "2025-03-03", Status: 1},
		{ResourceID: 7, Date: "2025-03-04", Status: 0},
		{ResourceID: 9, Date: "2025-03-03", Status: 1},
	})

	assert.Equal(t, 1, m[7]["2025-03-03"])
	assert.Equal(t, 0, m[7]["2025-03-04"])
	assert.Equal(t, 1, m[9]["2025-03-03"])
}

func TestBuildLastWriteWins(t *testing.T) {
	m := Build([]Record{
		{ResourceID: 7, Date: "2025-03-03", Status: 0},
		{ResourceID: 7, Date: "2025-03-03", Status: 1},
	})

	assert.Equal(t, 1, m[7]["2025-03-03"])
}

func TestToggle(t *testing.T) {
	m := Build([]Record{
		{ResourceID: 7, Date: "2025-03-03", Status: 1},
		{ResourceID: 7, Date: "2025-03-04", Status: 0},
	})

	checked, total := m.Toggle(7, "2025-03-04", 1, 2025, time.March)

	assert.Equal(t, 2, checked)
	assert.Equal(t, 21, total) // March 2025 has 21 weekdays
}

func TestToggleIdempotent(t *testing.T) {
	m := Build(nil)

	c1, _ := m.Toggle(3, "2025-03-10", 1, 2025, time.March)
	c2, _ := m.Toggle(3, "2025-03-10", 1, 2025, time.March)

	assert.Equal(t, c1, c2)
	assert.Equal(t, 1, c2)
}

func TestCountIgnoresOtherMonths(t *testing.T) {
	// carry-over from a previously viewed month must not count
	m := Build([]Record{
		{ResourceID: 5, Date: "2025-02-28", Status: 1},
		{ResourceID: 5, Date: "2025-03-03", Status: 1},
		{ResourceID: 5, Date: "2025-03-05", Status: 0},
	})

	checked, total := m.Count(5, 2025, time.March)

	assert.Equal(t, 1, checked)
	assert.Equal(t, 21, total)
}

func TestCountUnknownResource(t *testing.T) {
	m := Build(nil)

	checked, total := m.Count(99, 2025, time.March)

	assert.Equal(t, 0, checked)
	assert.Equal(t, 21, total)
}

func TestEntriesRoundTripOrdered(t *testing.T) {
	m := Build(nil)
	m.Toggle(9, "2025-03-04", 1, 2025, time.March)
	m.Toggle(7, "2025-03-05", 0, 2025, time.March)
	m.Toggle(7, "2025-03-03", 1, 2025, time.March)

	entries := m.Entries()

	require.Len(t, entries, 3)
	assert.Equal(t, Record{ResourceID: 7, Date: "2025-03-03", Status: 1}, entries[0])
	assert.Equal(t, Record{ResourceID: 7, Date: "2025-03-05", Status: 0}, entries[1])
	assert.Equal(t, Record{ResourceID: 9, Date: "2025-03-04", Status: 1}, entries[2])
}
