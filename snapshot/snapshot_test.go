package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource struct {
	EmpID string
	Name  string
}

type record struct {
	ID       uint
	Whizible string
	Comments string
}

type row struct {
	EmpID    string
	Name     string
	ID       uint
	Whizible string
	Comments string
}

func empID(r resource) string { return r.EmpID }

func fromPersisted(r resource, p record) row {
	return row{EmpID: r.EmpID, Name: r.Name, ID: p.ID, Whizible: p.Whizible, Comments: p.Comments}
}

func fresh(r resource) row {
	return row{EmpID: r.EmpID, Name: r.Name}
}

func TestMergeFreshDefaults(t *testing.T) {
	roster := []resource{{EmpID: "A1", Name: "Alice"}}

	rows := Merge(roster, empID, nil, nil, fromPersisted, fresh)

	require.Len(t, rows, 1)
	assert.Equal(t, row{EmpID: "A1", Name: "Alice"}, rows[0])
}

func TestMergePersistedWins(t *testing.T) {
	roster := []resource{
		{EmpID: "A1", Name: "Alice"},
		{EmpID: "B2", Name: "Bob"},
	}
	persisted := map[string]record{
		"A1": {ID: 42, Whizible: "8h", Comments: "ok"},
	}
	prior := map[string]row{
		"A1": {EmpID: "A1", Name: "Alice", Whizible: "typed but stale"},
	}

	rows := Merge(roster, empID, persisted, prior, fromPersisted, fresh)

	require.Len(t, rows, 2)
	// persisted beats the prior edit and carries the store id
	assert.Equal(t, uint(42), rows[0].ID)
	assert.Equal(t, "8h", rows[0].Whizible)
	assert.Equal(t, row{EmpID: "B2", Name: "Bob"}, rows[1])
}

func TestMergeKeepsUnsavedEdits(t *testing.T) {
	roster := []resource{{EmpID: "A1", Name: "Alice"}}
	prior := map[string]row{
		"A1": {EmpID: "A1", Name: "Alice", Whizible: "half-typed"},
	}

	rows := Merge(roster, empID, nil, prior, fromPersisted, fresh)

	require.Len(t, rows, 1)
	assert.Equal(t, "half-typed", rows[0].Whizible)
}

func TestMergeRosterShaped(t *testing.T) {
	roster := []resource{
		{EmpID: "A1", Name: "Alice"},
		{EmpID: "B2", Name: "Bob"},
		{EmpID: "C3", Name: "Cara"},
	}
	// orphan key X9 must not surface as a row
	persisted := map[string]record{
		"B2": {ID: 7},
		"X9": {ID: 99},
	}

	rows := Merge(roster, empID, persisted, nil, fromPersisted, fresh)

	require.Len(t, rows, len(roster))
	seen := map[string]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.EmpID])
		seen[r.EmpID] = true
	}
}

func TestMergeIdempotent(t *testing.T) {
	roster := []resource{
		{EmpID: "A1", Name: "Alice"},
		{EmpID: "B2", Name: "Bob"},
	}
	persisted := map[string]record{"A1": {ID: 1, Whizible: "w"}}

	first := Merge(roster, empID, persisted, nil, fromPersisted, fresh)
	second := Merge(roster, empID, persisted, nil, fromPersisted, fresh)

	assert.Equal(t, first, second)
}

func TestOrphans(t *testing.T) {
	roster := []resource{{EmpID: "A1"}, {EmpID: "B2"}}
	persisted := map[string]record{
		"B2": {},
		"Z1": {},
		"X9": {},
	}

	assert.Equal(t, []string{"X9", "Z1"}, Orphans(roster, empID, persisted))
	assert.Empty(t, Orphans(roster, empID, map[string]record{"A1": {}}))
}
