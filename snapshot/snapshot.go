// Package snapshot reconciles the resource roster with the sparse
// per-period records persisted for a view, producing one display-ready
// row per resource. It is the single authoritative merge used by every
// grid on the dashboard.
package snapshot

import "sort"

// Merge builds one row per roster entry, in roster order.
//
// Precedence per entry:
//  1. a persisted record, combined with the roster entry via fromPersisted
//     (persisted carries the store id, so later saves update instead of
//     inserting);
//  2. a prior in-memory row, reused verbatim so unsaved edits survive a
//     background refresh;
//  3. a fresh row with default field values.
//
// The result always has exactly len(roster) rows and never two rows for
// the same key. Persisted records without a roster entry do not surface
// here; see Orphans. A caller whose persisted fetch failed passes a nil
// map and still gets a renderable result.
func Merge[R, P, Row any](
	roster []R,
	key func(R) string,
	persisted map[string]P,
	prior map[string]Row,
	fromPersisted func(R, P) Row,
	fresh func(R) Row,
) []Row {
	rows := make([]Row, 0, len(roster))
	for _, r := range roster {
		k := key(r)
		if p, ok := persisted[k]; ok {
			rows = append(rows, fromPersisted(r, p))
			continue
		}
		if row, ok := prior[k]; ok {
			rows = append(rows, row)
			continue
		}
		rows = append(rows, fresh(r))
	}
	return rows
}

// Orphans returns the persisted keys that have no roster entry, sorted.
// These are typically historical records of a deleted resource; callers
// decide whether to surface or ignore them.
func Orphans[R, P any](roster []R, key func(R) string, persisted map[string]P) []string {
	known := make(map[string]struct{}, len(roster))
	for _, r := range roster {
		known[key(r)] = struct{}{}
	}
	var orphans []string
	for k := range persisted {
		if _, ok := known[k]; !ok {
			orphans = append(orphans, k)
		}
	}
	sort.Strings(orphans)
	return orphans
}
