// Package depsort orders collections of interdependent records into a single
// sequence that respects every declared dependency while biasing records
// toward the front or back according to a signed weight.
//
// # Overview
//
// A record is any value; map-shaped records (map[string]any, the natural
// result of decoding JSON or TOML) expose three configurable fields:
//
//   - id: a comparable value identifying the record (default field "id")
//   - weight: a signed number controlling placement (default field "weight")
//   - depends: the ids this record must come after (default field "depends")
//
// Sorting happens in two phases. A depth-first topological pass produces a
// valid dependency order, keeping records with no dependency relationship in
// their input order, then a weight pass nudges each record toward an end
// of the sequence: negative weights float toward the front, positive weights
// toward the back, and larger magnitudes float further. A dependency edge is
// a hard wall: no amount of weight moves a record past something it depends
// on, or past something that depends on it.
//
// # Usage
//
//	sorted, err := depsort.Sort([]any{
//	    map[string]any{"id": "app", "depends": "lib"},
//	    map[string]any{"id": "lib", "weight": -10.0},
//	})
//
// Field names and the default weight are configurable:
//
//	s := depsort.New(depsort.Options{IDField: "name", DependsField: "after"})
//	sorted, err := s.Sort(records)
//
// # Edge Cases
//
// Records without an id field (or with a non-comparable id value) receive an
// anonymous identity: they sort normally by weight but cannot be referenced
// from other records' depends lists. Dependency ids that match no record are
// inert. Missing or non-numeric weights fall back to Options.DefaultWeight,
// and math.Inf(-1) / math.Inf(1) are valid weights meaning "as far toward
// that end as dependencies allow".
//
// The only failure mode is a circular dependency, reported as a [CycleError].
//
// # Advanced Use
//
// [OrderByDependency] and [OrderByWeight] operate on pre-normalized [Node]
// sequences directly, for callers that want to run the phases separately or
// inspect the intermediate order.
package depsort
