package depsort

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// ID identifies a node for the duration of one sort. An ID is either named,
// carrying a comparable value read from the record's id field, or anonymous,
// comparing equal only to itself. Anonymous identities exist so that records
// without a usable id still participate in ordering; other records can never
// spell such an id in their depends list, so anonymous nodes only self-match.
type ID struct {
	value any
	anon  *Node
}

// NamedID creates an ID from a comparable value.
// Passing a non-comparable value (slice, map, function) will make later
// equality checks panic; Normalize guards against this, direct callers
// must do the same.
func NamedID(v any) ID { return ID{value: v} }

// Anonymous reports whether the ID identifies its node by reference only.
func (id ID) Anonymous() bool { return id.anon != nil }

// Value returns the named id value, or nil for anonymous IDs.
func (id ID) Value() any { return id.value }

func (id ID) String() string {
	if id.anon != nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("%v", id.value)
}

// equal compares two IDs. Anonymous IDs use reference equality against the
// owning node; named IDs use value equality.
func (id ID) equal(other ID) bool {
	if id.anon != nil || other.anon != nil {
		return id.anon == other.anon
	}
	return id.value == other.value
}

// mark is the transient traversal state used by OrderByDependency.
type mark uint8

const (
	unvisited mark = iota
	inProgress
	visited
)

// Node is the internal working representation of one record. Nodes are
// created fresh by Normalize at the start of each sort, reordered and marked
// during the two ordering phases, and unwrapped with Restore before results
// are returned. The original record is never mutated.
type Node struct {
	ID      ID
	Weight  float64
	Depends []ID
	Source  any // the original record, returned by Restore

	mark mark
}

// DependsOn reports whether id appears in the node's depends set.
func (n *Node) DependsOn(id ID) bool {
	for _, d := range n.Depends {
		if d.equal(id) {
			return true
		}
	}
	return false
}

// Normalize wraps a record in a fresh Node. It never fails: records that are
// not map-shaped become opaque nodes with an anonymous identity, the default
// weight, and no dependencies. For map records, a missing or non-comparable
// id falls back to an anonymous identity, a missing or non-numeric weight
// falls back to Options.DefaultWeight, and a scalar depends value is treated
// as a one-element list.
func (s *Sorter) Normalize(record any) *Node {
	n := &Node{Source: record, Weight: s.opts.DefaultWeight}

	fields, ok := record.(map[string]any)
	if !ok {
		n.ID = ID{anon: n}
		return n
	}

	if v, present := fields[s.opts.IDField]; present && comparableValue(v) {
		n.ID = ID{value: v}
	} else {
		n.ID = ID{anon: n}
	}
	if w, ok := numeric(fields[s.opts.WeightField]); ok {
		n.Weight = w
	}
	n.Depends = dependsOf(fields[s.opts.DependsField])
	return n
}

// Restore unwraps a node back to its original record.
func Restore(n *Node) any { return n.Source }

func comparableValue(v any) bool {
	return v != nil && reflect.TypeOf(v).Comparable()
}

// numeric extracts a float64 from the usual decoded-number shapes.
// JSON decoding yields float64 (or json.Number with UseNumber), TOML yields
// int64 or float64; plain Go ints cover hand-built records.
func numeric(v any) (float64, bool) {
	switch w := v.(type) {
	case float64:
		return w, true
	case float32:
		return float64(w), true
	case int:
		return float64(w), true
	case int8:
		return float64(w), true
	case int16:
		return float64(w), true
	case int32:
		return float64(w), true
	case int64:
		return float64(w), true
	case uint:
		return float64(w), true
	case uint8:
		return float64(w), true
	case uint16:
		return float64(w), true
	case uint32:
		return float64(w), true
	case uint64:
		return float64(w), true
	case json.Number:
		f, err := w.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// dependsOf normalizes a depends field value into a list of named IDs.
// Falsy values (nil, empty string, zero numbers, false) yield no
// dependencies; slices yield one entry per comparable element; any other
// scalar yields a single entry.
func dependsOf(v any) []ID {
	if falsy(v) {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		ids := make([]ID, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if e := rv.Index(i).Interface(); comparableValue(e) {
				ids = append(ids, ID{value: e})
			}
		}
		return ids
	}

	if !comparableValue(v) {
		return nil
	}
	return []ID{{value: v}}
}

// falsy reports whether a depends field value means "no dependencies".
func falsy(v any) bool {
	switch v {
	case nil, "", false:
		return true
	}
	f, ok := numeric(v)
	return ok && f == 0
}
