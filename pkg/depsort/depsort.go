package depsort

// Default field names used when the corresponding Options field is empty.
const (
	DefaultIDField      = "id"
	DefaultWeightField  = "weight"
	DefaultDependsField = "depends"
)

// Options configures how records are read during normalization.
// The zero value is valid and selects the defaults: fields "id", "weight"
// and "depends", with a default weight of 0.
type Options struct {
	// IDField names the record field holding the identity value.
	IDField string
	// WeightField names the record field holding the signed weight.
	WeightField string
	// DependsField names the record field holding the dependency id list.
	DependsField string
	// DefaultWeight is used when the weight field is absent or non-numeric.
	DefaultWeight float64
}

func (o Options) withDefaults() Options {
	if o.IDField == "" {
		o.IDField = DefaultIDField
	}
	if o.WeightField == "" {
		o.WeightField = DefaultWeightField
	}
	if o.DependsField == "" {
		o.DependsField = DefaultDependsField
	}
	return o
}

// Sorter orders record sequences according to its Options.
// A Sorter holds no per-call state, so a single instance is safe to use from
// multiple goroutines as long as each call gets its own input slice.
type Sorter struct {
	opts Options
}

// New creates a Sorter, filling in defaults for any empty Options fields.
func New(opts Options) *Sorter {
	return &Sorter{opts: opts.withDefaults()}
}

// Options returns the effective options with defaults applied.
func (s *Sorter) Options() Options { return s.opts }

// Sort orders records with the default Options.
func Sort(records []any) ([]any, error) {
	return New(Options{}).Sort(records)
}

// Sort returns a new sequence containing every input record, ordered so that
// no record appears before one it depends on, with weight biasing applied
// within that constraint. The input slice is never mutated.
//
// Sort fails with a [CycleError] if the dependency graph contains a cycle;
// no partial result is returned.
func (s *Sorter) Sort(records []any) ([]any, error) {
	nodes := make([]*Node, len(records))
	for i, r := range records {
		nodes[i] = s.Normalize(r)
	}

	ordered, err := OrderByDependency(nodes)
	if err != nil {
		return nil, err
	}
	OrderByWeight(ordered)

	out := make([]any, len(ordered))
	for i, n := range ordered {
		out[i] = Restore(n)
	}
	return out, nil
}
