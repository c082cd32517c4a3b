// Package entity implements the solver-visible primitive model: Point,
// Circle, Arc and Line. Each primitive exposes its scalar parameters
// through the small Params capability instead of a tagged-variant
// encoding, mirroring the way the teacher's ele.Element interface lets
// heterogeneous element kinds plug into one assembly loop.
package entity

// Kind discriminates the four primitive shapes.
type Kind int

const (
	KindPoint Kind = iota
	KindCircle
	KindArc
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindCircle:
		return "Circle"
	case KindArc:
		return "Arc"
	case KindLine:
		return "Line"
	}
	return "Unknown"
}

// Params is the capability every solver-visible primitive implements:
// it exposes its local parameter vector, the names of those slots (for
// diagnostics), and whether the whole entity is frozen.
//
// Line carries no solver parameters of its own (it only references two
// Point ids), so it returns an empty slice.
type Params interface {
	Kind() Kind
	Values() []float64   // current local parameter values, in local-index order
	SetValues(v []float64) // overwrite local parameter values, in local-index order
	Names() []string     // parameter names, parallel to Values()
	Fixed() bool
}
