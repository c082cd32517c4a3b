package gcs

import "github.com/go-constraints/gcs/constraint"

// The following helpers build ConstraintDescriptor values for each
// implemented kind, so callers write gcs.Vertical("p1", "p2") instead
// of filling in ConstraintDescriptor's generic fields by hand.

func Vertical(a, b string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindVertical, A: a, B: b}
}

func Horizontal(a, b string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindHorizontal, A: a, B: b}
}

func EqualX(a string, target float64) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindEqualX, A: a, Target: target}
}

func EqualY(a string, target float64) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindEqualY, A: a, Target: target}
}

func Coincident(a, b string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindCoincident, A: a, B: b}
}

func Parallel(a, b, c, d string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindParallel, A: a, B: b, C: c, D: d}
}

func PointOnLine(p, a, b string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindPointOnLine, P: p, A: a, B: b}
}

func EqualRadius(c1, c2 string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindEqualRadius, Circle: c1, Circle2: c2}
}

func FixedRadius(c string, target float64) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindFixedRadius, Circle: c, Target: target}
}

func PointOnCircle(p, c string) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindPointOnCircle, P: p, Circle: c}
}

func Tangent(c1, c2 string, external bool) ConstraintDescriptor {
	return ConstraintDescriptor{Kind: constraint.KindTangent, Circle: c1, Circle2: c2, External: external}
}
