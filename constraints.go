package gcs

import (
	"github.com/go-constraints/gcs/constraint"
	"github.com/go-constraints/gcs/gcserr"
)

// ConstraintDescriptor is the language-neutral, tagged-union shape of
// a constraint (spec.md §6): Kind selects which fields are
// meaningful. It is what a JSON envelope deserializes into before
// reaching AddConstraint.
type ConstraintDescriptor struct {
	Kind constraint.Kind

	// Point or circle ids, meaning depends on Kind:
	//   Vertical, Horizontal, Coincident: A, B
	//   EqualX, EqualY:                   A
	//   Parallel:                         A, B, C, D
	//   PointOnLine:                      P, A, B
	//   EqualRadius:                      Circle, Circle2
	//   FixedRadius:                      Circle
	//   PointOnCircle:                    P, Circle
	//   Tangent:                          Circle, Circle2
	A, B, C, D     string
	P              string
	Circle, Circle2 string

	Target   float64 // EqualX, EqualY, FixedRadius
	External bool    // Tangent
}

// AddConstraint validates every entity id the descriptor references
// and, if the kind is implemented, appends the resulting constraint to
// the coordinator's list (spec.md §4.5, §6, §7).
func (c *Coordinator) AddConstraint(d ConstraintDescriptor) error {
	if !constraint.Implemented(d.Kind) {
		return gcserr.New(gcserr.Unimplemented, "constraint kind %v is not implemented", d.Kind)
	}

	switch d.Kind {
	case constraint.KindVertical:
		if err := c.requirePoint(d.A); err != nil {
			return err
		}
		if err := c.requirePoint(d.B); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewVertical(d.A, d.B))

	case constraint.KindHorizontal:
		if err := c.requirePoint(d.A); err != nil {
			return err
		}
		if err := c.requirePoint(d.B); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewHorizontal(d.A, d.B))

	case constraint.KindEqualX:
		if err := c.requirePoint(d.A); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewEqualX(d.A, d.Target))

	case constraint.KindEqualY:
		if err := c.requirePoint(d.A); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewEqualY(d.A, d.Target))

	case constraint.KindCoincident:
		if err := c.requirePoint(d.A); err != nil {
			return err
		}
		if err := c.requirePoint(d.B); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewCoincident(d.A, d.B))

	case constraint.KindParallel:
		for _, id := range []string{d.A, d.B, d.C, d.D} {
			if err := c.requirePoint(id); err != nil {
				return err
			}
		}
		c.constraints = append(c.constraints, constraint.NewParallel(d.A, d.B, d.C, d.D))

	case constraint.KindPointOnLine:
		for _, id := range []string{d.P, d.A, d.B} {
			if err := c.requirePoint(id); err != nil {
				return err
			}
		}
		c.constraints = append(c.constraints, constraint.NewPointOnLine(d.P, d.A, d.B))

	case constraint.KindEqualRadius:
		if _, err := c.requireCircle(d.Circle); err != nil {
			return err
		}
		if _, err := c.requireCircle(d.Circle2); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewEqualRadius(d.Circle, d.Circle2))

	case constraint.KindFixedRadius:
		if _, err := c.requireCircle(d.Circle); err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewFixedRadius(d.Circle, d.Target))

	case constraint.KindPointOnCircle:
		if err := c.requirePoint(d.P); err != nil {
			return err
		}
		circ, err := c.requireCircle(d.Circle)
		if err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewPointOnCircle(d.P, d.Circle, circ.CenterId))

	case constraint.KindTangent:
		c1, err := c.requireCircle(d.Circle)
		if err != nil {
			return err
		}
		c2, err := c.requireCircle(d.Circle2)
		if err != nil {
			return err
		}
		c.constraints = append(c.constraints, constraint.NewTangent(d.Circle, d.Circle2, c1.CenterId, c2.CenterId, d.External))

	default:
		return gcserr.New(gcserr.Unimplemented, "constraint kind %v is not implemented", d.Kind)
	}

	return nil
}
