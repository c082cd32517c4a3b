package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// Assemble concatenates every constraint's residual rows and Jacobian
// columns in insertion order (spec.md §4.3): m = sum of each
// constraint's Dim(), r in R^m, J in R^(m x n). No reordering, no
// symbolic simplification — pure and repeatable for the same P.
func Assemble(constraints []Constraint, pm *param.Manager) (r []float64, j *mat.Dense) {
	m := 0
	for _, c := range constraints {
		m += c.Dim()
	}
	n := pm.Len()
	r = make([]float64, m)
	if m == 0 {
		// gonum's mat.NewDense panics on a zero-row matrix; an empty
		// constraint set has an empty residual (‖r‖=0, trivially
		// satisfied) so there are no Jacobian rows to hold.
		return r, nil
	}
	j = mat.NewDense(m, n, nil)

	offset := 0
	for _, c := range constraints {
		c.AddResidual(pm, r, offset)
		c.AddJacobian(pm, j, offset)
		offset += c.Dim()
	}
	return r, j
}
