package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// checkJacobian verifies c's analytical Jacobian against a central
// finite-difference approximation of each residual row, the way the
// teacher checks its stress-strain tangent operators against
// num.DerivCen in t_hyperelast1_test.go.
func checkJacobian(tst *testing.T, c Constraint, pm *param.Manager) {
	dim := c.Dim()
	r := make([]float64, dim)
	c.AddResidual(pm, r, 0)

	j := mat.NewDense(dim, pm.Len(), nil)
	c.AddJacobian(pm, j, 0)

	p := pm.P()
	tol := 1e-6
	for row := 0; row < dim; row++ {
		for col := 0; col < pm.Len(); col++ {
			orig := p[col]
			dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
				p[col] = x
				rr := make([]float64, dim)
				c.AddResidual(pm, rr, 0)
				p[col] = orig
				res = rr[row]
				return
			}, orig)
			chk.AnaNum(tst, io.Sf("%s d(r%d)/d(P%d)", c.Kind(), row, col), tol, j.At(row, col), dnum, false)
		}
	}
}
