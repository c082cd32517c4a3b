package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// EqualX pins a point's x coordinate to a target value.
type EqualX struct {
	A      string
	Target float64
}

func NewEqualX(a string, target float64) *EqualX { return &EqualX{A: a, Target: target} }

func (c *EqualX) Kind() Kind           { return KindEqualX }
func (c *EqualX) Dim() int             { return 1 }
func (c *EqualX) References() []string { return []string{c.A} }

func (c *EqualX) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	r[rowOffset] = pm.P()[xa] - c.Target
}

func (c *EqualX) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	j.Set(rowOffset, xa, 1)
}
