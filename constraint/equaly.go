package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// EqualY pins a point's y coordinate to a target value.
type EqualY struct {
	A      string
	Target float64
}

func NewEqualY(a string, target float64) *EqualY { return &EqualY{A: a, Target: target} }

func (c *EqualY) Kind() Kind           { return KindEqualY }
func (c *EqualY) Dim() int             { return 1 }
func (c *EqualY) References() []string { return []string{c.A} }

func (c *EqualY) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	ya, _ := pm.GlobalIndex(c.A, 1)
	r[rowOffset] = pm.P()[ya] - c.Target
}

func (c *EqualY) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	ya, _ := pm.GlobalIndex(c.A, 1)
	j.Set(rowOffset, ya, 1)
}
