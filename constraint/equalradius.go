package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// EqualRadius forces two circles to share the same radius.
type EqualRadius struct {
	C1, C2 string
}

func NewEqualRadius(c1, c2 string) *EqualRadius { return &EqualRadius{C1: c1, C2: c2} }

func (c *EqualRadius) Kind() Kind           { return KindEqualRadius }
func (c *EqualRadius) Dim() int             { return 1 }
func (c *EqualRadius) References() []string { return []string{c.C1, c.C2} }

func (c *EqualRadius) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	r1, _ := pm.GlobalIndex(c.C1, 0)
	r2, _ := pm.GlobalIndex(c.C2, 0)
	p := pm.P()
	r[rowOffset] = p[r1] - p[r2]
}

func (c *EqualRadius) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	r1, _ := pm.GlobalIndex(c.C1, 0)
	r2, _ := pm.GlobalIndex(c.C2, 0)
	j.Set(rowOffset, r1, 1)
	j.Set(rowOffset, r2, -1)
}
