package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// Vertical forces two points to share the same x coordinate.
type Vertical struct {
	A, B string
}

func NewVertical(a, b string) *Vertical { return &Vertical{A: a, B: b} }

func (c *Vertical) Kind() Kind        { return KindVertical }
func (c *Vertical) Dim() int          { return 1 }
func (c *Vertical) References() []string { return []string{c.A, c.B} }

func (c *Vertical) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	xb, _ := pm.GlobalIndex(c.B, 0)
	p := pm.P()
	r[rowOffset] = p[xa] - p[xb]
}

func (c *Vertical) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	xb, _ := pm.GlobalIndex(c.B, 0)
	j.Set(rowOffset, xa, 1)
	j.Set(rowOffset, xb, -1)
}
