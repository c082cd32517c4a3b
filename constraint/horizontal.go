package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// Horizontal forces two points to share the same y coordinate.
type Horizontal struct {
	A, B string
}

func NewHorizontal(a, b string) *Horizontal { return &Horizontal{A: a, B: b} }

func (c *Horizontal) Kind() Kind           { return KindHorizontal }
func (c *Horizontal) Dim() int             { return 1 }
func (c *Horizontal) References() []string { return []string{c.A, c.B} }

func (c *Horizontal) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	ya, _ := pm.GlobalIndex(c.A, 1)
	yb, _ := pm.GlobalIndex(c.B, 1)
	p := pm.P()
	r[rowOffset] = p[ya] - p[yb]
}

func (c *Horizontal) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	ya, _ := pm.GlobalIndex(c.A, 1)
	yb, _ := pm.GlobalIndex(c.B, 1)
	j.Set(rowOffset, ya, 1)
	j.Set(rowOffset, yb, -1)
}
