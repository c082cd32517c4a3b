package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// Coincident forces two points to occupy the same location.
type Coincident struct {
	A, B string
}

func NewCoincident(a, b string) *Coincident { return &Coincident{A: a, B: b} }

func (c *Coincident) Kind() Kind           { return KindCoincident }
func (c *Coincident) Dim() int             { return 2 }
func (c *Coincident) References() []string { return []string{c.A, c.B} }

func (c *Coincident) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	ya, _ := pm.GlobalIndex(c.A, 1)
	xb, _ := pm.GlobalIndex(c.B, 0)
	yb, _ := pm.GlobalIndex(c.B, 1)
	p := pm.P()
	r[rowOffset] = p[xa] - p[xb]
	r[rowOffset+1] = p[ya] - p[yb]
}

func (c *Coincident) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	xa, _ := pm.GlobalIndex(c.A, 0)
	ya, _ := pm.GlobalIndex(c.A, 1)
	xb, _ := pm.GlobalIndex(c.B, 0)
	yb, _ := pm.GlobalIndex(c.B, 1)
	j.Set(rowOffset, xa, 1)
	j.Set(rowOffset, xb, -1)
	j.Set(rowOffset+1, ya, 1)
	j.Set(rowOffset+1, yb, -1)
}
