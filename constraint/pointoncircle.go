package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// PointOnCircle forces a point onto a circle's boundary (spec.md §9):
//
//	r = (xp-xc)^2 + (yp-yc)^2 - radius^2
//
// Center is the circle's center point id, resolved once by the
// coordinator at constraint-creation time (a Circle's center is a
// reference, not itself a solver parameter — see entity.Circle).
type PointOnCircle struct {
	P, Circle, Center string
}

func NewPointOnCircle(p, circle, center string) *PointOnCircle {
	return &PointOnCircle{P: p, Circle: circle, Center: center}
}

func (c *PointOnCircle) Kind() Kind           { return KindPointOnCircle }
func (c *PointOnCircle) Dim() int             { return 1 }
func (c *PointOnCircle) References() []string { return []string{c.P, c.Circle, c.Center} }

func (c *PointOnCircle) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	xp, _ := pm.GlobalIndex(c.P, 0)
	yp, _ := pm.GlobalIndex(c.P, 1)
	xc, _ := pm.GlobalIndex(c.Center, 0)
	yc, _ := pm.GlobalIndex(c.Center, 1)
	ri, _ := pm.GlobalIndex(c.Circle, 0)
	p := pm.P()
	dx, dy, rad := p[xp]-p[xc], p[yp]-p[yc], p[ri]
	r[rowOffset] = dx*dx + dy*dy - rad*rad
}

func (c *PointOnCircle) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	xp, _ := pm.GlobalIndex(c.P, 0)
	yp, _ := pm.GlobalIndex(c.P, 1)
	xc, _ := pm.GlobalIndex(c.Center, 0)
	yc, _ := pm.GlobalIndex(c.Center, 1)
	ri, _ := pm.GlobalIndex(c.Circle, 0)
	p := pm.P()
	dx, dy, rad := p[xp]-p[xc], p[yp]-p[yc], p[ri]
	j.Set(rowOffset, xp, 2*dx)
	j.Set(rowOffset, yp, 2*dy)
	j.Set(rowOffset, xc, -2*dx)
	j.Set(rowOffset, yc, -2*dy)
	j.Set(rowOffset, ri, -2*rad)
}
