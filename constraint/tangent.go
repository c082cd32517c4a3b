package constraint

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// tangentDegenerateEps guards the 1/D term when two centers coincide.
const tangentDegenerateEps = 1e-12

// Tangent forces two circles to be tangent (spec.md §9):
//
//	r = ‖c1-c2‖ - (r1 + sign*r2)
//
// sign is +1 when External is true (external tangency: circles outside
// one another) and -1 when it is false (internal tangency: one circle
// inside the other); a descriptor that leaves External unset gets
// internal tangency. Center1/Center2 are the circles' center point ids, resolved
// once by the coordinator at constraint-creation time.
type Tangent struct {
	C1, C2                 string
	Center1, Center2       string
	External               bool
}

func NewTangent(c1, c2, center1, center2 string, external bool) *Tangent {
	return &Tangent{C1: c1, C2: c2, Center1: center1, Center2: center2, External: external}
}

func (c *Tangent) Kind() Kind { return KindTangent }
func (c *Tangent) Dim() int   { return 1 }
func (c *Tangent) References() []string {
	return []string{c.C1, c.C2, c.Center1, c.Center2}
}

func (c *Tangent) sign() float64 {
	if c.External {
		return 1
	}
	return -1
}

type tangentState struct {
	x1, y1, x2, y2, r1, r2 int
	dx, dy, dist           float64
}

func (c *Tangent) state(pm *param.Manager) tangentState {
	var s tangentState
	s.x1, _ = pm.GlobalIndex(c.Center1, 0)
	s.y1, _ = pm.GlobalIndex(c.Center1, 1)
	s.x2, _ = pm.GlobalIndex(c.Center2, 0)
	s.y2, _ = pm.GlobalIndex(c.Center2, 1)
	s.r1, _ = pm.GlobalIndex(c.C1, 0)
	s.r2, _ = pm.GlobalIndex(c.C2, 0)
	p := pm.P()
	s.dx, s.dy = p[s.x2]-p[s.x1], p[s.y2]-p[s.y1]
	s.dist = math.Sqrt(s.dx*s.dx + s.dy*s.dy)
	if s.dist < tangentDegenerateEps {
		s.dist = tangentDegenerateEps
	}
	return s
}

func (c *Tangent) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	s := c.state(pm)
	p := pm.P()
	r[rowOffset] = s.dist - (p[s.r1] + c.sign()*p[s.r2])
}

func (c *Tangent) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	s := c.state(pm)
	j.Set(rowOffset, s.x1, -s.dx/s.dist)
	j.Set(rowOffset, s.y1, -s.dy/s.dist)
	j.Set(rowOffset, s.x2, s.dx/s.dist)
	j.Set(rowOffset, s.y2, s.dy/s.dist)
	j.Set(rowOffset, s.r1, -1)
	j.Set(rowOffset, s.r2, -c.sign())
}
