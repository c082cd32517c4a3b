package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// degenerateLineEps is the squared-length threshold below which a
// line segment is treated as a single point (spec.md §4.2).
const degenerateLineEps = 1e-12

// PointOnLine forces point P onto the segment [A,B], with its
// projection parameter t clamped to [0,1].
//
// At any t strictly inside (0,1), p-proj is orthogonal to (B-A), so
// the chain-rule term through dt/d(params) vanishes identically and
// the total derivative of the residual equals its partial derivative
// with t held fixed. At a clamped boundary (t=0 or t=1) the same
// formula is exact too: the far endpoint's coefficient (t or 1-t)
// degenerates to zero on its own, dropping that endpoint from the
// gradient exactly as it drops out of the residual.
type PointOnLine struct {
	P, A, B string
}

func NewPointOnLine(p, a, b string) *PointOnLine { return &PointOnLine{P: p, A: a, B: b} }

func (c *PointOnLine) Kind() Kind           { return KindPointOnLine }
func (c *PointOnLine) Dim() int             { return 1 }
func (c *PointOnLine) References() []string { return []string{c.P, c.A, c.B} }

type pointOnLineState struct {
	xp, yp, xa, ya, xb, yb int
	t, ex, ey              float64
}

func (c *PointOnLine) state(pm *param.Manager) pointOnLineState {
	var s pointOnLineState
	s.xp, _ = pm.GlobalIndex(c.P, 0)
	s.yp, _ = pm.GlobalIndex(c.P, 1)
	s.xa, _ = pm.GlobalIndex(c.A, 0)
	s.ya, _ = pm.GlobalIndex(c.A, 1)
	s.xb, _ = pm.GlobalIndex(c.B, 0)
	s.yb, _ = pm.GlobalIndex(c.B, 1)
	p := pm.P()
	xp, yp, xa, ya, xb, yb := p[s.xp], p[s.yp], p[s.xa], p[s.ya], p[s.xb], p[s.yb]

	dx, dy := xb-xa, yb-ya
	len2 := dx*dx + dy*dy
	t := 0.0
	if len2 >= degenerateLineEps {
		traw := ((xp-xa)*dx + (yp-ya)*dy) / len2
		t = clamp01(traw)
	}
	s.t = t
	s.ex = xp - (1-t)*xa - t*xb
	s.ey = yp - (1-t)*ya - t*yb
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c *PointOnLine) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	s := c.state(pm)
	r[rowOffset] = s.ex*s.ex + s.ey*s.ey
}

func (c *PointOnLine) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	s := c.state(pm)
	t := s.t
	j.Set(rowOffset, s.xp, 2*s.ex)
	j.Set(rowOffset, s.yp, 2*s.ey)
	j.Set(rowOffset, s.xa, -2*(1-t)*s.ex)
	j.Set(rowOffset, s.ya, -2*(1-t)*s.ey)
	j.Set(rowOffset, s.xb, -2*t*s.ex)
	j.Set(rowOffset, s.yb, -2*t*s.ey)
}
