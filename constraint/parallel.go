package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// Parallel forces direction (b-a) to be parallel to direction (d-c),
// via the 2D cross product of the two direction vectors.
type Parallel struct {
	A, B, C, D string
}

func NewParallel(a, b, c, d string) *Parallel { return &Parallel{A: a, B: b, C: c, D: d} }

func (c *Parallel) Kind() Kind           { return KindParallel }
func (c *Parallel) Dim() int             { return 1 }
func (c *Parallel) References() []string { return []string{c.A, c.B, c.C, c.D} }

// parallelIdx is the set of global column indices this constraint
// touches, plus the direction vectors derived from them.
type parallelIdx struct {
	xa, ya, xb, yb, xc, yc, xd, yd int
	u1, u2, v1, v2                 float64
}

func (c *Parallel) indices(pm *param.Manager) parallelIdx {
	var idx parallelIdx
	idx.xa, _ = pm.GlobalIndex(c.A, 0)
	idx.ya, _ = pm.GlobalIndex(c.A, 1)
	idx.xb, _ = pm.GlobalIndex(c.B, 0)
	idx.yb, _ = pm.GlobalIndex(c.B, 1)
	idx.xc, _ = pm.GlobalIndex(c.C, 0)
	idx.yc, _ = pm.GlobalIndex(c.C, 1)
	idx.xd, _ = pm.GlobalIndex(c.D, 0)
	idx.yd, _ = pm.GlobalIndex(c.D, 1)
	p := pm.P()
	idx.u1, idx.u2 = p[idx.xb]-p[idx.xa], p[idx.yb]-p[idx.ya]
	idx.v1, idx.v2 = p[idx.xd]-p[idx.xc], p[idx.yd]-p[idx.yc]
	return idx
}

func (c *Parallel) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	idx := c.indices(pm)
	r[rowOffset] = idx.u1*idx.v2 - idx.u2*idx.v1
}

func (c *Parallel) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	idx := c.indices(pm)
	j.Set(rowOffset, idx.xa, -idx.v2)
	j.Set(rowOffset, idx.ya, idx.v1)
	j.Set(rowOffset, idx.xb, idx.v2)
	j.Set(rowOffset, idx.yb, -idx.v1)
	j.Set(rowOffset, idx.xc, idx.u2)
	j.Set(rowOffset, idx.yc, -idx.u1)
	j.Set(rowOffset, idx.xd, -idx.u2)
	j.Set(rowOffset, idx.yd, idx.u1)
}
