package constraint

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/param"
)

// FixedRadius pins a circle's radius to a target value (spec.md §9).
type FixedRadius struct {
	C      string
	Target float64
}

func NewFixedRadius(c string, target float64) *FixedRadius { return &FixedRadius{C: c, Target: target} }

func (c *FixedRadius) Kind() Kind           { return KindFixedRadius }
func (c *FixedRadius) Dim() int             { return 1 }
func (c *FixedRadius) References() []string { return []string{c.C} }

func (c *FixedRadius) AddResidual(pm *param.Manager, r []float64, rowOffset int) {
	ri, _ := pm.GlobalIndex(c.C, 0)
	r[rowOffset] = pm.P()[ri] - c.Target
}

func (c *FixedRadius) AddJacobian(pm *param.Manager, j *mat.Dense, rowOffset int) {
	ri, _ := pm.GlobalIndex(c.C, 0)
	j.Set(rowOffset, ri, 1)
}
