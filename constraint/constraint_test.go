package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/go-constraints/gcs/entity"
	"github.com/go-constraints/gcs/param"
)

func newTestManager(points map[string][2]float64, circles map[string]float64) *param.Manager {
	pm := param.NewManager()
	for id, xy := range points {
		pm.Register(id, entity.KindPoint, []float64{xy[0], xy[1]}, false)
	}
	for id, radius := range circles {
		pm.Register(id, entity.KindCircle, []float64{radius}, false)
	}
	return pm
}

func TestVerticalJacobian(tst *testing.T) {
	chk.PrintTitle("vertical jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{"a": {1, 2}, "b": {4, 9}}, nil)
	checkJacobian(tst, NewVertical("a", "b"), pm)
}

func TestHorizontalJacobian(tst *testing.T) {
	chk.PrintTitle("horizontal jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{"a": {1, 2}, "b": {4, 9}}, nil)
	checkJacobian(tst, NewHorizontal("a", "b"), pm)
}

func TestEqualXJacobian(tst *testing.T) {
	chk.PrintTitle("equal-x jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{"a": {3, 5}}, nil)
	checkJacobian(tst, NewEqualX("a", 7), pm)
}

func TestEqualYJacobian(tst *testing.T) {
	chk.PrintTitle("equal-y jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{"a": {3, 5}}, nil)
	checkJacobian(tst, NewEqualY("a", -2), pm)
}

func TestCoincidentJacobian(tst *testing.T) {
	chk.PrintTitle("coincident jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{"a": {1, 2}, "b": {4, 9}}, nil)
	checkJacobian(tst, NewCoincident("a", "b"), pm)
}

func TestParallelJacobian(tst *testing.T) {
	chk.PrintTitle("parallel jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{
		"a": {0, 0}, "b": {4, 1}, "c": {0, 5}, "d": {3, 7},
	}, nil)
	checkJacobian(tst, NewParallel("a", "b", "c", "d"), pm)
}

func TestPointOnLineJacobianInterior(tst *testing.T) {
	chk.PrintTitle("point-on-line jacobian vs finite difference (interior)")
	pm := newTestManager(map[string][2]float64{
		"p": {5, 3}, "a": {0, 0}, "b": {10, 0},
	}, nil)
	checkJacobian(tst, NewPointOnLine("p", "a", "b"), pm)
}

func TestPointOnLineJacobianClampedLow(tst *testing.T) {
	chk.PrintTitle("point-on-line jacobian vs finite difference (clamped at t=0)")
	pm := newTestManager(map[string][2]float64{
		"p": {-5, 3}, "a": {0, 0}, "b": {10, 0},
	}, nil)
	checkJacobian(tst, NewPointOnLine("p", "a", "b"), pm)
}

func TestPointOnLineJacobianClampedHigh(tst *testing.T) {
	chk.PrintTitle("point-on-line jacobian vs finite difference (clamped at t=1)")
	pm := newTestManager(map[string][2]float64{
		"p": {15, 3}, "a": {0, 0}, "b": {10, 0},
	}, nil)
	checkJacobian(tst, NewPointOnLine("p", "a", "b"), pm)
}

func TestEqualRadiusJacobian(tst *testing.T) {
	chk.PrintTitle("equal-radius jacobian vs finite difference")
	pm := newTestManager(nil, map[string]float64{"c1": 3, "c2": 7})
	checkJacobian(tst, NewEqualRadius("c1", "c2"), pm)
}

func TestFixedRadiusJacobian(tst *testing.T) {
	chk.PrintTitle("fixed-radius jacobian vs finite difference")
	pm := newTestManager(nil, map[string]float64{"c1": 3})
	checkJacobian(tst, NewFixedRadius("c1", 5), pm)
}

func TestPointOnCircleJacobian(tst *testing.T) {
	chk.PrintTitle("point-on-circle jacobian vs finite difference")
	pm := newTestManager(map[string][2]float64{
		"p": {3, 4}, "center": {0, 0},
	}, map[string]float64{"c1": 5})
	checkJacobian(tst, NewPointOnCircle("p", "c1", "center"), pm)
}

func TestTangentJacobianExternal(tst *testing.T) {
	chk.PrintTitle("tangent jacobian vs finite difference (external)")
	pm := newTestManager(map[string][2]float64{
		"o1": {0, 0}, "o2": {10, 0},
	}, map[string]float64{"c1": 4, "c2": 6})
	checkJacobian(tst, NewTangent("c1", "c2", "o1", "o2", true), pm)
}

func TestTangentJacobianInternal(tst *testing.T) {
	chk.PrintTitle("tangent jacobian vs finite difference (internal)")
	pm := newTestManager(map[string][2]float64{
		"o1": {0, 0}, "o2": {10, 0},
	}, map[string]float64{"c1": 4, "c2": 6})
	checkJacobian(tst, NewTangent("c1", "c2", "o1", "o2", false), pm)
}

func TestImplementedKinds(tst *testing.T) {
	chk.PrintTitle("implemented reports every cataloged kind")
	for _, k := range []Kind{
		KindVertical, KindHorizontal, KindEqualX, KindEqualY, KindCoincident,
		KindParallel, KindPointOnLine, KindEqualRadius, KindFixedRadius,
		KindPointOnCircle, KindTangent,
	} {
		if !Implemented(k) {
			tst.Errorf("Implemented(%v) = false, want true", k)
		}
	}
	if Implemented(KindUnknown) {
		tst.Errorf("Implemented(KindUnknown) = true, want false")
	}
}

func TestAssembleConcatenatesRows(tst *testing.T) {
	chk.PrintTitle("assemble concatenates residual rows in order")
	pm := newTestManager(map[string][2]float64{"a": {1, 2}, "b": {4, 9}}, nil)
	cs := []Constraint{NewVertical("a", "b"), NewHorizontal("a", "b")}
	r, j := Assemble(cs, pm)
	if len(r) != 2 {
		tst.Errorf("len(r) = %d, want 2", len(r))
	}
	rows, cols := j.Dims()
	if rows != 2 || cols != pm.Len() {
		tst.Errorf("J dims = (%d,%d), want (2,%d)", rows, cols, pm.Len())
	}
	chk.Scalar(tst, "r[0] (vertical: xa-xb)", 1e-15, r[0], 1-4)
	chk.Scalar(tst, "r[1] (horizontal: ya-yb)", 1e-15, r[1], 2-9)
}

func TestAssembleEmptyConstraintSetDoesNotPanic(tst *testing.T) {
	chk.PrintTitle("assemble tolerates a registered system with no constraints")
	pm := newTestManager(map[string][2]float64{"a": {1, 2}}, nil)
	r, j := Assemble(nil, pm)
	if len(r) != 0 {
		tst.Errorf("len(r) = %d, want 0", len(r))
	}
	if j != nil {
		tst.Errorf("j = %v, want nil for an empty residual", j)
	}
}
