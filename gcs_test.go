package gcs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/go-constraints/gcs/constraint"
	"github.com/go-constraints/gcs/gcserr"
)

func TestScenarioVertical(tst *testing.T) {
	chk.PrintTitle("scenario: vertical")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	c.AddPoint("p2", 1, 1, false)
	if err := c.AddConstraint(Vertical("p1", "p2")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	result := c.Solve()
	if result.Status.String() != "Converged" {
		tst.Errorf("status = %v", result.Status)
	}
	p1, _ := c.GetPoint("p1")
	p2, _ := c.GetPoint("p2")
	if math.Abs(p1.X-p2.X) >= 1e-6 {
		tst.Errorf("|p1.x - p2.x| = %v, want < 1e-6", math.Abs(p1.X-p2.X))
	}
}

func TestScenarioHorizontal(tst *testing.T) {
	chk.PrintTitle("scenario: horizontal")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	c.AddPoint("p2", 1, 1, false)
	if err := c.AddConstraint(Horizontal("p1", "p2")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	p1, _ := c.GetPoint("p1")
	p2, _ := c.GetPoint("p2")
	if math.Abs(p1.Y-p2.Y) >= 1e-6 {
		tst.Errorf("|p1.y - p2.y| = %v, want < 1e-6", math.Abs(p1.Y-p2.Y))
	}
}

func TestScenarioCoincidentWithAnchor(tst *testing.T) {
	chk.PrintTitle("scenario: coincident with anchor")
	c := New()
	c.AddPoint("p1", 0, 0, true)
	c.AddPoint("p2", 3, 5, false)
	if err := c.AddConstraint(Coincident("p1", "p2")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	p1, _ := c.GetPoint("p1")
	p2, _ := c.GetPoint("p2")
	chk.Scalar(tst, "p1.x unchanged", 1e-15, p1.X, 0)
	chk.Scalar(tst, "p1.y unchanged", 1e-15, p1.Y, 0)
	if math.Hypot(p2.X, p2.Y) >= 1e-4 {
		tst.Errorf("p2 = (%v,%v), want near (0,0)", p2.X, p2.Y)
	}
}

func TestScenarioEqualX(tst *testing.T) {
	chk.PrintTitle("scenario: equal-x")
	c := New()
	c.AddPoint("p1", 12, 7, false)
	if err := c.AddConstraint(EqualX("p1", 5)); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	p1, _ := c.GetPoint("p1")
	if math.Abs(p1.X-5) >= 1e-6 {
		tst.Errorf("|p1.x - 5| = %v, want < 1e-6", math.Abs(p1.X-5))
	}
}

func TestScenarioParallel(tst *testing.T) {
	chk.PrintTitle("scenario: parallel")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	c.AddPoint("p2", 1, 1, false)
	c.AddPoint("p3", 0, 1, false)
	c.AddPoint("p4", 1, 5, false)
	if err := c.AddConstraint(Parallel("p1", "p2", "p3", "p4")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	p1, _ := c.GetPoint("p1")
	p2, _ := c.GetPoint("p2")
	p3, _ := c.GetPoint("p3")
	p4, _ := c.GetPoint("p4")
	a1 := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	a2 := math.Atan2(p4.Y-p3.Y, p4.X-p3.X)
	diff := math.Mod(math.Abs(a1-a2), math.Pi)
	if diff > 1e-4 && math.Abs(diff-math.Pi) > 1e-4 {
		tst.Errorf("direction angles differ: %v vs %v", a1, a2)
	}
}

func TestScenarioPointOnLine(tst *testing.T) {
	chk.PrintTitle("scenario: point on line")
	c := New()
	c.AddPoint("p1", 0, 0, true)
	c.AddPoint("p2", 0, 4, true)
	c.AddPoint("p3", 1, 1, false)
	if err := c.AddConstraint(PointOnLine("p3", "p1", "p2")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	p3, _ := c.GetPoint("p3")
	if math.Abs(p3.X) >= 1e-3 {
		tst.Errorf("|p3.x| = %v, want < 1e-3", math.Abs(p3.X))
	}
}

func TestScenarioEqualRadius(tst *testing.T) {
	chk.PrintTitle("scenario: equal radius")
	c := New()
	c.AddPoint("o1", 0, 0, true)
	c.AddPoint("o2", 10, 0, true)
	c.AddCircle("c1", "o1", 10, false)
	c.AddCircle("c2", "o2", 3, false)
	if err := c.AddConstraint(EqualRadius("c1", "c2")); err != nil {
		tst.Fatalf("AddConstraint failed: %v", err)
	}
	c.Solve()
	circ1, _ := c.GetCircle("c1")
	circ2, _ := c.GetCircle("c2")
	if math.Abs(circ1.Radius-circ2.Radius) >= 1e-6 {
		tst.Errorf("|r1 - r2| = %v, want < 1e-6", math.Abs(circ1.Radius-circ2.Radius))
	}
	if circ1.Radius < 3 || circ1.Radius > 10 {
		tst.Errorf("r1 = %v, want in [3,10]", circ1.Radius)
	}
}

func TestFixedPointUnchangedBySolve(tst *testing.T) {
	chk.PrintTitle("fixed invariance: fixed point is bit-identical after solve")
	c := New()
	c.AddPoint("anchor", 2, 3, true)
	c.AddPoint("free", 9, 9, false)
	c.AddConstraint(Coincident("anchor", "free"))
	c.Solve()
	anchor, _ := c.GetPoint("anchor")
	if anchor.X != 2 || anchor.Y != 3 {
		tst.Errorf("anchor moved to (%v,%v), want bit-identical (2,3)", anchor.X, anchor.Y)
	}
}

func TestAddConstraintUnknownReference(tst *testing.T) {
	chk.PrintTitle("error path: unknown reference")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	err := c.AddConstraint(Vertical("p1", "does-not-exist"))
	if !gcserr.Is(err, gcserr.UnknownReference) {
		tst.Errorf("expected UnknownReference, got %v", err)
	}
}

func TestAddPointDuplicateId(tst *testing.T) {
	chk.PrintTitle("error path: duplicate id")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	_, err := c.AddPoint("p1", 1, 1, false)
	if !gcserr.Is(err, gcserr.DuplicateId) {
		tst.Errorf("expected DuplicateId, got %v", err)
	}
}

func TestAddConstraintUnimplementedKind(tst *testing.T) {
	chk.PrintTitle("error path: unimplemented constraint kind")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	c.AddPoint("p2", 1, 1, false)
	err := c.AddConstraint(ConstraintDescriptor{Kind: constraint.KindUnknown, A: "p1", B: "p2"})
	if !gcserr.Is(err, gcserr.Unimplemented) {
		tst.Errorf("expected Unimplemented, got %v", err)
	}
}

func TestAddLineRequiresExistingPoints(tst *testing.T) {
	chk.PrintTitle("error path: line references missing point")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	_, err := c.AddLine("l1", "p1", "missing")
	if !gcserr.Is(err, gcserr.UnknownReference) {
		tst.Errorf("expected UnknownReference, got %v", err)
	}
}

func TestResetClearsState(tst *testing.T) {
	chk.PrintTitle("reset clears entities and constraints")
	c := New()
	c.AddPoint("p1", 0, 0, false)
	c.AddPoint("p2", 1, 1, false)
	c.AddConstraint(Vertical("p1", "p2"))
	c.Reset()
	if _, ok := c.GetPoint("p1"); ok {
		tst.Errorf("point survived Reset")
	}
	// after reset, the same id can be reused without a DuplicateId error
	if _, err := c.AddPoint("p1", 0, 0, false); err != nil {
		tst.Errorf("AddPoint after Reset failed: %v", err)
	}
}

func TestSolveWithNoConstraintsConverges(tst *testing.T) {
	chk.PrintTitle("solve with registered primitives but no constraints converges immediately")
	c := New()
	c.AddPoint("p1", 1, 2, false)
	c.AddPoint("p2", 3, 4, true)
	result := c.Solve()
	if result.Status.String() != "Converged" {
		tst.Errorf("status = %v, want Converged", result.Status)
	}
	if result.FinalError != 0 {
		tst.Errorf("final error = %v, want 0", result.FinalError)
	}
	p1, _ := c.GetPoint("p1")
	if p1.X != 1 || p1.Y != 2 {
		tst.Errorf("p1 = (%v,%v), want unchanged (1,2)", p1.X, p1.Y)
	}
}
