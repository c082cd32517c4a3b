// Package solver implements the Powell dog-leg trust-region method
// that drives the assembled constraint residuals to zero: a Gauss-
// Newton step blended with a steepest-descent (Cauchy) step inside an
// adaptive trust radius, with SVD pseudo-inverse fallback when the
// normal-equations matrix is rank-deficient.
//
// The outer loop here plays the role the teacher's FEsolver interface
// and its implicit-Newton time-stepping loop play for a FEM
// simulation (assemble -> check convergence -> propose step -> accept
// or reject -> adapt -> repeat), specialized to a single, time-free
// nonlinear least-squares solve.
package solver

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/go-constraints/gcs/constraint"
	"github.com/go-constraints/gcs/param"
)

// Config holds the dog-leg solver's tunables, defaulted the way the
// teacher's inp.SolverData defaults its nonlinear-solver knobs.
type Config struct {
	Tolerance          float64 // ‖r‖ below this is Converged
	MaxIterations      int
	InitialTrustRadius float64
	MaxTrustRadius     float64
	MinTrustRadius     float64 // Δ below this is MaxIterationsReached
	StagnationLimit    int     // consecutive plateaued iterations before giving up
	StagnationEps      float64 // |φ-φprev| below this counts as plateaued
	SingularValueCutoff float64
}

// DefaultConfig mirrors the constants named in spec.md §4.4.
func DefaultConfig() Config {
	return Config{
		Tolerance:           1e-6,
		MaxIterations:       100,
		InitialTrustRadius:  1.0,
		MaxTrustRadius:      10.0,
		MinTrustRadius:      1e-8,
		StagnationLimit:     5,
		StagnationEps:       1e-12,
		SingularValueCutoff: 1e-12,
	}
}

// DogLeg is the trust-region solver strategy (spec.md §4.4, §4.5: the
// coordinator owns "a single solver strategy object").
type DogLeg struct {
	Cfg Config
}

// NewDogLeg returns a DogLeg solver with the given configuration.
func NewDogLeg(cfg Config) *DogLeg { return &DogLeg{Cfg: cfg} }

// Solve drives pm's parameter vector toward satisfying every
// constraint in cs, respecting pm's fixed mask throughout.
func (d *DogLeg) Solve(cs []constraint.Constraint, pm *param.Manager) Result {
	cfg := d.Cfg
	trustRadius := cfg.InitialTrustRadius
	stagnation := 0
	phiPrev := math.Inf(1)
	initialPhi := 0.0

	for iter := 0; ; iter++ {
		r, j := constraint.Assemble(cs, pm)
		phi := floats.Norm(r, 2)
		if iter == 0 {
			initialPhi = phi
		}

		if phi < cfg.Tolerance {
			return Result{Status: Converged, Iterations: iter, InitialError: initialPhi, FinalError: phi}
		}

		if math.Abs(phi-phiPrev) < cfg.StagnationEps {
			stagnation++
			if stagnation > cfg.StagnationLimit {
				return Result{Status: MaxIterationsReached, Iterations: iter, InitialError: initialPhi, FinalError: phi}
			}
		} else {
			stagnation = 0
		}
		phiPrev = phi

		if iter >= cfg.MaxIterations {
			return Result{Status: MaxIterationsReached, Iterations: iter, InitialError: initialPhi, FinalError: phi}
		}

		rho := d.step(cs, pm, r, j, trustRadius)

		switch {
		case rho > 0.75:
			trustRadius = math.Min(2*trustRadius, cfg.MaxTrustRadius)
		case rho < 0.25:
			trustRadius /= 2
		}

		if trustRadius < cfg.MinTrustRadius {
			r, _ := constraint.Assemble(cs, pm)
			return Result{Status: MaxIterationsReached, Iterations: iter + 1, InitialError: initialPhi, FinalError: floats.Norm(r, 2)}
		}
	}
}

// step attempts one dog-leg step at the given trust radius, returning
// the step-quality ratio rho (spec.md §4.4, "Dog-leg step").
func (d *DogLeg) step(cs []constraint.Constraint, pm *param.Manager, r []float64, j *mat.Dense, trustRadius float64) float64 {
	n := pm.Len()
	m := len(r)

	rVec := mat.NewVecDense(m, r)
	g := mat.NewVecDense(n, nil)
	g.MulVec(j.T(), rVec)

	h := mat.NewDense(n, n, nil)
	h.Mul(j.T(), j)

	pgn := gaussNewtonStep(h, g, d.Cfg.SingularValueCutoff)
	pu := cauchyStep(j, g)

	step := dogLegCombine(pgn, pu, trustRadius)

	// predicted reduction: -g.step - 1/2 step.H.step
	hStep := make([]float64, n)
	stepVec := mat.NewVecDense(n, step)
	hStepVec := mat.NewVecDense(n, hStep)
	hStepVec.MulVec(h, stepVec)
	predicted := -floats.Dot(g.RawVector().Data, step) - 0.5*floats.Dot(step, hStep)

	before := pm.Snapshot()
	pm.ApplyStep(step)
	rNew, _ := constraint.Assemble(cs, pm)

	actual := 0.5*floats.Dot(r, r) - 0.5*floats.Dot(rNew, rNew)

	var rho float64
	if math.Abs(predicted) > 1e-12 {
		rho = actual / predicted
	} else {
		rho = 1
	}
	if math.IsNaN(rho) || math.IsInf(rho, 0) {
		rho = -1
	}

	if rho < 0 {
		pm.Restore(before)
	}
	return rho
}

// gaussNewtonStep solves H*p = -g, falling back to the Moore-Penrose
// pseudo-inverse of H via SVD when H is numerically singular
// (spec.md §4.4 step 2).
func gaussNewtonStep(h *mat.Dense, g *mat.VecDense, cutoff float64) []float64 {
	n, _ := h.Dims()
	negG := mat.NewVecDense(n, nil)
	negG.ScaleVec(-1, g)

	var p mat.VecDense
	if err := p.SolveVec(h, negG); err == nil {
		return append([]float64(nil), p.RawVector().Data...)
	}

	var svd mat.SVD
	ok := svd.Factorize(h, mat.SVDThin)
	if !ok {
		return make([]float64, n)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	// pinv(H) = V * Sigma+ * U^T
	sigInv := mat.NewDense(len(values), len(values), nil)
	for i, s := range values {
		if s > cutoff {
			sigInv.Set(i, i, 1/s)
		}
	}
	var vSig, pinv mat.Dense
	vSig.Mul(&v, sigInv)
	pinv.Mul(&vSig, u.T())

	result := mat.NewVecDense(n, nil)
	result.MulVec(&pinv, negG)
	return append([]float64(nil), result.RawVector().Data...)
}

// cauchyStep computes the steepest-descent step scaled to the Cauchy
// point length (spec.md §4.4 step 3): alpha = (g.g)/((Jg).(Jg)).
func cauchyStep(j *mat.Dense, g *mat.VecDense) []float64 {
	m, _ := j.Dims()
	jg := mat.NewVecDense(m, nil)
	jg.MulVec(j, g)

	gData := g.RawVector().Data
	denom := floats.Dot(jg.RawVector().Data, jg.RawVector().Data)
	numer := floats.Dot(gData, gData)

	alpha := 0.0
	if denom > 1e-300 {
		alpha = numer / denom
	}
	pu := make([]float64, len(gData))
	for i, gi := range gData {
		pu[i] = -alpha * gi
	}
	return pu
}

// dogLegCombine selects the dog-leg step per spec.md §4.4 step 4.
func dogLegCombine(pgn, pu []float64, trustRadius float64) []float64 {
	normPgn := floats.Norm(pgn, 2)
	if normPgn <= trustRadius {
		return pgn
	}

	normPu := floats.Norm(pu, 2)
	if normPu >= trustRadius {
		step := make([]float64, len(pu))
		scale := trustRadius / normPu
		for i, v := range pu {
			step[i] = scale * v
		}
		return step
	}

	diff := make([]float64, len(pgn))
	for i := range diff {
		diff[i] = pgn[i] - pu[i]
	}
	a := floats.Dot(diff, diff)
	b := 2 * floats.Dot(pu, diff)
	cc := floats.Dot(pu, pu) - trustRadius*trustRadius

	tau := 1.0
	if a > 1e-300 {
		disc := b*b - 4*a*cc
		if disc < 0 {
			disc = 0
		}
		tau = (-b + math.Sqrt(disc)) / (2 * a)
		tau = clamp01(tau)
	}

	step := make([]float64, len(pu))
	for i := range step {
		step[i] = pu[i] + tau*diff[i]
	}
	return step
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
