// Package gcs is the coordinator: it owns the primitive store, the
// constraint list and a solver strategy, rebuilds the parameter
// manager for each solve, and writes the solved parameter vector back
// into the primitives. It plays the role the teacher's fem.FEM struct
// plays for a simulation (Sim/Domains/Solver), specialized to a single
// geometric solve instead of a time-stepped simulation.
package gcs

import (
	"github.com/go-constraints/gcs/constraint"
	"github.com/go-constraints/gcs/entity"
	"github.com/go-constraints/gcs/gcserr"
	"github.com/go-constraints/gcs/param"
	"github.com/go-constraints/gcs/solver"
)

// Coordinator is the single entry point a host embedding talks to
// (spec.md §6).
type Coordinator struct {
	order       []string
	entities    map[string]entity.Params
	constraints []constraint.Constraint
	solver      *solver.DogLeg
}

// New returns a Coordinator with the default dog-leg solver
// configuration.
func New() *Coordinator {
	return &Coordinator{
		entities: make(map[string]entity.Params),
		solver:   solver.NewDogLeg(solver.DefaultConfig()),
	}
}

// WithSolver swaps in a differently-configured solver strategy.
func (c *Coordinator) WithSolver(s *solver.DogLeg) *Coordinator {
	c.solver = s
	return c
}

func (c *Coordinator) register(id string, p entity.Params) {
	c.order = append(c.order, id)
	c.entities[id] = p
}

// AddPoint registers a new point.
func (c *Coordinator) AddPoint(id string, x, y float64, fixed bool) (string, error) {
	if _, exists := c.entities[id]; exists {
		return "", gcserr.New(gcserr.DuplicateId, "entity %q already registered", id)
	}
	c.register(id, entity.NewPoint(x, y, fixed))
	return id, nil
}

// AddLine registers a new line; start and end must already be
// registered points.
func (c *Coordinator) AddLine(id, startId, endId string) (string, error) {
	if _, exists := c.entities[id]; exists {
		return "", gcserr.New(gcserr.DuplicateId, "entity %q already registered", id)
	}
	if err := c.requirePoint(startId); err != nil {
		return "", err
	}
	if err := c.requirePoint(endId); err != nil {
		return "", err
	}
	c.register(id, entity.NewLine(startId, endId))
	return id, nil
}

// AddCircle registers a new circle; centerPointId must already be a
// registered point.
func (c *Coordinator) AddCircle(id, centerPointId string, radius float64, fixed bool) (string, error) {
	if _, exists := c.entities[id]; exists {
		return "", gcserr.New(gcserr.DuplicateId, "entity %q already registered", id)
	}
	if err := c.requirePoint(centerPointId); err != nil {
		return "", err
	}
	c.register(id, entity.NewCircle(centerPointId, radius, fixed))
	return id, nil
}

// AddArc registers a new arc; centerPointId must already be a
// registered point.
func (c *Coordinator) AddArc(id, centerPointId string, radius, thetaStart, thetaEnd float64, fixed bool) (string, error) {
	if _, exists := c.entities[id]; exists {
		return "", gcserr.New(gcserr.DuplicateId, "entity %q already registered", id)
	}
	if err := c.requirePoint(centerPointId); err != nil {
		return "", err
	}
	c.register(id, entity.NewArc(centerPointId, radius, thetaStart, thetaEnd, fixed))
	return id, nil
}

func (c *Coordinator) requirePoint(id string) error {
	p, ok := c.entities[id]
	if !ok {
		return gcserr.New(gcserr.UnknownReference, "entity %q does not exist", id)
	}
	if p.Kind() != entity.KindPoint {
		return gcserr.New(gcserr.UnknownReference, "entity %q is not a point", id)
	}
	return nil
}

func (c *Coordinator) requireCircle(id string) (*entity.Circle, error) {
	p, ok := c.entities[id]
	if !ok {
		return nil, gcserr.New(gcserr.UnknownReference, "entity %q does not exist", id)
	}
	circ, ok := p.(*entity.Circle)
	if !ok {
		return nil, gcserr.New(gcserr.UnknownReference, "entity %q is not a circle", id)
	}
	return circ, nil
}

// GetPoint returns the point registered under id, if any.
func (c *Coordinator) GetPoint(id string) (*entity.Point, bool) {
	p, ok := c.entities[id].(*entity.Point)
	return p, ok
}

// GetCircle returns the circle registered under id, if any.
func (c *Coordinator) GetCircle(id string) (*entity.Circle, bool) {
	p, ok := c.entities[id].(*entity.Circle)
	return p, ok
}

// GetArc returns the arc registered under id, if any.
func (c *Coordinator) GetArc(id string) (*entity.Arc, bool) {
	p, ok := c.entities[id].(*entity.Arc)
	return p, ok
}

// GetLine returns the line registered under id, if any.
func (c *Coordinator) GetLine(id string) (*entity.Line, bool) {
	p, ok := c.entities[id].(*entity.Line)
	return p, ok
}

// Reset clears all entities and constraints.
func (c *Coordinator) Reset() {
	c.order = nil
	c.entities = make(map[string]entity.Params)
	c.constraints = nil
}

// Solve rebuilds the parameter manager from the current primitive
// store, runs the solver strategy, and writes the result back into
// every registered entity (spec.md §4.5).
func (c *Coordinator) Solve() solver.Result {
	pm := param.NewManager()
	for _, id := range c.order {
		e := c.entities[id]
		pm.Register(id, e.Kind(), e.Values(), e.Fixed())
	}

	result := c.solver.Solve(c.constraints, pm)

	for _, id := range c.order {
		pm.SyncToEntity(id, c.entities[id])
	}
	return result
}
