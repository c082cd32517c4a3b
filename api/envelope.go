// Package api implements the optional JSON request/response envelope
// described in spec.md §6: a tagged-union encoding for primitives and
// constraints, modeled on the teacher's inp.Simulation JSON struct-tag
// convention (inp/sim.go), built on encoding/json exactly as the
// teacher does for its own (.sim) input files.
package api

import (
	"encoding/json"

	gcs "github.com/go-constraints/gcs"
	"github.com/go-constraints/gcs/constraint"
	"github.com/go-constraints/gcs/gcserr"
	"github.com/go-constraints/gcs/solver"
)

// PrimitiveJSON is the tagged-union wire shape for one primitive.
// Type selects which fields are meaningful:
//
//	"point"  -> Id, X, Y, Fixed
//	"line"   -> Id, Start, End
//	"circle" -> Id, Center, Radius, Fixed
//	"arc"    -> Id, Center, Radius, ThetaStart, ThetaEnd, Fixed
type PrimitiveJSON struct {
	Type       string  `json:"type"`
	Id         string  `json:"id"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	Center     string  `json:"center,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	ThetaStart float64 `json:"theta_start,omitempty"`
	ThetaEnd   float64 `json:"theta_end,omitempty"`
	Fixed      bool    `json:"fixed,omitempty"`
}

// ConstraintJSON is the tagged-union wire shape for one constraint.
// Type selects which fields are meaningful, following the same field
// layout as gcs.ConstraintDescriptor.
type ConstraintJSON struct {
	Type     string  `json:"type"`
	A        string  `json:"a,omitempty"`
	B        string  `json:"b,omitempty"`
	C        string  `json:"c,omitempty"`
	D        string  `json:"d,omitempty"`
	P        string  `json:"p,omitempty"`
	Circle   string  `json:"circle,omitempty"`
	Circle2  string  `json:"circle2,omitempty"`
	Target   float64 `json:"target,omitempty"`
	External bool    `json:"external,omitempty"`
}

// Request is the top-level envelope a host sends in.
type Request struct {
	Primitives  []PrimitiveJSON  `json:"primitives"`
	Constraints []ConstraintJSON `json:"constraints"`
}

// ResultJSON mirrors solver.Result for the wire.
type ResultJSON struct {
	Converged    bool    `json:"converged"`
	Iterations   int     `json:"iterations"`
	InitialError float64 `json:"initial_error"`
	FinalError   float64 `json:"final_error"`
}

// Response is the top-level envelope returned to the host.
type Response struct {
	Primitives []PrimitiveJSON `json:"primitives"`
	Result     ResultJSON      `json:"result"`
}

var constraintKinds = map[string]constraint.Kind{
	"vertical":        constraint.KindVertical,
	"horizontal":      constraint.KindHorizontal,
	"equal_x":         constraint.KindEqualX,
	"equal_y":         constraint.KindEqualY,
	"coincident":      constraint.KindCoincident,
	"parallel":        constraint.KindParallel,
	"point_on_line":   constraint.KindPointOnLine,
	"equal_radius":    constraint.KindEqualRadius,
	"fixed_radius":    constraint.KindFixedRadius,
	"point_on_circle": constraint.KindPointOnCircle,
	"tangent":         constraint.KindTangent,
}

// Solve builds a coordinator from req, runs one solve, and returns the
// resulting envelope. Unknown primitive types, unknown constraint
// types, and references to missing ids are all errors (spec.md §6).
func Solve(req Request) (Response, error) {
	c := gcs.New()

	for _, pj := range req.Primitives {
		if err := addPrimitive(c, pj); err != nil {
			return Response{}, err
		}
	}

	for _, cj := range req.Constraints {
		kind, ok := constraintKinds[cj.Type]
		if !ok {
			return Response{}, gcserr.New(gcserr.Unimplemented, "unknown constraint type %q", cj.Type)
		}
		d := gcs.ConstraintDescriptor{
			Kind: kind, A: cj.A, B: cj.B, C: cj.C, D: cj.D, P: cj.P,
			Circle: cj.Circle, Circle2: cj.Circle2, Target: cj.Target, External: cj.External,
		}
		if err := c.AddConstraint(d); err != nil {
			return Response{}, err
		}
	}

	result := c.Solve()

	return Response{
		Primitives: encodePrimitives(c, req.Primitives),
		Result: ResultJSON{
			Converged:    result.Status == solver.Converged,
			Iterations:   result.Iterations,
			InitialError: result.InitialError,
			FinalError:   result.FinalError,
		},
	}, nil
}

func addPrimitive(c *gcs.Coordinator, pj PrimitiveJSON) error {
	switch pj.Type {
	case "point":
		_, err := c.AddPoint(pj.Id, pj.X, pj.Y, pj.Fixed)
		return err
	case "line":
		_, err := c.AddLine(pj.Id, pj.Start, pj.End)
		return err
	case "circle":
		_, err := c.AddCircle(pj.Id, pj.Center, pj.Radius, pj.Fixed)
		return err
	case "arc":
		_, err := c.AddArc(pj.Id, pj.Center, pj.Radius, pj.ThetaStart, pj.ThetaEnd, pj.Fixed)
		return err
	}
	return gcserr.New(gcserr.Unimplemented, "unknown primitive type %q", pj.Type)
}

// encodePrimitives re-reads every primitive named in the request (in
// the order given) back out of the coordinator after solving.
func encodePrimitives(c *gcs.Coordinator, in []PrimitiveJSON) []PrimitiveJSON {
	out := make([]PrimitiveJSON, 0, len(in))
	for _, pj := range in {
		switch pj.Type {
		case "point":
			p, _ := c.GetPoint(pj.Id)
			out = append(out, PrimitiveJSON{Type: "point", Id: pj.Id, X: p.X, Y: p.Y, Fixed: p.Fixed()})
		case "line":
			l, _ := c.GetLine(pj.Id)
			out = append(out, PrimitiveJSON{Type: "line", Id: pj.Id, Start: l.StartId, End: l.EndId})
		case "circle":
			circ, _ := c.GetCircle(pj.Id)
			out = append(out, PrimitiveJSON{Type: "circle", Id: pj.Id, Center: circ.CenterId, Radius: circ.Radius, Fixed: circ.Fixed()})
		case "arc":
			a, _ := c.GetArc(pj.Id)
			out = append(out, PrimitiveJSON{Type: "arc", Id: pj.Id, Center: a.CenterId, Radius: a.Radius, ThetaStart: a.ThetaStart, ThetaEnd: a.ThetaEnd, Fixed: a.Fixed()})
		}
	}
	return out
}

// Marshal and Unmarshal are thin convenience wrappers so a host binding
// only needs to hand this package raw bytes.
func Unmarshal(data []byte) (Request, error) {
	var req Request
	err := json.Unmarshal(data, &req)
	return req, err
}

func Marshal(resp Response) ([]byte, error) {
	return json.MarshalIndent(resp, "", "  ")
}
