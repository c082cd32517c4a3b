package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	gcs "github.com/go-constraints/gcs"
	"github.com/go-constraints/gcs/api"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	scenario := flag.String("scenario", "vertical-pair", "built-in scenario to run: vertical-pair, point-on-line, parallel-frame, aligned-chain")
	jsonPath := flag.String("json", "", "path to a JSON request envelope; overrides -scenario")
	flag.Parse()

	io.PfWhite("\ngcs-demo -- 2D geometric constraint solver\n\n")

	if *jsonPath != "" {
		if err := runFromJSON(*jsonPath); err != nil {
			chk.Panic("%v\n", err)
		}
		return
	}

	c, pointIds, err := runScenario(*scenario)
	if err != nil {
		chk.Panic("%v\n", err)
	}

	printState(c, pointIds, "before")

	result := c.Solve()
	io.Pf("status:        %v\n", result.Status)
	io.Pf("iterations:    %d\n", result.Iterations)
	io.Pf("initial error: %v\n", result.InitialError)
	io.Pf("final error:   %v\n", result.FinalError)

	printState(c, pointIds, "after")

	if result.Status.String() != "Converged" {
		io.PfYel("solve did not converge\n")
	} else {
		io.PfGreen("solve converged\n")
	}
}

func runFromJSON(path string) error {
	data, err := io.ReadFile(path)
	if err != nil {
		return err
	}
	req, err := api.Unmarshal(data)
	if err != nil {
		return err
	}
	resp, err := api.Solve(req)
	if err != nil {
		return err
	}
	out, err := api.Marshal(resp)
	if err != nil {
		return err
	}
	io.Pf("%s\n", string(out))
	return nil
}

// runScenario builds one of the built-in demo scenarios directly
// against the Coordinator, returning the point ids worth
// reporting so the caller can print primitive state before and after
// the solve.
func runScenario(name string) (c *gcs.Coordinator, pointIds []string, err error) {
	c = gcs.New()

	switch name {
	case "vertical-pair":
		pointIds = []string{"p1", "p2"}
		if _, err = c.AddPoint("p1", 0, 0, true); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("p2", 3, 5, false); err != nil {
			return nil, nil, err
		}
		if err = c.AddConstraint(gcs.Vertical("p1", "p2")); err != nil {
			return nil, nil, err
		}

	case "point-on-line":
		pointIds = []string{"a", "b", "p"}
		if _, err = c.AddPoint("a", 0, 0, true); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("b", 10, 0, true); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("p", 4, 3, false); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddLine("l1", "a", "b"); err != nil {
			return nil, nil, err
		}
		if err = c.AddConstraint(gcs.PointOnLine("p", "a", "b")); err != nil {
			return nil, nil, err
		}

	case "parallel-frame":
		pointIds = []string{"a1", "a2", "b1", "b2"}
		if _, err = c.AddPoint("a1", 0, 0, true); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("a2", 4, 0, true); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("b1", 0, 2, false); err != nil {
			return nil, nil, err
		}
		if _, err = c.AddPoint("b2", 5, 6, false); err != nil {
			return nil, nil, err
		}
		if err = c.AddConstraint(gcs.Parallel("a1", "a2", "b1", "b2")); err != nil {
			return nil, nil, err
		}

	case "aligned-chain":
		// lays out n points along an uneven initial grid, then chains
		// Horizontal constraints so the solve pulls them into one row.
		n := 5
		xs := utl.LinSpace(0, 12, n)
		ys := utl.LinSpace(0, 4, n)
		ids := make([]string, n)
		for i := 0; i < n; i++ {
			id := io.Sf("p%d", i)
			ids[i] = id
			if _, err = c.AddPoint(id, xs[i], ys[i], i == 0); err != nil {
				return nil, nil, err
			}
		}
		for i := 0; i < n-1; i++ {
			if err = c.AddConstraint(gcs.Horizontal(ids[i], ids[i+1])); err != nil {
				return nil, nil, err
			}
		}
		pointIds = ids

	default:
		return nil, nil, chk.Err("unknown scenario %q\n", name)
	}

	return c, pointIds, nil
}

// printState reports every named point's current coordinates, the way
// the teacher's own solvers print field state at the start/end of a
// simulation step.
func printState(c *gcs.Coordinator, pointIds []string, when string) {
	io.Pf("-- primitives (%s solve) --\n", when)
	for _, id := range pointIds {
		p, ok := c.GetPoint(id)
		if !ok {
			continue
		}
		io.Pf("  %-8s x=%-12g y=%-12g fixed=%v\n", id, p.X, p.Y, p.Fixed())
	}
}
