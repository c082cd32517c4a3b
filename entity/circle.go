package entity

// Circle is parameterized by a single solver scalar, its radius; the
// center is a reference to a Point id and is not itself a parameter of
// this entity (it is solved for through the referenced Point).
type Circle struct {
	CenterId string
	Radius   float64
	IsFixed  bool
}

func NewCircle(centerId string, radius float64, fixed bool) *Circle {
	return &Circle{CenterId: centerId, Radius: radius, IsFixed: fixed}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Values() []float64 { return []float64{c.Radius} }

func (c *Circle) SetValues(v []float64) {
	c.Radius = v[0]
}

func (c *Circle) Names() []string { return []string{"radius"} }

func (c *Circle) Fixed() bool { return c.IsFixed }
