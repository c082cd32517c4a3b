package entity

// Point is a free or fixed 2D point: local parameters [x, y].
type Point struct {
	X, Y    float64
	IsFixed bool
}

func NewPoint(x, y float64, fixed bool) *Point {
	return &Point{X: x, Y: y, IsFixed: fixed}
}

func (p *Point) Kind() Kind { return KindPoint }

func (p *Point) Values() []float64 { return []float64{p.X, p.Y} }

func (p *Point) SetValues(v []float64) {
	p.X, p.Y = v[0], v[1]
}

func (p *Point) Names() []string { return []string{"x", "y"} }

func (p *Point) Fixed() bool { return p.IsFixed }
