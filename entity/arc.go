package entity

// Arc is parameterized by [radius, theta_start, theta_end]; its center
// is a reference to a Point id, not a solver parameter.
type Arc struct {
	CenterId          string
	Radius            float64
	ThetaStart         float64
	ThetaEnd           float64
	IsFixed           bool
}

func NewArc(centerId string, radius, thetaStart, thetaEnd float64, fixed bool) *Arc {
	return &Arc{CenterId: centerId, Radius: radius, ThetaStart: thetaStart, ThetaEnd: thetaEnd, IsFixed: fixed}
}

func (a *Arc) Kind() Kind { return KindArc }

func (a *Arc) Values() []float64 { return []float64{a.Radius, a.ThetaStart, a.ThetaEnd} }

func (a *Arc) SetValues(v []float64) {
	a.Radius, a.ThetaStart, a.ThetaEnd = v[0], v[1], v[2]
}

func (a *Arc) Names() []string { return []string{"radius", "theta_start", "theta_end"} }

func (a *Arc) Fixed() bool { return a.IsFixed }
