package world

// Fright is the timed state, shared by every enemy, in which enemies flee
// and can be eaten. Eaten counts the enemies eaten since it started and
// drives the escalating bonus.
type Fright struct {
	Remaining float64
	Eaten     int
}

func (f *Fright) Active() bool {
	return f.Remaining > 0
}

func (f *Fright) Start(seconds float64) {
	f.Remaining = seconds
	f.Eaten = 0
}

func (f *Fright) Update(dt float64) {
	if f.Remaining <= 0 {
		return
	}
	f.Remaining -= dt
	if f.Remaining <= 0 {
		f.Remaining = 0
		f.Eaten = 0
	}
}

// Bonus returns the points for the next enemy eaten: base doubled for each
// enemy already eaten, capped at limit.
func (f *Fright) Bonus(base, limit int) int {
	points := base
	for i := 0; i < f.Eaten && points < limit; i++ {
		points <<= 1
	}
	if points > limit {
		points = limit
	}
	return points
}
