package anim

// Track interpolates between keyframe values placed at normalized times.
type Track struct {
	Values []float64
	// Times are ascending offsets in [0,1], one per value. Nil spaces values evenly.
	Times []float64
	// Ease applies to every segment. Nil is linear.
	Ease Ease
}

func (t Track) timeAt(i int) float64 {
	if t.Times != nil {
		return t.Times[i]
	}
	if len(t.Values) < 2 {
		return 0
	}
	return float64(i) / float64(len(t.Values)-1)
}

// At samples the track at normalized progress u.
func (t Track) At(u float64) float64 {
	n := len(t.Values)
	switch n {
	case 0:
		return 0
	case 1:
		return t.Values[0]
	}
	if u <= t.timeAt(0) {
		return t.Values[0]
	}
	if u >= t.timeAt(n-1) {
		return t.Values[n-1]
	}
	for i := 0; i < n-1; i++ {
		a, b := t.timeAt(i), t.timeAt(i+1)
		if u > b {
			continue
		}
		span := b - a
		if span <= 0 {
			return t.Values[i+1]
		}
		s := (u - a) / span
		if t.Ease != nil {
			s = t.Ease(s)
		}
		return Lerp(t.Values[i], t.Values[i+1], s)
	}
	return t.Values[n-1]
}

// Path is a pair of tracks sampled together, e.g. an x/y route.
type Path struct {
	X, Y Track
}

func (p Path) At(u float64) (float64, float64) {
	return p.X.At(u), p.Y.At(u)
}
