package galextest

import "github.com/kataklinger/galex"

// Scalar is a single-objective, maximize-is-better fitness value, the
// simplest possible galex.Fitness implementation, used wherever tests need
// a concrete scalar fitness without pulling in the real-vector objective.
type Scalar float64

func (s *Scalar) Add(other galex.Fitness) { *s += *other.(*Scalar) }
func (s *Scalar) Sub(other galex.Fitness) { *s -= *other.(*Scalar) }

func (s *Scalar) Compare(other galex.Fitness) int {
	o := *other.(*Scalar)
	switch {
	case *s < o:
		return -1
	case *s > o:
		return 1
	default:
		return 0
	}
}

func (s *Scalar) ProbabilityBase() float64 { return float64(*s) }

func (s *Scalar) Distance(other galex.Fitness) float64 {
	d := float64(*s) - float64(*other.(*Scalar))
	if d < 0 {
		d = -d
	}
	return d
}

func (s *Scalar) Clone() galex.Fitness {
	v := *s
	return &v
}

// Scale implements sharing.Scalable.
func (s *Scalar) Scale(factor float64) galex.Fitness {
	v := Scalar(float64(*s) * factor)
	return &v
}
