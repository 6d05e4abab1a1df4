package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Roots holds the real solutions of a quadratic, Count of them valid
type Roots struct {
	Count int
	T     [2]float32
}

// Nearest returns the smaller root, if any
func (r Roots) Nearest() (float32, bool) {
	switch r.Count {
	case 1:
		return r.T[0], true
	case 2:
		if r.T[0] < r.T[1] {
			return r.T[0], true
		}
		return r.T[1], true
	default:
		return 0, false
	}
}

// QuadRoot solves a*t² + b*t + c = 0.
// |a| < EPSILON degenerates to the linear root -c/b. A zero discriminant
// still produces two (equal) roots.
func QuadRoot(a, b, c float32) Roots {
	if math32.Abs(a) < core.EPSILON {
		return Roots{Count: 1, T: [2]float32{-c / b}}
	}

	d := b*b - 4.0*a*c
	if d < 0 {
		return Roots{}
	}

	sq := math32.Sqrt(d)
	ta := 2.0 * a
	return Roots{
		Count: 2,
		T:     [2]float32{(-b + sq) / ta, (-b - sq) / ta},
	}
}
