package eval

import (
	"math"

	"github.com/fieldcarve/fieldcarve/tape"
)

// Interval is a closed bound [Lo, Hi] that soundly contains every value
// a sub-expression can take over a box. Every operation below returns a
// result that contains the true range of the operation applied to any
// pair of points drawn from the input interval(s) — soundness, not
// tightness, is the contract.
type Interval struct {
	Lo, Hi float64
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval { return Interval{Lo: v, Hi: v} }

// Contains reports whether v lies within the interval.
func (a Interval) Contains(v float64) bool { return v >= a.Lo && v <= a.Hi }

// StrictlyPositive reports whether every value in the interval is > 0.
func (a Interval) StrictlyPositive() bool { return a.Lo > 0 }

// Add returns a+b.
func (a Interval) Add(b Interval) Interval {
	return Interval{Lo: a.Lo + b.Lo, Hi: a.Hi + b.Hi}
}

// Sub returns a-b.
func (a Interval) Sub(b Interval) Interval {
	return Interval{Lo: a.Lo - b.Hi, Hi: a.Hi - b.Lo}
}

// Neg returns -a.
func (a Interval) Neg() Interval {
	return Interval{Lo: -a.Hi, Hi: -a.Lo}
}

// Mul returns a*b, soundly, by taking the extremal product of the four
// corner combinations.
func (a Interval) Mul(b Interval) Interval {
	p1, p2, p3, p4 := a.Lo*b.Lo, a.Lo*b.Hi, a.Hi*b.Lo, a.Hi*b.Hi
	return Interval{Lo: min4(p1, p2, p3, p4), Hi: max4(p1, p2, p3, p4)}
}

// Div returns a/b. If b straddles (or touches) zero the result is
// unbounded, since a/b is undefined or unbounded at the singularity.
func (a Interval) Div(b Interval) Interval {
	if b.Lo <= 0 && b.Hi >= 0 {
		return Interval{Lo: math.Inf(-1), Hi: math.Inf(1)}
	}
	return a.Mul(Interval{Lo: 1 / b.Hi, Hi: 1 / b.Lo})
}

// Recip returns 1/a, with the same singularity handling as Div.
func (a Interval) Recip() Interval {
	return Point(1).Div(a)
}

// Abs returns |a|.
func (a Interval) Abs() Interval {
	if a.Lo >= 0 {
		return a
	}
	if a.Hi <= 0 {
		return a.Neg()
	}
	return Interval{Lo: 0, Hi: math.Max(-a.Lo, a.Hi)}
}

// Square returns a*a. Unlike the general Mul, the result is provably
// non-negative, so this is computed directly rather than via the
// four-corner rule.
func (a Interval) Square() Interval {
	absd := a.Abs()
	return Interval{Lo: absd.Lo * absd.Lo, Hi: absd.Hi * absd.Hi}
}

// Sqrt returns sqrt(a). Negative lower bounds are clamped to zero: the
// function is only defined for non-negative inputs, and a sound caller
// (one that only evaluates boxes where the surface can exist) never
// needs a negative sqrt result, but clamping keeps the interval
// well-formed rather than propagating NaN.
func (a Interval) Sqrt() Interval {
	lo := a.Lo
	if lo < 0 {
		lo = 0
	}
	hi := a.Hi
	if hi < 0 {
		hi = 0
	}
	return Interval{Lo: math.Sqrt(lo), Hi: math.Sqrt(hi)}
}

// Sin returns a sound (but not tight) bound on sin over the interval. If
// the interval spans at least a full period, or spans a
// maximum/minimum of sin, the bound widens to the full [-1, 1] range;
// otherwise the monotonic segment's endpoints bound the result.
func (a Interval) Sin() Interval {
	return boundPeriodic(a, math.Sin, math.Pi/2, 1)
}

// Cos returns a sound bound on cos, by the same reasoning as Sin.
func (a Interval) Cos() Interval {
	return boundPeriodic(a, math.Cos, 0, 1)
}

// boundPeriodic soundly bounds a periodic function f (period 2*pi,
// amplitude amp) over the interval, given one known critical phase
// (where f attains +amp, mod 2*pi). If the interval's width already
// covers a full period, or contains a critical point of f, the bound
// widens to [-amp, amp]; otherwise f is monotonic across the interval
// and its endpoints bound the result.
func boundPeriodic(a Interval, f func(float64) float64, criticalPhase, amp float64) Interval {
	width := a.Hi - a.Lo
	if width >= 2*math.Pi {
		return Interval{Lo: -amp, Hi: amp}
	}
	if hasCriticalPoint(a.Lo, a.Hi, criticalPhase) || hasCriticalPoint(a.Lo, a.Hi, criticalPhase+math.Pi) {
		return Interval{Lo: -amp, Hi: amp}
	}
	fa, fb := f(a.Lo), f(a.Hi)
	return Interval{Lo: math.Min(fa, fb), Hi: math.Max(fa, fb)}
}

// hasCriticalPoint reports whether phase + k*2*pi falls within [lo, hi]
// for some integer k.
func hasCriticalPoint(lo, hi, phase float64) bool {
	k := math.Floor((lo - phase) / (2 * math.Pi))
	for ; ; k++ {
		p := phase + k*2*math.Pi
		if p > hi {
			return false
		}
		if p >= lo {
			return true
		}
	}
}

// Min returns the sound bound on min(a,b) along with the Winner the
// caller should record for the choice that produced this expression:
// WinnerLeft if a strictly dominates, WinnerRight if b strictly
// dominates, WinnerEither if the intervals overlap and neither can be
// ruled out.
func (a Interval) Min(b Interval) (Interval, tape.Winner) {
	switch {
	case a.Hi < b.Lo:
		return a, tape.WinnerLeft
	case b.Hi < a.Lo:
		return b, tape.WinnerRight
	default:
		return Interval{Lo: math.Min(a.Lo, b.Lo), Hi: math.Min(a.Hi, b.Hi)}, tape.WinnerEither
	}
}

// Max returns the sound bound on max(a,b) and the dominance verdict,
// mirroring Min.
func (a Interval) Max(b Interval) (Interval, tape.Winner) {
	switch {
	case a.Lo > b.Hi:
		return a, tape.WinnerLeft
	case b.Lo > a.Hi:
		return b, tape.WinnerRight
	default:
		return Interval{Lo: math.Max(a.Lo, b.Lo), Hi: math.Max(a.Hi, b.Hi)}, tape.WinnerEither
	}
}

func min4(a, b, c, d float64) float64 { return math.Min(math.Min(a, b), math.Min(c, d)) }
func max4(a, b, c, d float64) float64 { return math.Max(math.Max(a, b), math.Max(c, d)) }
