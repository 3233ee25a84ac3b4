package fixed

import (
	"math"
	"testing"
)

func TestConversionRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 3.25, -7.125, 1000.0}

	for _, v := range values {
		q := FromFloat(v)
		got := q.Float()
		if math.Abs(got-v) > 1.0/float64(One) {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestMulDiv(t *testing.T) {
	a := FromFloat(3.5)
	b := FromFloat(2.0)

	if got := Mul(a, b).Float(); math.Abs(got-7.0) > 1e-4 {
		t.Errorf("Mul(3.5, 2.0) = %v, expected 7.0", got)
	}

	if got := Div(a, b).Float(); math.Abs(got-1.75) > 1e-4 {
		t.Errorf("Div(3.5, 2.0) = %v, expected 1.75", got)
	}

	// Negative operands
	if got := Mul(FromFloat(-1.5), b).Float(); math.Abs(got+3.0) > 1e-4 {
		t.Errorf("Mul(-1.5, 2.0) = %v, expected -3.0", got)
	}
}

func TestFloorFrac(t *testing.T) {
	q := FromFloat(5.75)
	if q.Floor() != 5 {
		t.Errorf("Floor(5.75) = %d, expected 5", q.Floor())
	}
	if got := q.Frac().Float(); math.Abs(got-0.75) > 1e-4 {
		t.Errorf("Frac(5.75) = %v, expected 0.75", got)
	}

	// Floor rounds toward negative infinity
	n := FromFloat(-0.25)
	if n.Floor() != -1 {
		t.Errorf("Floor(-0.25) = %d, expected -1", n.Floor())
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(Tau + One); got != Wrap(One) {
		t.Errorf("Wrap(Tau+1) = %v, expected %v", got, Wrap(One))
	}
	if got := Wrap(-One); got < 0 || got >= Tau {
		t.Errorf("Wrap(-1) = %v, outside [0, Tau)", got)
	}
}

func TestTrigAgainstMath(t *testing.T) {
	// The table has 2π/4096 granularity, so allow a coarse tolerance.
	const tol = 0.002

	for deg := 0; deg < 360; deg += 7 {
		rad := float64(deg) * math.Pi / 180
		a := FromFloat(rad)

		if got, want := Sin(a).Float(), math.Sin(rad); math.Abs(got-want) > tol {
			t.Errorf("Sin(%d deg) = %v, expected %v", deg, got, want)
		}
		if got, want := Cos(a).Float(), math.Cos(rad); math.Abs(got-want) > tol {
			t.Errorf("Cos(%d deg) = %v, expected %v", deg, got, want)
		}
	}
}
