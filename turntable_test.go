package softras

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTurntableUpdate(t *testing.T) {

	tt := NewTurntable(1, nil)

	tt.Update(0.5)
	if math.Abs(tt.Angle()-math.Pi) > 1e-5 {
		t.Fatal("angle after half the duration =", tt.Angle())
	}

	tt.Update(0.6)
	if tt.Angle() != 0 {
		t.Fatal("angle should loop back to 0 after a full turn, got", tt.Angle())
	}

	tt.Update(0.25)
	if math.Abs(tt.Angle()-math.Pi/2) > 1e-5 {
		t.Fatal("angle after looping =", tt.Angle())
	}

}

func TestTurntableFrame(t *testing.T) {

	tt := NewTurntable(1, nil)

	tt.Frame(2, 4)
	if math.Abs(tt.Angle()-math.Pi) > 1e-5 {
		t.Fatal("frame 2 of 4 =", tt.Angle())
	}

	tt.Frame(6, 4)
	if math.Abs(tt.Angle()-math.Pi) > 1e-5 {
		t.Fatal("frame indices should wrap, frame 6 of 4 =", tt.Angle())
	}

	// A quarter turn around +Y
	v := tt.Frame(1, 4).MultVec(Vector3{1, 0, 0})
	if v.Sub(Vector3{0, 0, -1}).Magnitude() > 1e-5 {
		t.Fatal("quarter turn moved +X to", v)
	}

	tt.Base = NewMatrix4Translate(0, 5, 0)
	if v := tt.Frame(0, 4).MultVec(Vector3{}); v != (Vector3{0, 5, 0}) {
		t.Fatal("base transform wasn't applied:", v)
	}

	if !NewTurntable(1, nil).Frame(0, 0).IsIdentity() {
		t.Fatal("no frames should give the base transform")
	}

}

func TestTurntableEasing(t *testing.T) {

	tt := NewTurntable(1, ease.InOutQuad)

	// Eased spins start slow, but still reach the halfway point halfway through
	tt.Frame(1, 10)
	if tt.Angle() >= 2*math.Pi/10 {
		t.Fatal("eased spin didn't start slow:", tt.Angle())
	}

	tt.Frame(5, 10)
	if math.Abs(tt.Angle()-math.Pi) > 1e-5 {
		t.Fatal("eased halfway angle =", tt.Angle())
	}

}
