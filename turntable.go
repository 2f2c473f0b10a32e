package softras

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Turntable spins a mesh a full turn around an axis, easing the angle over a fixed duration. It's used both to render
// frame sequences (by frame index) and to animate live previews (by elapsed time).
type Turntable struct {
	Axis   Vector3 // Axis to spin around; defaults to +Y
	Base   Matrix4 // Transform applied before the spin
	tween  *gween.Tween
	easing ease.TweenFunc
	angle  float64
}

// NewTurntable creates a new Turntable that spins a full turn around +Y over the duration given, using the easing function
// provided. Passing nil for easing spins at a constant speed.
func NewTurntable(duration float64, easing ease.TweenFunc) *Turntable {

	if easing == nil {
		easing = ease.Linear
	}

	return &Turntable{
		Axis:   Vector3{0, 1, 0},
		Base:   NewMatrix4(),
		tween:  gween.New(0, 2*math.Pi, float32(duration), easing),
		easing: easing,
	}

}

// Angle returns the current spin angle in radians.
func (tt *Turntable) Angle() float64 {
	return tt.angle
}

// Transform returns the Base matrix with the current spin applied after it.
func (tt *Turntable) Transform() Matrix4 {
	return tt.Base.Rotated(tt.Axis.X, tt.Axis.Y, tt.Axis.Z, tt.angle)
}

// Update advances the Turntable by dt; once a full turn is complete, it loops back around.
func (tt *Turntable) Update(dt float64) Matrix4 {

	current, finished := tt.tween.Update(float32(dt))
	tt.angle = float64(current)

	if finished {
		tt.tween.Reset()
		tt.angle = 0
	}

	return tt.Transform()

}

// Frame returns the transform for frame index out of a loop of frameCount evenly spaced frames. The last frame stops short of
// a full turn, so the sequence loops without a repeated frame.
func (tt *Turntable) Frame(index, frameCount int) Matrix4 {

	if frameCount <= 0 {
		return tt.Base
	}

	tween := gween.New(0, 2*math.Pi, float32(frameCount), tt.easing)
	current, _ := tween.Set(float32(index % frameCount))
	tt.angle = float64(current)

	return tt.Transform()

}
