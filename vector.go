package softras

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOutOfRange is matched (via errors.Is) by every *IndexError returned from a component accessor.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError is returned when a Vector, UVector or Color component is accessed by an index outside of the type's arity.
type IndexError struct {
	Type  string // The name of the type that was indexed, like "Vector3"
	Index int    // The offending index
	Arity int    // The number of components the type has
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("softras: index %d is out of %s range [0, %d)", e.Index, e.Type, e.Arity)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Vector2 represents a 2D Vector, used for texture (UV) coordinates and 2D screen points.
// Like the rest of the vector types, Vector2 functions return modified copies rather than altering the calling Vector2.
type Vector2 struct {
	X float64 // The X (1st) component of the Vector2
	Y float64 // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a copy of the calling Vector2, added together with the other Vector2 provided.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2, with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Scale scales a Vector2 by the given scalar.
func (vec Vector2) Scale(scalar float64) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Dot returns the dot product of a Vector2 and another Vector2.
func (vec Vector2) Dot(other Vector2) float64 {
	return vec.X*other.X + vec.Y*other.Y
}

// Magnitude returns the length of the Vector2.
func (vec Vector2) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// ScaleVector2 is Scale with the scalar first.
func ScaleVector2(scalar float64, vec Vector2) Vector2 {
	return vec.Scale(scalar)
}

// Unit returns a copy of the Vector2 with a length of 1. Like Vector3.Unit, the Vector2 mustn't be zero.
func (vec Vector2) Unit() Vector2 {
	l := vec.Magnitude()
	vec.X, vec.Y = vec.X/l, vec.Y/l
	return vec
}

// Invert returns a copy of the Vector2 with both components negated.
func (vec Vector2) Invert() Vector2 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// Reflect reflects the Vector2 about the normal provided.
func (vec Vector2) Reflect(normal Vector2) Vector2 {
	return vec.Sub(normal.Scale(2 * vec.Dot(normal)))
}

// Get returns the component at the index given (0 for X, 1 for Y). Any other index returns an *IndexError.
func (vec Vector2) Get(index int) (float64, error) {
	switch index {
	case 0:
		return vec.X, nil
	case 1:
		return vec.Y, nil
	}
	return 0, &IndexError{Type: "Vector2", Index: index, Arity: 2}
}

// Set returns a copy of the Vector2 with the component at the index given set to value. Any index other than 0 or 1
// returns the Vector2 unchanged alongside an *IndexError.
func (vec Vector2) Set(index int, value float64) (Vector2, error) {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	default:
		return vec, &IndexError{Type: "Vector2", Index: index, Arity: 2}
	}
	return vec, nil
}

func (vec Vector2) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", vec.X, vec.Y)
}

// Vector3 represents a 3D Vector, used for vertex positions, normals, light directions, screen-space points
// (x, y, depth) and barycentric weights.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float64 // The X (1st) component of the Vector3
	Y float64 // The Y (2nd) component of the Vector3
	Z float64 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float64) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// ScaleVector3 is Scale with the operands the other way around (scalar * vector).
func ScaleVector3(scalar float64, vec Vector3) Vector3 {
	return vec.Scale(scalar)
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector3, normalized (divided by its magnitude).
// Don't call Unit on a zero Vector3; the result's components will be NaN.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Reflect reflects the Vector3 about the normal provided (v - n * 2 * dot(v, n)).
func (vec Vector3) Reflect(normal Vector3) Vector3 {
	return vec.Sub(normal.Scale(2 * vec.Dot(normal)))
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// XY returns the X and Y components of the Vector3 as a Vector2.
func (vec Vector3) XY() Vector2 {
	return Vector2{X: vec.X, Y: vec.Y}
}

// Get returns the component at the index given (0 for X, 1 for Y, 2 for Z). Any other index returns an *IndexError.
func (vec Vector3) Get(index int) (float64, error) {
	switch index {
	case 0:
		return vec.X, nil
	case 1:
		return vec.Y, nil
	case 2:
		return vec.Z, nil
	}
	return 0, &IndexError{Type: "Vector3", Index: index, Arity: 3}
}

// Set returns a copy of the Vector3 with the component at the index given set to value. An index outside of [0, 2]
// returns the Vector3 unchanged alongside an *IndexError.
func (vec Vector3) Set(index int, value float64) (Vector3, error) {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	case 2:
		vec.Z = value
	default:
		return vec, &IndexError{Type: "Vector3", Index: index, Arity: 3}
	}
	return vec, nil
}

func (vec Vector3) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}

// UVector2 is an unsigned-integer 2D Vector, used for texel coordinates.
type UVector2 struct {
	X, Y uint
}

// NewUVector2 creates a new UVector2 with the specified x and y components.
func NewUVector2(x, y uint) UVector2 {
	return UVector2{X: x, Y: y}
}

// Get returns the component at the index given (0 for X, 1 for Y). Any other index returns an *IndexError.
func (vec UVector2) Get(index int) (uint, error) {
	switch index {
	case 0:
		return vec.X, nil
	case 1:
		return vec.Y, nil
	}
	return 0, &IndexError{Type: "UVector2", Index: index, Arity: 2}
}

// Set returns a copy of the UVector2 with the component at the index given set to value.
func (vec UVector2) Set(index int, value uint) (UVector2, error) {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	default:
		return vec, &IndexError{Type: "UVector2", Index: index, Arity: 2}
	}
	return vec, nil
}

// UVector3 is an unsigned-integer 3D Vector; Color.Bytes() returns one holding the 0-255 channel encoding.
type UVector3 struct {
	X, Y, Z uint
}

// NewUVector3 creates a new UVector3 with the specified x, y, and z components.
func NewUVector3(x, y, z uint) UVector3 {
	return UVector3{X: x, Y: y, Z: z}
}

// Get returns the component at the index given (0 for X, 1 for Y, 2 for Z). Any other index returns an *IndexError.
func (vec UVector3) Get(index int) (uint, error) {
	switch index {
	case 0:
		return vec.X, nil
	case 1:
		return vec.Y, nil
	case 2:
		return vec.Z, nil
	}
	return 0, &IndexError{Type: "UVector3", Index: index, Arity: 3}
}

// Set returns a copy of the UVector3 with the component at the index given set to value.
func (vec UVector3) Set(index int, value uint) (UVector3, error) {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	case 2:
		vec.Z = value
	default:
		return vec, &IndexError{Type: "UVector3", Index: index, Arity: 3}
	}
	return vec, nil
}
