package softras

import (
	"math"
	"strconv"
	"strings"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and translation lives in the fourth row.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Spin on +Y if there's no usable axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := Vector3{X: x, Y: y, Z: z}.Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// Rotated returns a clone of the Matrix4 rotated along the axis given by the angle given (in radians).
func (matrix Matrix4) Rotated(x, y, z, angle float64) Matrix4 {
	return matrix.Mult(NewMatrix4Rotate(x, y, z, angle))
}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For rotation matrices,
// this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	var transposed Matrix4

	for i := range 4 {
		for j := range 4 {
			transposed[i][j] = matrix[j][i]
		}
	}

	return transposed

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4, combining them. With row vectors, the result applies matrix
// first and other second (so a.Mult(b).MultVec(v) == b.MultVec(a.MultVec(v))).
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var result Matrix4

	for row := range 4 {
		for col := range 4 {
			sum := 0.0
			for k := range 4 {
				sum += matrix[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}

	return result

}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := 0.0001 // epsilon floating point error value
	for i := range matrix {
		for j := range matrix[i] {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

func (matrix Matrix4) String() string {
	s := strings.Builder{}
	s.WriteString("{")
	for i, row := range matrix {
		for _, v := range row {
			s.WriteString(strconv.FormatFloat(v, 'f', -1, 64) + ", ")
		}
		if i < len(matrix)-1 {
			s.WriteString("\n")
		}
	}
	s.WriteString("}")
	return s.String()
}
