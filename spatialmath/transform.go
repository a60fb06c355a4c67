// Package spatialmath implements the rigid homogeneous transforms used throughout
// the kinematics packages. Transforms are only ever built from elementary rotations
// and translations, so the rotation block stays orthonormal by construction.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid transform in 3D space, stored as a 4x4 homogeneous matrix.
// The zero value is not usable; use one of the New* constructors.
type Transform struct {
	mat mgl64.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() *Transform {
	return &Transform{mgl64.Ident4()}
}

// NewTransformFromEuler builds a transform by applying intrinsic rotations about
// Z, then Y, then X (radians) to an identity rotation, combined with a translation.
func NewTransformFromEuler(rot, trans r3.Vector) *Transform {
	m := mgl64.HomogRotate3DZ(rot.Z).
		Mul4(mgl64.HomogRotate3DY(rot.Y)).
		Mul4(mgl64.HomogRotate3DX(rot.X))
	m.SetCol(3, mgl64.Vec4{trans.X, trans.Y, trans.Z, 1})
	return &Transform{m}
}

// NewTransformFromPoint returns a pure translation to the given point.
func NewTransformFromPoint(pt r3.Vector) *Transform {
	return NewTransformFromEuler(r3.Vector{}, pt)
}

// NewDHTransform builds the Denavit-Hartenberg transform
// RotZ(theta) * TransZ(d) * TransX(a) * RotX(alpha). Angles are in radians.
func NewDHTransform(alpha, a, d, theta float64) *Transform {
	m := mgl64.HomogRotate3DZ(theta).
		Mul4(mgl64.Translate3D(0, 0, d)).
		Mul4(mgl64.Translate3D(a, 0, 0)).
		Mul4(mgl64.HomogRotate3DX(alpha))
	return &Transform{m}
}

// NewTransformFromMatrix validates that the given 4x4 matrix is a rigid transform
// (orthonormal rotation block with determinant +1 and a [0 0 0 1] bottom row) and
// wraps it. This is the only entry point for externally supplied matrices.
func NewTransformFromMatrix(m mgl64.Mat4) (*Transform, error) {
	const tol = 1e-9
	for c, want := range []float64{0, 0, 0, 1} {
		if math.Abs(m.At(3, c)-want) > tol {
			return nil, newNonRigidError("bottom row is not [0 0 0 1]")
		}
	}
	r := m.Mat3()
	prod := r.Mul3(r.Transpose())
	ident := mgl64.Ident3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(prod.At(i, j)-ident.At(i, j)) > tol {
				return nil, newNonRigidError("rotation block is not orthonormal")
			}
		}
	}
	if math.Abs(r.Det()-1) > tol {
		return nil, newNonRigidError("rotation block determinant is not +1")
	}
	return &Transform{m}, nil
}

// Mul composes two transforms; the receiver is applied first in the chain.
func (t *Transform) Mul(other *Transform) *Transform {
	return &Transform{t.mat.Mul4(other.mat)}
}

// Invert returns the rigid inverse: the transposed rotation and the negated,
// rotated translation.
func (t *Transform) Invert() *Transform {
	rt := t.mat.Mat3().Transpose()
	p := t.mat.Col(3).Vec3()
	ip := rt.Mul3x1(p).Mul(-1)
	m := rt.Mat4()
	m.SetCol(3, mgl64.Vec4{ip.X(), ip.Y(), ip.Z(), 1})
	return &Transform{m}
}

// Matrix returns a copy of the underlying 4x4 matrix.
func (t *Transform) Matrix() mgl64.Mat4 {
	return t.mat
}

// Rotation returns the top-left 3x3 rotation block.
func (t *Transform) Rotation() mgl64.Mat3 {
	return t.mat.Mat3()
}

// Translation returns the translation component.
func (t *Transform) Translation() r3.Vector {
	v := t.mat.Col(3).Vec3()
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// AxisZ returns the transform's local z axis expressed in the parent frame.
func (t *Transform) AxisZ() r3.Vector {
	v := t.mat.Col(2).Vec3()
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// At returns the matrix element at the given row and column.
func (t *Transform) At(row, col int) float64 {
	return t.mat.At(row, col)
}

func (t *Transform) quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(t.mat)
	return quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}

// OrientationBetween returns the angle, in radians, of the single rotation taking
// a's orientation to b's.
func OrientationBetween(a, b *Transform) float64 {
	delta := quat.Mul(quat.Conj(a.quaternion()), b.quaternion())
	w := math.Abs(delta.Real)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// PoseAlmostEqual reports whether two transforms agree within the given linear
// (translation) and angular (rotation) tolerances.
func PoseAlmostEqual(a, b *Transform, linearTol, angularTol float64) bool {
	return a.Translation().Sub(b.Translation()).Norm() <= linearTol &&
		OrientationBetween(a, b) <= angularTol
}
