package geom

import "math"

// Quaternion components are stored in x, y, z, w order. W is the scalar part.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewQuaternion(x, y, z, w float64) *Quaternion {
	return &Quaternion{X: x, Y: y, Z: z, W: w}
}

func NewQuaternionFromArray(arr [4]float64) *Quaternion {
	return &Quaternion{X: arr[0], Y: arr[1], Z: arr[2], W: arr[3]}
}

func IdentityQuaternion() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

func (q *Quaternion) Dot(q2 *Quaternion) float64 {
	return q.X*q2.X + q.Y*q2.Y + q.Z*q2.Z + q.W*q2.W
}

func (q *Quaternion) Len() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q *Quaternion) Normalize() *Quaternion {
	l := q.Len()
	if l > 0 {
		q.X /= l
		q.Y /= l
		q.Z /= l
		q.W /= l
	} else {
		q.W = 1
	}
	return q
}

func (q *Quaternion) Inverse() *Quaternion {
	return &Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q *Quaternion) Mul(q2 *Quaternion) *Quaternion {
	return &Quaternion{
		X: q.W*q2.X + q.X*q2.W + q.Y*q2.Z - q.Z*q2.Y,
		Y: q.W*q2.Y - q.X*q2.Z + q.Y*q2.W + q.Z*q2.X,
		Z: q.W*q2.Z + q.X*q2.Y - q.Y*q2.X + q.Z*q2.W,
		W: q.W*q2.W - q.X*q2.X - q.Y*q2.Y - q.Z*q2.Z,
	}
}

func (q *Quaternion) ApplyTo(v *Vector3) *Vector3 {
	r := q.Mul(&Quaternion{X: v.X, Y: v.Y, Z: v.Z}).Mul(q.Inverse())
	return &Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

func (q *Quaternion) ToArray() [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}
