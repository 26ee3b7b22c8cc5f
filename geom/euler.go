package geom

import "math"

type RotationOrder int

const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
)

type EulerAngles struct {
	Vector3
	Order RotationOrder
}

func NewEuler(x, y, z float64, order RotationOrder) *EulerAngles {
	return &EulerAngles{Vector3: Vector3{x, y, z}, Order: order}
}

func NewEulerFromQuaternion(q *Quaternion, order RotationOrder) *EulerAngles {
	const eps = 0.00000001
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m11, m12, m13 := 1-2*(y*y+z*z), 2*(x*y-z*w), 2*(x*z+y*w)
	m21, m22, m23 := 2*(x*y+z*w), 1-2*(x*x+z*z), 2*(y*z-x*w)
	m31, m32, m33 := 2*(x*z-y*w), 2*(y*z+x*w), 1-2*(x*x+y*y)

	ret := &EulerAngles{Order: order}
	switch order {
	case RotationOrderXYZ:
		ret.Y = math.Asin(clamp(m13))
		if math.Abs(m13) < 1-eps {
			ret.X = math.Atan2(-m23, m33)
			ret.Z = math.Atan2(-m12, m11)
		} else {
			ret.X = math.Atan2(m32, m22)
		}
	case RotationOrderYXZ:
		ret.X = math.Asin(-clamp(m23))
		if math.Abs(m23) < 1-eps {
			ret.Y = math.Atan2(m13, m33)
			ret.Z = math.Atan2(m21, m22)
		} else {
			ret.Y = math.Atan2(-m31, m11)
		}
	case RotationOrderZXY:
		ret.X = math.Asin(clamp(m32))
		if math.Abs(m32) < 1-eps {
			ret.Y = math.Atan2(-m31, m33)
			ret.Z = math.Atan2(-m12, m22)
		} else {
			ret.Z = math.Atan2(m21, m11)
		}
	case RotationOrderZYX:
		ret.Y = math.Asin(-clamp(m31))
		if math.Abs(m31) < 1-eps {
			ret.X = math.Atan2(m32, m33)
			ret.Z = math.Atan2(m21, m11)
		} else {
			ret.Z = math.Atan2(-m12, m22)
		}
	}
	return ret
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(v, 1))
}

func (v *EulerAngles) ToQuaternion() *Quaternion {
	cx := math.Cos(v.X / 2)
	cy := math.Cos(v.Y / 2)
	cz := math.Cos(v.Z / 2)
	sx := math.Sin(v.X / 2)
	sy := math.Sin(v.Y / 2)
	sz := math.Sin(v.Z / 2)

	switch v.Order {
	case RotationOrderXYZ:
		return &Quaternion{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz}
	case RotationOrderYXZ:
		return &Quaternion{
			X: sx*cy*cz + cx*sy*sz,
			Y: cx*sy*cz - sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz}
	case RotationOrderZXY:
		return &Quaternion{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz + sx*sy*cz,
			W: cx*cy*cz - sx*sy*sz}
	case RotationOrderZYX:
		return &Quaternion{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
			W: cx*cy*cz + sx*sy*sz}
	default:
		return &Quaternion{0, 0, 0, 1}
	}
}

// Degrees returns the angles converted from radians.
func (v *EulerAngles) Degrees() Vector3 {
	return *v.Vector3.Scale(180 / math.Pi)
}
