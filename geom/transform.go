package geom

// Transform is a rigid transform. The zero value is not the identity; use
// IdentityTransform.
type Transform struct {
	Location Vector3
	Rotation Quaternion
}

func IdentityTransform() Transform {
	return Transform{Rotation: IdentityQuaternion()}
}

func (t *Transform) IsIdentity() bool {
	return t.Location == Vector3{} && t.Rotation == IdentityQuaternion()
}

// Apply transforms a point from local space.
func (t *Transform) Apply(v *Vector3) *Vector3 {
	return t.Rotation.ApplyTo(v).Add(&t.Location)
}
