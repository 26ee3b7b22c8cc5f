package converter

import (
	"math"

	"github.com/binzume/animconv/geom"
	"github.com/binzume/animconv/jsonvalue"
)

// DecodeTransform reads "location" [x,y,z] and "rotation" [x,y,z,w] from obj.
// Each part falls back to identity independently when absent or malformed.
// Non-finite numbers count as malformed.
func DecodeTransform(obj *jsonvalue.Obj) geom.Transform {
	t := geom.IdentityTransform()

	if arr, ok := obj.TryGetArrayField("location"); ok && len(arr) == 3 {
		if v, ok := numbers(arr); ok {
			t.Location = geom.Vector3{X: v[0], Y: v[1], Z: v[2]}
		}
	}

	if arr, ok := obj.TryGetArrayField("rotation"); ok && len(arr) == 4 {
		if v, ok := numbers(arr); ok {
			t.Rotation = geom.Quaternion{X: v[0], Y: v[1], Z: v[2], W: v[3]}
		}
	}

	return t
}

func numbers(arr []*jsonvalue.Value) ([]float64, bool) {
	ret := make([]float64, len(arr))
	for i, e := range arr {
		n, ok := e.TryGetNumber()
		if !ok || math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, false
		}
		ret[i] = n
	}
	return ret, true
}
