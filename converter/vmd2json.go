package converter

import (
	"fmt"

	"github.com/binzume/animconv/bonemap"
	"github.com/binzume/animconv/jsonvalue"
	"github.com/binzume/animconv/mmd"
)

// mmdUnit is the size of one MMD unit in centimeters.
const mmdUnit = 8.0

// MaxVMDFrames limits the length of converted motions (about 9.7 hours at 30fps).
const MaxVMDFrames = 1 << 20

type VMDToJSONOption struct {
	// BoneMap renames bones. Bones missing from a non-nil map are dropped.
	BoneMap map[string]string
	// RootBone is written as root_transform.
	RootBone string
	Scale    float64
}

// DefaultVMDToJSONOption maps standard MMD bones onto the mannequin.
func DefaultVMDToJSONOption() *VMDToJSONOption {
	return &VMDToJSONOption{
		BoneMap:  bonemap.MMDToMannequin,
		RootBone: bonemap.MMDRootBone,
		Scale:    mmdUnit,
	}
}

type vmdToJSON struct {
	VMDToJSONOption
}

func NewVMDToJSONConverter(options *VMDToJSONOption) *vmdToJSON {
	if options == nil {
		options = DefaultVMDToJSONOption()
	}
	c := &vmdToJSON{VMDToJSONOption: *options}
	if c.Scale == 0 {
		c.Scale = 1
	}
	return c
}

// MMD is Y-up, UE is Z-up. Both are left-handed so the axes rotate cyclically.
func (c *vmdToJSON) convertVec3(v *mmd.Vector3) [3]float64 {
	return [3]float64{float64(v.Z) * c.Scale, float64(v.X) * c.Scale, float64(v.Y) * c.Scale}
}

func (c *vmdToJSON) convertQuat(q *mmd.Vector4) [4]float64 {
	return [4]float64{float64(q.Z), float64(q.X), float64(q.Y), float64(q.W)}
}

func (c *vmdToJSON) boneName(target string) (string, bool) {
	if c.BoneMap == nil {
		return target, true
	}
	name, ok := c.BoneMap[target]
	return name, ok && name != ""
}

func numberArray(values ...float64) *jsonvalue.Value {
	arr := make([]*jsonvalue.Value, len(values))
	for i, v := range values {
		arr[i] = jsonvalue.NewNumber(v)
	}
	return jsonvalue.NewArray(arr...)
}

func (c *vmdToJSON) transformValue(s *mmd.AnimationBoneSample) *jsonvalue.Value {
	loc := c.convertVec3(&s.Position)
	rot := c.convertQuat(&s.Rotation)
	obj := jsonvalue.NewObject()
	obj.Set("location", numberArray(loc[:]...))
	obj.Set("rotation", numberArray(rot[:]...))
	return jsonvalue.NewObjectValue(obj)
}

// Convert builds an animation document with one frame entry per VMD frame.
// Frames without samples are written as empty objects.
func (c *vmdToJSON) Convert(anim *mmd.Animation) (*jsonvalue.Obj, error) {
	total := anim.FrameCount()
	if total == 0 {
		return nil, fmt.Errorf("%w: motion has no bone samples", ErrMissingFrames)
	}
	if total > MaxVMDFrames {
		return nil, fmt.Errorf("%w: motion has %d frames, limit is %d", ErrInvalidFrameCount, total, MaxVMDFrames)
	}

	boneFrames := anim.BoneFrames()
	var boneNames []*jsonvalue.Value
	seen := map[string]bool{}

	frames := make([]*jsonvalue.Value, total)
	for i := range frames {
		frame := jsonvalue.NewObject()
		bones := jsonvalue.NewObject()
		for _, s := range boneFrames[i] {
			if s.Target == c.RootBone && c.RootBone != "" {
				frame.Set("root_transform", c.transformValue(s))
				continue
			}
			name, ok := c.boneName(s.Target)
			if !ok {
				continue
			}
			bones.Set(name, c.transformValue(s))
			if !seen[name] {
				seen[name] = true
				boneNames = append(boneNames, jsonvalue.NewString(name))
			}
		}
		if bones.Len() > 0 {
			frame.Set("bone_transforms", jsonvalue.NewObjectValue(bones))
		}
		frames[i] = jsonvalue.NewObjectValue(frame)
	}

	meta := jsonvalue.NewObject()
	meta.Set("total_frames", jsonvalue.NewNumber(float64(total)))
	meta.Set("frame_rate", jsonvalue.NewNumber(mmd.FrameRate))
	if anim.ModelName != "" {
		meta.Set("model", jsonvalue.NewString(anim.ModelName))
	}

	root := jsonvalue.NewObject()
	root.Set("meta", jsonvalue.NewObjectValue(meta))
	root.Set("bones", jsonvalue.NewArray(boneNames...))
	root.Set("frames", jsonvalue.NewArray(frames...))
	return root, nil
}
