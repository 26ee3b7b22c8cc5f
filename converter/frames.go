package converter

import (
	"github.com/binzume/animconv/geom"
)

type BoneTransform struct {
	Name      string
	Transform geom.Transform
}

// FrameRecord is the normalized content of one frame.
type FrameRecord struct {
	Index int
	Root  *geom.Transform
	Bones []BoneTransform
}

// KeyCount returns the number of keyframes the frame contributes.
func (f *FrameRecord) KeyCount() int {
	n := len(f.Bones)
	if f.Root != nil {
		n++
	}
	return n
}

// Frame extracts frame i. ok is false when the index has no entry or the entry
// is not an object. Bone entries that are not objects are dropped.
func (d *AnimationDocument) Frame(i int) (frame FrameRecord, ok bool) {
	if i < 0 || i >= d.TotalFrames || i >= len(d.Frames) {
		return FrameRecord{}, false
	}
	obj, ok := d.Frames[i].TryGetObject()
	if !ok {
		return FrameRecord{}, false
	}

	frame.Index = i
	if rootObj, ok := obj.TryGetObjectField("root_transform"); ok {
		t := DecodeTransform(rootObj)
		frame.Root = &t
	}
	if bones, ok := obj.TryGetObjectField("bone_transforms"); ok {
		for _, m := range bones.Members() {
			boneObj, ok := m.Value.TryGetObject()
			if !ok {
				continue
			}
			frame.Bones = append(frame.Bones, BoneTransform{Name: m.Key, Transform: DecodeTransform(boneObj)})
		}
	}
	return frame, true
}

// FrameCount returns the number of frame indices that can carry data.
func (d *AnimationDocument) FrameCount() int {
	if len(d.Frames) < d.TotalFrames {
		return len(d.Frames)
	}
	return d.TotalFrames
}
