package converter

import (
	"errors"
	"testing"

	"github.com/binzume/animconv/geom"
	"github.com/binzume/animconv/jsonvalue"
	"github.com/binzume/animconv/mmd"
	"github.com/binzume/animconv/moviescene"
)

func testMotion() *mmd.Animation {
	return &mmd.Animation{
		ModelName: "model",
		Bone: []*mmd.AnimationBoneSample{
			{Target: "センター", Frame: 0, Position: mmd.Vector3{X: 1, Y: 2, Z: 3}, Rotation: mmd.Vector4{W: 1}},
			{Target: "左腕", Frame: 0, Rotation: mmd.Vector4{X: 1, W: 0}},
			{Target: "髪", Frame: 1, Rotation: mmd.Vector4{W: 1}},
			{Target: "頭", Frame: 2, Rotation: mmd.Vector4{Y: 1}},
		},
	}
}

func TestVMDToJSON(t *testing.T) {
	obj, err := NewVMDToJSONConverter(nil).Convert(testMotion())
	if err != nil {
		t.Fatal(err)
	}
	data, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	doc, err := ParseDocument(string(data))
	if err != nil {
		t.Fatal(err)
	}
	if doc.TotalFrames != 3 || doc.FrameRate != 30 || len(doc.Frames) != 3 {
		t.Fatal("document: ", doc.TotalFrames, doc.FrameRate, len(doc.Frames))
	}

	f0, ok := doc.Frame(0)
	if !ok || f0.Root == nil || len(f0.Bones) != 1 {
		t.Fatal("frame 0: ", f0)
	}
	if f0.Root.Location != (geom.Vector3{X: 24, Y: 8, Z: 16}) {
		t.Error("root location: ", f0.Root.Location)
	}
	if f0.Bones[0].Name != "upperarm_l" || f0.Bones[0].Transform.Rotation != (geom.Quaternion{Y: 1}) {
		t.Error("bone: ", f0.Bones[0])
	}

	// Unmapped bones are dropped, leaving an empty frame.
	f1, ok := doc.Frame(1)
	if !ok || f1.KeyCount() != 0 {
		t.Error("frame 1: ", f1)
	}

	f2, _ := doc.Frame(2)
	if len(f2.Bones) != 1 || f2.Bones[0].Name != "head" || f2.Bones[0].Transform.Rotation != (geom.Quaternion{Z: 1}) {
		t.Error("frame 2: ", f2)
	}

	bones, err := jsonvalue.ArrayFieldAsStrings("", obj, "bones")
	if err != nil || len(bones) != 2 || bones[0] != "upperarm_l" || bones[1] != "head" {
		t.Error("bones: ", bones, err)
	}
}

func TestVMDToJSONKeepNames(t *testing.T) {
	obj, err := NewVMDToJSONConverter(&VMDToJSONOption{}).Convert(testMotion())
	if err != nil {
		t.Fatal(err)
	}
	bones, _ := jsonvalue.ArrayFieldAsStrings("", obj, "bones")
	if len(bones) != 4 {
		t.Error("all bones should be kept: ", bones)
	}
}

func TestVMDToJSONEmpty(t *testing.T) {
	_, err := NewVMDToJSONConverter(nil).Convert(&mmd.Animation{})
	if !errors.Is(err, ErrMissingFrames) {
		t.Error("expected ErrMissingFrames: ", err)
	}
}

func TestVMDToSequence(t *testing.T) {
	obj, err := NewVMDToJSONConverter(nil).Convert(testMotion())
	if err != nil {
		t.Fatal(err)
	}
	data, _ := obj.MarshalJSON()

	seq := moviescene.NewSequence("Dance")
	result, err := NewJSONToSequenceConverter(nil).Convert(string(data), seq, testActor, testRig)
	if err != nil {
		t.Fatal(err)
	}
	if result.KeysEmitted != 3 || result.Parameters != 3 {
		t.Error("result: ", result)
	}
	if seq.Scene.DisplayRate() != 30 {
		t.Error("display rate: ", seq.Scene.DisplayRate())
	}
}

func TestVMDToJSONFrameLimit(t *testing.T) {
	var last uint32 = 0xFFFFFFFF
	anim := &mmd.Animation{Bone: []*mmd.AnimationBoneSample{
		{Target: "頭", Frame: int(last), Rotation: mmd.Vector4{W: 1}},
	}}
	if _, err := NewVMDToJSONConverter(nil).Convert(anim); !errors.Is(err, ErrInvalidFrameCount) {
		t.Error("expected ErrInvalidFrameCount: ", err)
	}

	anim.Bone[0].Frame = MaxVMDFrames
	if _, err := NewVMDToJSONConverter(nil).Convert(anim); !errors.Is(err, ErrInvalidFrameCount) {
		t.Error("expected ErrInvalidFrameCount at limit: ", err)
	}
}
