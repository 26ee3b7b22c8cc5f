package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/binzume/animconv/geom"
	"github.com/binzume/animconv/moviescene"
	"github.com/google/uuid"
)

var testActor = moviescene.NewActor("SK_Mannequin", "SkeletalMeshActor")

const testRig = moviescene.RigRef("CR_Mannequin")

const scenarioJSON = `{
	"meta": {"total_frames": 2},
	"frames": [
		{"root_transform": {"location": [0, 0, 0], "rotation": [0, 0, 0, 1]}},
		{"bone_transforms": {"spine": {"location": [1, 0, 0]}}}
	]
}`

func rigSection(t *testing.T, s *moviescene.Scene) *moviescene.RigSection {
	t.Helper()
	if s.PossessableCount() != 1 {
		t.Fatal("possessables: ", s.PossessableCount())
	}
	tracks := s.ControlRigTracks(s.Possessable(0).ID)
	if len(tracks) != 1 || len(tracks[0].Sections) != 1 {
		t.Fatal("control rig track not created")
	}
	return tracks[0].Sections[0]
}

func TestConvertScenario(t *testing.T) {
	seq := moviescene.NewSequence("Seq")
	result, err := NewJSONToSequenceConverter(nil).Convert(scenarioJSON, seq, testActor, testRig)
	if err != nil {
		t.Fatal(err)
	}

	if start, end := seq.Scene.PlaybackRange(); start != 0 || end != 1 {
		t.Error("playback range: ", start, end)
	}
	if !seq.IsDirty() {
		t.Error("sequence should be marked dirty")
	}

	b := seq.Scene.Possessable(0)
	if b.Name != "SK_Mannequin" || b.Class != "SkeletalMeshActor" {
		t.Error("binding: ", b)
	}

	sec := rigSection(t, seq.Scene)
	if sec.Rig != testRig {
		t.Error("rig: ", sec.Rig)
	}
	if start, end := sec.Range(); start != 0 || end != 2 {
		t.Error("section range: ", start, end)
	}

	root := sec.Parameter(RootParameterName)
	if root == nil || len(root.Keys) != 1 || root.Keys[0].Frame != 0 || !root.Keys[0].Value.IsIdentity() {
		t.Error("root_Transform: ", root)
	}
	spine := sec.Parameter("spine_Transform")
	if spine == nil || len(spine.Keys) != 1 || spine.Keys[0].Frame != 1 {
		t.Fatal("spine_Transform: ", spine)
	}
	if spine.Keys[0].Value.Location != (geom.Vector3{X: 1}) || spine.Keys[0].Value.Rotation != geom.IdentityQuaternion() {
		t.Error("spine key: ", spine.Keys[0].Value)
	}

	if result.KeysEmitted != 2 || result.Parameters != 2 || result.FramesSkipped != 0 || result.TotalFrames != 2 {
		t.Error("result: ", result)
	}
}

func TestConvertKeyCountPerFrame(t *testing.T) {
	src := `{
		"meta": {"total_frames": 6, "frame_rate": 24},
		"frames": [
			{"root_transform": {}, "bone_transforms": {"a": {}, "b": {}, "c": {}}},
			42,
			{"bone_transforms": {"a": {}, "b": null}},
			{"root_transform": {}}
		]
	}`
	seq := moviescene.NewSequence("Seq")
	result, err := NewJSONToSequenceConverter(nil).Convert(src, seq, testActor, testRig)
	if err != nil {
		t.Fatal(err)
	}

	keysAt := map[int]int{}
	for _, c := range rigSection(t, seq.Scene).Parameters() {
		for _, k := range c.Keys {
			keysAt[k.Frame]++
		}
	}
	for frame, want := range []int{4, 0, 1, 1, 0, 0} {
		if keysAt[frame] != want {
			t.Errorf("frame %d: %d keys, want %d", frame, keysAt[frame], want)
		}
	}
	if result.FramesSkipped != 3 {
		t.Error("FramesSkipped: ", result.FramesSkipped)
	}
	if seq.Scene.DisplayRate() != 24 {
		t.Error("display rate: ", seq.Scene.DisplayRate())
	}
	if start, end := seq.Scene.PlaybackRange(); start != 0 || end != 5 {
		t.Error("playback range: ", start, end)
	}
}

func TestConvertResetsPreviousContent(t *testing.T) {
	seq := moviescene.NewSequence("Seq")
	seq.Scene = populatedScene()

	if ok, reason := GenerateAnimationFromJSON(scenarioJSON, seq, testActor, testRig); !ok {
		t.Fatal(reason)
	}
	if seq.Scene.PossessableCount() != 1 || seq.Scene.SpawnableCount() != 0 {
		t.Error("previous bindings should be removed")
	}
	if len(seq.Scene.Tracks()) != 1 {
		t.Error("tracks: ", len(seq.Scene.Tracks()))
	}

	// running again gives the same shape
	if ok, reason := GenerateAnimationFromJSON(scenarioJSON, seq, testActor, testRig); !ok {
		t.Fatal(reason)
	}
	if seq.Scene.PossessableCount() != 1 || len(seq.Scene.Tracks()) != 1 {
		t.Error("second conversion should replace the first")
	}
}

func TestConvertInvalidInput(t *testing.T) {
	seq := moviescene.NewSequence("Seq")
	var nilSeq *moviescene.Sequence
	var nilActor *moviescene.ActorRef

	for i, c := range []struct {
		seq   moviescene.LevelSequence
		actor moviescene.Actor
		rig   moviescene.ControlRig
	}{
		{nil, testActor, testRig},
		{seq, nil, testRig},
		{seq, testActor, nil},
		{nilSeq, testActor, testRig},
		{seq, nilActor, testRig},
	} {
		// input checks come before parsing
		_, err := NewJSONToSequenceConverter(nil).Convert("{", c.seq, c.actor, c.rig)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%d: %v", i, err)
		}
	}
}

func TestConvertStructuralErrorsDoNotTouchScene(t *testing.T) {
	for _, src := range []string{
		`{`,
		`{"frames": [{}]}`,
		`{"meta": {"total_frames": 0}, "frames": [{}]}`,
		`{"meta": {"total_frames": 3}, "frames": []}`,
	} {
		seq := moviescene.NewSequence("Seq")
		seq.Scene = populatedScene()
		ok, reason := GenerateAnimationFromJSON(src, seq, testActor, testRig)
		if ok || reason == "" {
			t.Errorf("%s: should fail", src)
		}
		if seq.Scene.PossessableCount() != 2 || seq.Scene.SpawnableCount() != 1 || len(seq.Scene.Tracks()) != 3 {
			t.Errorf("%s: scene modified", src)
		}
		if seq.IsDirty() {
			t.Errorf("%s: sequence marked dirty", src)
		}
	}
}

func TestGenerateAnimationFromJSONReason(t *testing.T) {
	seq := moviescene.NewSequence("Seq")
	ok, reason := GenerateAnimationFromJSON(`{"meta": {}, "frames": [{}]}`, seq, testActor, testRig)
	if ok {
		t.Fatal("should fail")
	}
	if reason != ErrInvalidFrameCount.Error() {
		t.Error("reason: ", reason)
	}

	ok, reason = GenerateAnimationFromJSON(`{"meta": {"total_frames": 1}, "frames": [{}]}`, seq, testActor, testRig)
	if !ok || reason != "" {
		t.Error("should succeed: ", reason)
	}
}

func TestConvertBeyondFramesArray(t *testing.T) {
	seq := moviescene.NewSequence("Seq")
	src := `{"meta": {"total_frames": 100}, "frames": [{"root_transform": {}}]}`
	result, err := NewJSONToSequenceConverter(nil).Convert(src, seq, testActor, testRig)
	if err != nil {
		t.Fatal(err)
	}
	if result.KeysEmitted != 1 || result.FramesSkipped != 99 {
		t.Error("result: ", result)
	}
	if start, end := rigSection(t, seq.Scene).Range(); start != 0 || end != 100 {
		t.Error("section range: ", start, end)
	}
}

// fakes for collaborator failures

type fakeSequence struct {
	scene moviescene.MovieScene
	dirty bool
}

func (s *fakeSequence) MovieScene() moviescene.MovieScene { return s.scene }
func (s *fakeSequence) MarkPackageDirty()                 { s.dirty = true }

type fakeScene struct {
	*moviescene.Scene
	failBinding bool
	failTrack   bool
	section     moviescene.Section
}

func (s *fakeScene) AddPossessable(name, class string) uuid.UUID {
	if s.failBinding {
		return uuid.Nil
	}
	return s.Scene.AddPossessable(name, class)
}

func (s *fakeScene) AddControlRigTrack(binding uuid.UUID) moviescene.ControlRigTrack {
	if s.failTrack {
		return nil
	}
	return &fakeTrack{section: s.section}
}

type fakeTrack struct {
	section moviescene.Section
}

func (t *fakeTrack) TrackName() string                    { return "fake" }
func (t *fakeTrack) CreateNewSection() moviescene.Section { return t.section }

type plainSection struct{}

func (plainSection) Range() (int, int) { return 0, 0 }
func (plainSection) SetRange(int, int) {}

func TestConvertCollaboratorFailures(t *testing.T) {
	src := `{"meta": {"total_frames": 1}, "frames": [{}]}`

	for _, c := range []struct {
		name string
		seq  *fakeSequence
		err  error
	}{
		{"no scene", &fakeSequence{}, ErrContainerUnavailable},
		{"binding", &fakeSequence{scene: &fakeScene{Scene: moviescene.NewScene(), failBinding: true}}, ErrBindingFailed},
		{"track", &fakeSequence{scene: &fakeScene{Scene: moviescene.NewScene(), failTrack: true}}, ErrTrackCreationFailed},
		{"nil section", &fakeSequence{scene: &fakeScene{Scene: moviescene.NewScene()}}, ErrSectionCreationFailed},
		{"section kind", &fakeSequence{scene: &fakeScene{Scene: moviescene.NewScene(), section: plainSection{}}}, ErrSectionCreationFailed},
	} {
		_, err := NewJSONToSequenceConverter(nil).Convert(src, c.seq, testActor, testRig)
		if !errors.Is(err, c.err) {
			t.Errorf("%s: %v, want %v", c.name, err, c.err)
		}
		if c.seq.dirty {
			t.Errorf("%s: marked dirty on failure", c.name)
		}
	}

	ok, reason := GenerateAnimationFromJSON(src, &fakeSequence{}, testActor, testRig)
	if ok || !strings.Contains(reason, "movie scene") {
		t.Error("reason: ", reason)
	}
}
