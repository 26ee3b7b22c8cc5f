package converter

import (
	"reflect"

	"github.com/binzume/animconv/moviescene"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RootParameterName = "root_Transform"
	parameterSuffix   = "_Transform"
)

// ParameterName returns the rig parameter keyed for a bone.
func ParameterName(bone string) string {
	return bone + parameterSuffix
}

// Logger is satisfied by *zap.Logger.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

type JSONToSequenceOption struct {
	Logger Logger // Default: no-op
}

type JSONToSequence struct {
	*JSONToSequenceOption
}

// Result summarizes a successful conversion.
type Result struct {
	TotalFrames   int
	FramesSkipped int
	KeysEmitted   int
	Parameters    int
}

func NewJSONToSequenceConverter(options *JSONToSequenceOption) *JSONToSequence {
	if options == nil {
		options = &JSONToSequenceOption{}
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	return &JSONToSequence{JSONToSequenceOption: options}
}

// Convert rebuilds the movie scene of seq from the animation JSON.
// Everything before keyframe emission fails fast; malformed frames and bones
// are skipped.
func (c *JSONToSequence) Convert(jsonText string, seq moviescene.LevelSequence, actor moviescene.Actor, rig moviescene.ControlRig) (*Result, error) {
	if isNil(seq) || isNil(actor) || isNil(rig) {
		return nil, ErrInvalidInput
	}

	doc, err := ParseDocument(jsonText)
	if err != nil {
		return nil, err
	}

	scene := seq.MovieScene()
	if isNil(scene) {
		return nil, ErrContainerUnavailable
	}

	ResetMovieScene(scene, c.Logger)
	scene.SetPlaybackRange(0, doc.TotalFrames-1)
	if rs, ok := scene.(moviescene.DisplayRateSetter); ok && doc.FrameRate > 0 {
		rs.SetDisplayRate(doc.FrameRate)
	}

	binding := scene.AddPossessable(actor.Label(), actor.Class())
	if binding == uuid.Nil {
		return nil, ErrBindingFailed
	}

	track := scene.AddControlRigTrack(binding)
	if isNil(track) {
		return nil, ErrTrackCreationFailed
	}

	section, ok := track.CreateNewSection().(moviescene.ControlRigSection)
	if !ok || isNil(section) {
		return nil, ErrSectionCreationFailed
	}
	section.SetControlRig(rig)
	section.SetRange(0, doc.TotalFrames)

	result := &Result{TotalFrames: doc.TotalFrames}
	params := map[string]bool{}
	for i := 0; i < doc.FrameCount(); i++ {
		frame, ok := doc.Frame(i)
		if !ok {
			result.FramesSkipped++
			continue
		}
		if frame.Root != nil {
			section.AddTransformParameterKey(RootParameterName, i, *frame.Root)
			params[RootParameterName] = true
			result.KeysEmitted++
		}
		for _, b := range frame.Bones {
			name := ParameterName(b.Name)
			section.AddTransformParameterKey(name, i, b.Transform)
			params[name] = true
			result.KeysEmitted++
		}
	}
	result.FramesSkipped += doc.TotalFrames - doc.FrameCount()
	result.Parameters = len(params)

	seq.MarkPackageDirty()

	c.Logger.Debug("generated animation",
		zap.Int("total_frames", result.TotalFrames),
		zap.Int("frames_skipped", result.FramesSkipped),
		zap.Int("keys", result.KeysEmitted),
		zap.Int("parameters", result.Parameters))
	return result, nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// GenerateAnimationFromJSON converts with default options and reports the
// failure reason as a string.
func GenerateAnimationFromJSON(jsonText string, seq moviescene.LevelSequence, actor moviescene.Actor, rig moviescene.ControlRig) (bool, string) {
	if _, err := NewJSONToSequenceConverter(nil).Convert(jsonText, seq, actor, rig); err != nil {
		return false, err.Error()
	}
	return true, ""
}
