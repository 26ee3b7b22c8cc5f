package converter

import (
	"fmt"
	"math"

	"github.com/binzume/animconv/jsonvalue"
)

// AnimationDocument is a validated animation JSON document.
type AnimationDocument struct {
	TotalFrames int
	// FrameRate is meta.frame_rate, or 0 when absent.
	FrameRate float64
	Frames    []*jsonvalue.Value
}

// ParseDocument parses and validates the top-level structure of jsonText.
// Checks run in order and the first failure is returned.
func ParseDocument(jsonText string) (*AnimationDocument, error) {
	root, err := jsonvalue.Parse(jsonText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	rootObj, ok := root.TryGetObject()
	if !ok {
		return nil, fmt.Errorf("%w: root is %v, not object", ErrParse, root.Kind())
	}
	return ValidateDocument(rootObj)
}

// ValidateDocument validates an already decoded root object.
func ValidateDocument(root *jsonvalue.Obj) (*AnimationDocument, error) {
	meta, ok := root.TryGetObjectField("meta")
	if !ok {
		return nil, ErrMissingMeta
	}

	total, ok := meta.TryGetNumberField("total_frames")
	if !ok {
		return nil, ErrInvalidFrameCount
	}
	// Frame counts are integers; fractions are truncated before the range check.
	total = math.Trunc(total)
	if total < 1 || total > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrameCount, total)
	}

	frames, ok := root.TryGetArrayField("frames")
	if !ok || len(frames) == 0 {
		return nil, ErrMissingFrames
	}

	doc := &AnimationDocument{
		TotalFrames: int(total),
		Frames:      frames,
	}
	if fps, ok := meta.TryGetNumberField("frame_rate"); ok && fps > 0 && !math.IsInf(fps, 0) {
		doc.FrameRate = fps
	}
	return doc, nil
}
