package converter

import (
	"errors"
)

var (
	ErrInvalidInput          = errors.New("invalid inputs: target sequence, actor or control rig is nil")
	ErrParse                 = errors.New("failed to parse JSON string, check for syntax errors")
	ErrMissingMeta           = errors.New("JSON is missing 'meta' object field")
	ErrInvalidFrameCount     = errors.New("JSON 'meta' object is missing 'total_frames' field or it is not a positive frame count")
	ErrMissingFrames         = errors.New("either JSON is missing 'frames' array field or it is empty")
	ErrContainerUnavailable  = errors.New("could not get movie scene from level sequence")
	ErrBindingFailed         = errors.New("failed to add actor possessable to movie scene")
	ErrTrackCreationFailed   = errors.New("failed to add control rig parameter track")
	ErrSectionCreationFailed = errors.New("failed to create new section on control rig track")
)

var errorKinds = []struct {
	err  error
	name string
}{
	{ErrInvalidInput, "InvalidInputError"},
	{ErrParse, "ParseError"},
	{ErrMissingMeta, "MissingMetaError"},
	{ErrInvalidFrameCount, "InvalidFrameCountError"},
	{ErrMissingFrames, "MissingFramesError"},
	{ErrContainerUnavailable, "ContainerUnavailableError"},
	{ErrBindingFailed, "BindingFailedError"},
	{ErrTrackCreationFailed, "TrackCreationFailedError"},
	{ErrSectionCreationFailed, "SectionCreationFailedError"},
}

// ErrorKind returns the taxonomy name of err, or "" if err is not a converter error.
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
