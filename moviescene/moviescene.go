// Package moviescene describes the scene container that receives generated
// keyframes, and provides an in-memory implementation of it.
//
// The interfaces only carry the operations the converter needs. Binding ids are
// uuids; uuid.Nil is never a valid binding.
package moviescene

import (
	"github.com/binzume/animconv/geom"
	"github.com/google/uuid"
)

// LevelSequence is the asset owning a movie scene.
type LevelSequence interface {
	// MovieScene returns nil when the asset has no scene.
	MovieScene() MovieScene
	MarkPackageDirty()
}

type MovieScene interface {
	PossessableCount() int
	Possessable(i int) Binding
	RemovePossessable(id uuid.UUID) bool
	SpawnableCount() int
	Spawnable(i int) Binding
	RemoveSpawnable(id uuid.UUID) bool

	Tracks() []Track
	RemoveTrack(track Track) bool

	// SetPlaybackRange sets an inclusive frame range.
	SetPlaybackRange(start, end int)

	// AddPossessable returns uuid.Nil on failure.
	AddPossessable(name string, class string) uuid.UUID
	// AddControlRigTrack returns nil on failure.
	AddControlRigTrack(binding uuid.UUID) ControlRigTrack
}

// DisplayRateSetter is implemented by scenes that keep a display frame rate.
type DisplayRateSetter interface {
	SetDisplayRate(fps float64)
}

type Binding struct {
	ID    uuid.UUID
	Name  string
	Class string
}

type Track interface {
	TrackName() string
}

type ControlRigTrack interface {
	Track
	// CreateNewSection returns nil on failure.
	CreateNewSection() Section
}

type Section interface {
	// Range returns the section frame range, end exclusive.
	Range() (start, end int)
	SetRange(start, end int)
}

type ControlRigSection interface {
	Section
	SetControlRig(rig ControlRig)
	AddTransformParameterKey(name string, frame int, value geom.Transform)
}

type Actor interface {
	Label() string
	Class() string
}

type ControlRig interface {
	Name() string
}
