package moviescene

import (
	"github.com/google/uuid"
)

// Sequence is an in-memory LevelSequence.
type Sequence struct {
	Name  string
	Scene *Scene
	dirty bool
}

func NewSequence(name string) *Sequence {
	return &Sequence{Name: name, Scene: NewScene()}
}

func (s *Sequence) MovieScene() MovieScene {
	if s.Scene == nil {
		return nil
	}
	return s.Scene
}

func (s *Sequence) MarkPackageDirty() {
	s.dirty = true
}

func (s *Sequence) IsDirty() bool {
	return s.dirty
}

// Folder groups tracks by name. Folders are display only.
type Folder struct {
	Name        string
	ChildTracks []string
}

// Scene is an in-memory MovieScene.
type Scene struct {
	possessables  []Binding
	spawnables    []Binding
	tracks        []Track
	Folders       []*Folder
	playbackStart int
	playbackEnd   int
	displayRate   float64
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) PossessableCount() int {
	return len(s.possessables)
}

func (s *Scene) Possessable(i int) Binding {
	return s.possessables[i]
}

func (s *Scene) SpawnableCount() int {
	return len(s.spawnables)
}

func (s *Scene) Spawnable(i int) Binding {
	return s.spawnables[i]
}

func (s *Scene) AddPossessable(name string, class string) uuid.UUID {
	if class == "" {
		return uuid.Nil
	}
	b := Binding{ID: uuid.New(), Name: name, Class: class}
	s.possessables = append(s.possessables, b)
	return b.ID
}

func (s *Scene) AddSpawnable(name string, class string) uuid.UUID {
	if class == "" {
		return uuid.Nil
	}
	b := Binding{ID: uuid.New(), Name: name, Class: class}
	s.spawnables = append(s.spawnables, b)
	return b.ID
}

func (s *Scene) RemovePossessable(id uuid.UUID) bool {
	var ok bool
	s.possessables, ok = removeBinding(s.possessables, id)
	if ok {
		s.removeBoundTracks(id)
	}
	return ok
}

func (s *Scene) RemoveSpawnable(id uuid.UUID) bool {
	var ok bool
	s.spawnables, ok = removeBinding(s.spawnables, id)
	if ok {
		s.removeBoundTracks(id)
	}
	return ok
}

func removeBinding(bindings []Binding, id uuid.UUID) ([]Binding, bool) {
	for i, b := range bindings {
		if b.ID == id {
			return append(bindings[:i:i], bindings[i+1:]...), true
		}
	}
	return bindings, false
}

func (s *Scene) removeBoundTracks(id uuid.UUID) {
	var tracks []Track
	for _, t := range s.tracks {
		if bt, ok := t.(interface{ BindingID() uuid.UUID }); ok && bt.BindingID() == id {
			continue
		}
		tracks = append(tracks, t)
	}
	s.tracks = tracks
}

func (s *Scene) hasBinding(id uuid.UUID) bool {
	for _, b := range s.possessables {
		if b.ID == id {
			return true
		}
	}
	for _, b := range s.spawnables {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Tracks returns a copy of the track list.
func (s *Scene) Tracks() []Track {
	return append([]Track(nil), s.tracks...)
}

// AddTrack adds a track that is not driven by the converter (audio, events...).
func (s *Scene) AddTrack(t Track) {
	s.tracks = append(s.tracks, t)
}

func (s *Scene) RemoveTrack(track Track) bool {
	for i, t := range s.tracks {
		if t == track {
			s.tracks = append(s.tracks[:i:i], s.tracks[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Scene) AddControlRigTrack(binding uuid.UUID) ControlRigTrack {
	if binding == uuid.Nil || !s.hasBinding(binding) {
		return nil
	}
	t := &RigTrack{Binding: binding}
	s.tracks = append(s.tracks, t)
	return t
}

// ControlRigTracks returns the control rig tracks bound to id.
func (s *Scene) ControlRigTracks(id uuid.UUID) []*RigTrack {
	var ret []*RigTrack
	for _, t := range s.tracks {
		if rt, ok := t.(*RigTrack); ok && rt.Binding == id {
			ret = append(ret, rt)
		}
	}
	return ret
}

func (s *Scene) SetPlaybackRange(start, end int) {
	s.playbackStart, s.playbackEnd = start, end
}

func (s *Scene) PlaybackRange() (start, end int) {
	return s.playbackStart, s.playbackEnd
}

func (s *Scene) SetDisplayRate(fps float64) {
	s.displayRate = fps
}

func (s *Scene) DisplayRate() float64 {
	return s.displayRate
}

// GenericTrack is a named track with no keyframe data.
type GenericTrack struct {
	Name    string
	Binding uuid.UUID
}

func (t *GenericTrack) TrackName() string {
	return t.Name
}

func (t *GenericTrack) BindingID() uuid.UUID {
	return t.Binding
}
