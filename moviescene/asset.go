package moviescene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/binzume/animconv/geom"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v2"
)

var ErrAssetLocked = errors.New("sequence asset is locked by another process")

type assetFile struct {
	Name  string      `yaml:"name"`
	Scene *sceneAsset `yaml:"scene,omitempty"`
}

type sceneAsset struct {
	PlaybackStart int            `yaml:"playback_start"`
	PlaybackEnd   int            `yaml:"playback_end"`
	DisplayRate   float64        `yaml:"display_rate,omitempty"`
	Possessables  []bindingAsset `yaml:"possessables,omitempty"`
	Spawnables    []bindingAsset `yaml:"spawnables,omitempty"`
	Tracks        []trackAsset   `yaml:"tracks,omitempty"`
	Folders       []folderAsset  `yaml:"folders,omitempty"`
}

type bindingAsset struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
}

type trackAsset struct {
	Name     string         `yaml:"name"`
	Binding  string         `yaml:"binding,omitempty"`
	Sections []sectionAsset `yaml:"sections,omitempty"`
}

type sectionAsset struct {
	Rig        string           `yaml:"rig"`
	Start      int              `yaml:"start"`
	End        int              `yaml:"end"`
	Parameters []parameterAsset `yaml:"parameters,omitempty"`
}

type parameterAsset struct {
	Name string     `yaml:"name"`
	Keys []keyAsset `yaml:"keys"`
}

type keyAsset struct {
	Frame    int        `yaml:"frame"`
	Location [3]float64 `yaml:"location,flow"`
	Rotation [4]float64 `yaml:"rotation,flow"`
}

type folderAsset struct {
	Name        string   `yaml:"name"`
	ChildTracks []string `yaml:"child_tracks,omitempty"`
}

// WriteAsset serializes the sequence as YAML.
func WriteAsset(w io.Writer, seq *Sequence) error {
	data, err := yaml.Marshal(toAsset(seq))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadAsset parses a sequence written by WriteAsset.
func ReadAsset(r io.Reader) (*Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var a assetFile
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return fromAsset(&a)
}

// SaveAsset writes the sequence to path through a temporary file and clears the dirty flag.
func SaveAsset(path string, seq *Sequence) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := WriteAsset(tmp, seq); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	seq.dirty = false
	return nil
}

func LoadAsset(path string) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seq, err := ReadAsset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// LockAsset takes an exclusive lock next to the asset file. Call Unlock when done.
func LockAsset(path string) (*flock.Flock, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetLocked, path)
	}
	return lock, nil
}

func toAsset(seq *Sequence) *assetFile {
	a := &assetFile{Name: seq.Name}
	s := seq.Scene
	if s == nil {
		return a
	}
	sa := &sceneAsset{
		PlaybackStart: s.playbackStart,
		PlaybackEnd:   s.playbackEnd,
		DisplayRate:   s.displayRate,
	}
	for _, b := range s.possessables {
		sa.Possessables = append(sa.Possessables, bindingAsset{ID: b.ID.String(), Name: b.Name, Class: b.Class})
	}
	for _, b := range s.spawnables {
		sa.Spawnables = append(sa.Spawnables, bindingAsset{ID: b.ID.String(), Name: b.Name, Class: b.Class})
	}
	for _, t := range s.tracks {
		ta := trackAsset{Name: t.TrackName()}
		switch t := t.(type) {
		case *RigTrack:
			ta.Binding = t.Binding.String()
			for _, sec := range t.Sections {
				ta.Sections = append(ta.Sections, sectionToAsset(sec))
			}
		case *GenericTrack:
			if t.Binding != uuid.Nil {
				ta.Binding = t.Binding.String()
			}
		}
		sa.Tracks = append(sa.Tracks, ta)
	}
	for _, f := range s.Folders {
		sa.Folders = append(sa.Folders, folderAsset{Name: f.Name, ChildTracks: f.ChildTracks})
	}
	a.Scene = sa
	return a
}

func sectionToAsset(sec *RigSection) sectionAsset {
	sa := sectionAsset{Start: sec.start, End: sec.end}
	if sec.Rig != nil {
		sa.Rig = sec.Rig.Name()
	}
	for _, c := range sec.parameters {
		pa := parameterAsset{Name: c.Name}
		for _, k := range c.Keys {
			pa.Keys = append(pa.Keys, keyAsset{
				Frame:    k.Frame,
				Location: k.Value.Location.ToArray(),
				Rotation: k.Value.Rotation.ToArray(),
			})
		}
		sa.Parameters = append(sa.Parameters, pa)
	}
	return sa
}

func fromAsset(a *assetFile) (*Sequence, error) {
	seq := &Sequence{Name: a.Name}
	if a.Scene == nil {
		return seq, nil
	}
	sa := a.Scene
	s := NewScene()
	s.playbackStart, s.playbackEnd = sa.PlaybackStart, sa.PlaybackEnd
	s.displayRate = sa.DisplayRate

	var err error
	if s.possessables, err = bindingsFromAsset(sa.Possessables); err != nil {
		return nil, err
	}
	if s.spawnables, err = bindingsFromAsset(sa.Spawnables); err != nil {
		return nil, err
	}
	for _, ta := range sa.Tracks {
		binding := uuid.Nil
		if ta.Binding != "" {
			if binding, err = uuid.Parse(ta.Binding); err != nil {
				return nil, fmt.Errorf("track %s: %w", ta.Name, err)
			}
		}
		if ta.Name != ControlRigTrackName {
			s.tracks = append(s.tracks, &GenericTrack{Name: ta.Name, Binding: binding})
			continue
		}
		t := &RigTrack{Binding: binding}
		for _, secA := range ta.Sections {
			sec := NewRigSection()
			sec.SetRange(secA.Start, secA.End)
			if secA.Rig != "" {
				sec.SetControlRig(RigRef(secA.Rig))
			}
			for _, pa := range secA.Parameters {
				for _, k := range pa.Keys {
					sec.AddTransformParameterKey(pa.Name, k.Frame, geom.Transform{
						Location: *geom.NewVector3FromArray(k.Location),
						Rotation: *geom.NewQuaternionFromArray(k.Rotation),
					})
				}
			}
			t.Sections = append(t.Sections, sec)
		}
		s.tracks = append(s.tracks, t)
	}
	for _, f := range sa.Folders {
		s.Folders = append(s.Folders, &Folder{Name: f.Name, ChildTracks: f.ChildTracks})
	}
	seq.Scene = s
	return seq, nil
}

func bindingsFromAsset(src []bindingAsset) ([]Binding, error) {
	var ret []Binding
	for _, b := range src {
		id, err := uuid.Parse(b.ID)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", b.Name, err)
		}
		ret = append(ret, Binding{ID: id, Name: b.Name, Class: b.Class})
	}
	return ret, nil
}
