package moviescene

import (
	"sort"

	"github.com/binzume/animconv/geom"
	"github.com/google/uuid"
)

const ControlRigTrackName = "ControlRigParameter"

type RigTrack struct {
	Binding  uuid.UUID
	Sections []*RigSection
}

func (t *RigTrack) TrackName() string {
	return ControlRigTrackName
}

func (t *RigTrack) BindingID() uuid.UUID {
	return t.Binding
}

func (t *RigTrack) CreateNewSection() Section {
	s := NewRigSection()
	t.Sections = append(t.Sections, s)
	return s
}

type TransformKey struct {
	Frame int
	Value geom.Transform
}

// ParameterCurve holds the keys of one rig parameter, sorted by frame.
type ParameterCurve struct {
	Name string
	Keys []TransformKey
}

// KeyAt returns the key at frame.
func (c *ParameterCurve) KeyAt(frame int) (geom.Transform, bool) {
	i := sort.Search(len(c.Keys), func(i int) bool { return c.Keys[i].Frame >= frame })
	if i < len(c.Keys) && c.Keys[i].Frame == frame {
		return c.Keys[i].Value, true
	}
	return geom.Transform{}, false
}

type RigSection struct {
	Rig        ControlRig
	start, end int
	parameters []*ParameterCurve
	index      map[string]int
}

func NewRigSection() *RigSection {
	return &RigSection{index: map[string]int{}}
}

func (s *RigSection) Range() (start, end int) {
	return s.start, s.end
}

func (s *RigSection) SetRange(start, end int) {
	s.start, s.end = start, end
}

func (s *RigSection) SetControlRig(rig ControlRig) {
	s.Rig = rig
}

// AddTransformParameterKey adds a key, replacing any key at the same frame.
func (s *RigSection) AddTransformParameterKey(name string, frame int, value geom.Transform) {
	c := s.curve(name)
	i := sort.Search(len(c.Keys), func(i int) bool { return c.Keys[i].Frame >= frame })
	if i < len(c.Keys) && c.Keys[i].Frame == frame {
		c.Keys[i].Value = value
		return
	}
	c.Keys = append(c.Keys, TransformKey{})
	copy(c.Keys[i+1:], c.Keys[i:])
	c.Keys[i] = TransformKey{Frame: frame, Value: value}
}

func (s *RigSection) curve(name string) *ParameterCurve {
	if s.index == nil {
		s.index = map[string]int{}
	}
	if i, ok := s.index[name]; ok {
		return s.parameters[i]
	}
	c := &ParameterCurve{Name: name}
	s.index[name] = len(s.parameters)
	s.parameters = append(s.parameters, c)
	return c
}

// Parameters returns curves in the order they were first keyed.
func (s *RigSection) Parameters() []*ParameterCurve {
	return s.parameters
}

func (s *RigSection) Parameter(name string) *ParameterCurve {
	if i, ok := s.index[name]; ok {
		return s.parameters[i]
	}
	return nil
}

func (s *RigSection) KeyCount() int {
	n := 0
	for _, c := range s.parameters {
		n += len(c.Keys)
	}
	return n
}

// RigRef is a ControlRig known only by name.
type RigRef string

func (r RigRef) Name() string {
	return string(r)
}

// ActorRef is an Actor described by label and class.
type ActorRef struct {
	ActorLabel string
	ActorClass string
}

func NewActor(label, class string) *ActorRef {
	return &ActorRef{ActorLabel: label, ActorClass: class}
}

func (a *ActorRef) Label() string {
	return a.ActorLabel
}

func (a *ActorRef) Class() string {
	return a.ActorClass
}
