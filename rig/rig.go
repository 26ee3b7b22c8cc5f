// Package rig builds control rig descriptions for the converter.
package rig

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/binzume/animconv/bonemap"
	"github.com/binzume/animconv/converter"
	"github.com/binzume/animconv/gltfutil"
	"github.com/binzume/animconv/moviescene"
	"github.com/binzume/animconv/vrm"
	"github.com/qmuntal/gltf"
)

const (
	MannequinRigName      = "CR_Mannequin"
	SkeletalMeshActorType = "SkeletalMeshActor"
)

// ControlRig is a named set of transform controls.
type ControlRig struct {
	RigName  string
	Controls []string
	index    map[string]bool
}

// New creates a rig with root_Transform and one transform control per bone.
func New(name string, bones []string) *ControlRig {
	r := &ControlRig{RigName: name, index: map[string]bool{}}
	r.add(converter.RootParameterName)
	for _, b := range bones {
		r.add(converter.ParameterName(b))
	}
	return r
}

func (r *ControlRig) add(control string) {
	if r.index[control] {
		return
	}
	r.index[control] = true
	r.Controls = append(r.Controls, control)
}

func (r *ControlRig) Name() string {
	return r.RigName
}

func (r *ControlRig) HasControl(name string) bool {
	return r.index[name]
}

func Mannequin() *ControlRig {
	return New(MannequinRigName, bonemap.MannequinBones())
}

// FromGLTF creates a rig from the joints of the first skin. Joints that are
// VRM humanoid bones also get a control under their mannequin name.
func FromGLTF(doc *gltf.Document, name string) (*ControlRig, error) {
	if len(doc.Skins) == 0 {
		return nil, fmt.Errorf("rig %s: no skin", name)
	}
	joints, err := gltfutil.JointNames(doc, 0)
	if err != nil {
		return nil, fmt.Errorf("rig %s: %w", name, err)
	}
	r := New(name, joints)
	if humanoid := vrm.NodeBones(doc); humanoid != nil {
		for _, n := range doc.Skins[0].Joints {
			if bone, ok := humanoid[int(n)]; ok {
				r.add(converter.ParameterName(bone))
			}
		}
	}
	return r, nil
}

// ActorFromGLTF describes the skinned mesh node as an actor.
func ActorFromGLTF(doc *gltf.Document, fallback string) *moviescene.ActorRef {
	label := fallback
	if n, ok := gltfutil.SkinnedNode(doc, 0); ok && doc.Nodes[n].Name != "" {
		label = doc.Nodes[n].Name
	}
	return moviescene.NewActor(label, SkeletalMeshActorType)
}

// LoadGLTF reads a .gltf/.glb/.vrm skeleton. The rig is named after the file.
func LoadGLTF(path string) (*ControlRig, *moviescene.ActorRef, error) {
	doc, err := gltfutil.Load(path)
	if err != nil {
		return nil, nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	r, err := FromGLTF(doc, "CR_"+base)
	if err != nil {
		return nil, nil, err
	}
	return r, ActorFromGLTF(doc, base), nil
}
