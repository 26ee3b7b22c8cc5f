// Package vrm reads the humanoid description of VRM 0.x models.
package vrm

// https://github.com/vrm-c/vrm-specification/blob/master/specification/0.0/README.md

import (
	"encoding/json"

	"github.com/qmuntal/gltf"
)

const ExtensionName = "VRM"

func init() {
	gltf.RegisterExtension(ExtensionName, Unmarshal)
}

type Metadata struct {
	Title   string `json:"title"`
	Version string `json:"version"`
	Author  string `json:"author"`
}

type Bone struct {
	Bone string `json:"bone"`
	Node int    `json:"node"`
}

type Humanoid struct {
	Bones []*Bone `json:"humanBones"`
}

type VRMExt struct {
	Meta            Metadata `json:"meta"`
	Humanoid        Humanoid `json:"humanoid"`
	ExporterVersion string   `json:"exporterVersion,omitempty"`
}

func Unmarshal(data []byte) (interface{}, error) {
	var vrmext VRMExt
	if err := json.Unmarshal(data, &vrmext); err != nil {
		return nil, err
	}
	return &vrmext, nil
}

// Extension returns the VRM extension of doc, if any.
func Extension(doc *gltf.Document) (*VRMExt, bool) {
	ext, ok := doc.Extensions[ExtensionName].(*VRMExt)
	return ext, ok
}
