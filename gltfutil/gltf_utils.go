package gltfutil

import (
	"fmt"

	"github.com/qmuntal/gltf"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// JointNames returns the node names of the joints of skin, in joint order.
// Unnamed joints get "joint_<node>".
func JointNames(doc *gltf.Document, skin int) ([]string, error) {
	if skin < 0 || skin >= len(doc.Skins) {
		return nil, fmt.Errorf("skin %d not found", skin)
	}
	var names []string
	for _, n := range doc.Skins[skin].Joints {
		if int(n) >= len(doc.Nodes) {
			return nil, fmt.Errorf("skin %d: joint node %d out of range", skin, n)
		}
		name := doc.Nodes[n].Name
		if name == "" {
			name = fmt.Sprintf("joint_%d", n)
		}
		names = append(names, name)
	}
	return names, nil
}

// SkinnedNode returns the first node referencing skin.
func SkinnedNode(doc *gltf.Document, skin int) (int, bool) {
	for i, n := range doc.Nodes {
		if n.Skin != nil && int(*n.Skin) == skin {
			return i, true
		}
	}
	return 0, false
}
