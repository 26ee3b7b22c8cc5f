package vrm

import (
	"github.com/qmuntal/gltf"
)

// MannequinBones maps VRM humanoid bone names to mannequin bones.
var MannequinBones = map[string]string{
	"hips":       "pelvis",
	"spine":      "spine_01",
	"chest":      "spine_02",
	"upperChest": "spine_03",
	"neck":       "neck_01",
	"head":       "head",

	"leftShoulder": "clavicle_l",
	"leftUpperArm": "upperarm_l",
	"leftLowerArm": "lowerarm_l",
	"leftHand":     "hand_l",

	"rightShoulder": "clavicle_r",
	"rightUpperArm": "upperarm_r",
	"rightLowerArm": "lowerarm_r",
	"rightHand":     "hand_r",

	"leftUpperLeg": "thigh_l",
	"leftLowerLeg": "calf_l",
	"leftFoot":     "foot_l",
	"leftToes":     "ball_l",

	"rightUpperLeg": "thigh_r",
	"rightLowerLeg": "calf_r",
	"rightFoot":     "foot_r",
	"rightToes":     "ball_r",
}

// NodeBones returns the mannequin bone for each humanoid node of doc.
// Bones without a mannequin counterpart and invalid nodes are skipped.
func NodeBones(doc *gltf.Document) map[int]string {
	ext, ok := Extension(doc)
	if !ok {
		return nil
	}
	r := map[int]string{}
	for _, b := range ext.Humanoid.Bones {
		if b == nil || b.Node < 0 || b.Node >= len(doc.Nodes) {
			continue
		}
		if name, ok := MannequinBones[b.Bone]; ok {
			r[b.Node] = name
		}
	}
	return r
}
