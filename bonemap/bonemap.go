// Package bonemap maps SMPL joint indices to mannequin skeleton bone names.
package bonemap

import "sort"

// SMPLToMannequin covers the deforming bones that receive motion capture data.
// SMPL joints 22 and 23 have no mannequin counterpart.
var SMPLToMannequin = map[int]string{
	0: "pelvis",
	3: "spine_01",
	6: "spine_02",
	9: "spine_03",

	12: "neck_01",
	15: "head",

	13: "clavicle_l",
	16: "upperarm_l",
	18: "lowerarm_l",
	20: "hand_l",

	14: "clavicle_r",
	17: "upperarm_r",
	19: "lowerarm_r",
	21: "hand_r",

	1:  "thigh_l",
	4:  "calf_l",
	7:  "foot_l",
	10: "ball_l",

	2:  "thigh_r",
	5:  "calf_r",
	8:  "foot_r",
	11: "ball_r",
}

// MannequinBones returns the mapped bone names ordered by SMPL joint index.
func MannequinBones() []string {
	var joints []int
	for j := range SMPLToMannequin {
		joints = append(joints, j)
	}
	sort.Ints(joints)
	bones := make([]string, 0, len(joints))
	for _, j := range joints {
		bones = append(bones, SMPLToMannequin[j])
	}
	return bones
}

// SMPLJoint returns the SMPL joint index of a mannequin bone.
func SMPLJoint(bone string) (int, bool) {
	for j, b := range SMPLToMannequin {
		if b == bone {
			return j, true
		}
	}
	return 0, false
}

// MMDRootBone drives the root transform of converted VMD motions.
const MMDRootBone = "センター"

// MMDToMannequin maps standard MMD bone names to mannequin bones.
var MMDToMannequin = map[string]string{
	"下半身":  "pelvis",
	"上半身":  "spine_01",
	"上半身2": "spine_02",
	"首":    "neck_01",
	"頭":    "head",

	"左肩":  "clavicle_l",
	"左腕":  "upperarm_l",
	"左ひじ": "lowerarm_l",
	"左手首": "hand_l",

	"右肩":  "clavicle_r",
	"右腕":  "upperarm_r",
	"右ひじ": "lowerarm_r",
	"右手首": "hand_r",

	"左足":   "thigh_l",
	"左ひざ":  "calf_l",
	"左足首":  "foot_l",
	"左つま先": "ball_l",

	"右足":   "thigh_r",
	"右ひざ":  "calf_r",
	"右足首":  "foot_r",
	"右つま先": "ball_r",
}
