package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/binzume/animconv/converter"
	"github.com/binzume/animconv/mmd"
)

func replaceExt(input, ext string) string {
	return input[0:len(input)-len(filepath.Ext(input))] + ext
}

func defaultSequenceFile(input string) string {
	return replaceExt(input, ".sequence.yaml")
}

// loadAnimationText reads animation JSON. .vmd motions are converted with the
// default mannequin mapping.
func loadAnimationText(input string) (string, error) {
	if strings.ToLower(filepath.Ext(input)) == ".vmd" {
		anim, err := mmd.LoadVMD(input)
		if err != nil {
			return "", err
		}
		obj, err := converter.NewVMDToJSONConverter(nil).Convert(anim)
		if err != nil {
			return "", err
		}
		data, err := obj.MarshalJSON()
		return string(data), err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
