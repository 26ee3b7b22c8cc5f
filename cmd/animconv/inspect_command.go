package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binzume/animconv/geom"
	"github.com/binzume/animconv/moviescene"
	"github.com/binzume/animconv/rig"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var rigPath string
	var frame int

	cmd := &cobra.Command{
		Use:   "inspect <sequence.yaml>",
		Short: "Show bindings and keyed rig parameters of a sequence asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}
			seq, err := moviescene.LoadAsset(args[0])
			if err != nil {
				return err
			}
			controlRig, _, err := ctx.controlRig(cfg, rigPath)
			if err != nil {
				return err
			}
			if err := inspectSequence(cmd, seq, controlRig); err != nil {
				return err
			}
			if cmd.Flags().Changed("frame") {
				inspectFrame(cmd, seq, frame)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rigPath, "rig", "", "Skeleton (.gltf/.glb/.vrm) to check parameters against")
	cmd.Flags().IntVar(&frame, "frame", 0, "Also print the keyed transforms at this frame")
	return cmd
}

func inspectSequence(cmd *cobra.Command, seq *moviescene.Sequence, controlRig *rig.ControlRig) error {
	out := cmd.OutOrStdout()
	scene := seq.Scene
	if scene == nil {
		fmt.Fprintf(out, "%s: empty\n", seq.Name)
		return nil
	}
	start, end := scene.PlaybackRange()
	fmt.Fprintf(out, "Sequence:  %s\n", seq.Name)
	fmt.Fprintf(out, "Playback:  %d - %d\n", start, end)
	if rate := scene.DisplayRate(); rate > 0 {
		fmt.Fprintf(out, "Rate:      %s fps\n", strconv.FormatFloat(rate, 'f', -1, 64))
	}
	fmt.Fprintf(out, "Tracks:    %d\n", len(scene.Tracks()))

	for i := 0; i < scene.PossessableCount(); i++ {
		b := scene.Possessable(i)
		fmt.Fprintf(out, "\n%s (%s) %s\n", b.Name, b.Class, b.ID)
		for _, track := range scene.ControlRigTracks(b.ID) {
			for _, sec := range track.Sections {
				renderSection(cmd, sec, controlRig)
			}
		}
	}
	return nil
}

func renderSection(cmd *cobra.Command, sec *moviescene.RigSection, controlRig *rig.ControlRig) {
	out := cmd.OutOrStdout()
	rigName := "-"
	if sec.Rig != nil {
		rigName = sec.Rig.Name()
	}
	start, end := sec.Range()
	fmt.Fprintf(out, "Section [%d, %d) rig %s, %s keys\n", start, end, rigName, formatCount(sec.KeyCount()))

	checkControls := rigName == controlRig.Name()
	var rows [][]string
	for _, p := range sec.Parameters() {
		first, last := "-", "-"
		if len(p.Keys) > 0 {
			first = strconv.Itoa(p.Keys[0].Frame)
			last = strconv.Itoa(p.Keys[len(p.Keys)-1].Frame)
		}
		control := "?"
		if checkControls {
			control = "no"
			if controlRig.HasControl(p.Name) {
				control = "yes"
			}
		}
		rows = append(rows, []string{p.Name, formatCount(len(p.Keys)), first, last, control})
	}
	renderTable(out,
		[]string{"Parameter", "Keys", "First", "Last", "Control"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft})
}

func formatVector(v geom.Vector3) string {
	parts := []string{
		strconv.FormatFloat(v.X, 'f', 2, 64),
		strconv.FormatFloat(v.Y, 'f', 2, 64),
		strconv.FormatFloat(v.Z, 'f', 2, 64),
	}
	return strings.Join(parts, ", ")
}

// inspectFrame prints location and rotation (degrees, ZYX) of every parameter keyed at frame.
func inspectFrame(cmd *cobra.Command, seq *moviescene.Sequence, frame int) {
	out := cmd.OutOrStdout()
	if seq.Scene == nil {
		return
	}
	var rows [][]string
	for _, t := range seq.Scene.Tracks() {
		track, ok := t.(*moviescene.RigTrack)
		if !ok {
			continue
		}
		for _, sec := range track.Sections {
			for _, p := range sec.Parameters() {
				tr, ok := p.KeyAt(frame)
				if !ok {
					continue
				}
				rot := geom.NewEulerFromQuaternion(&tr.Rotation, geom.RotationOrderZYX).Degrees()
				rows = append(rows, []string{p.Name, formatVector(tr.Location), formatVector(rot)})
			}
		}
	}
	fmt.Fprintf(out, "\nFrame %d\n", frame)
	renderTable(out, []string{"Parameter", "Location", "Rotation"}, rows, nil)
}
