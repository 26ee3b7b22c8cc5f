package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/binzume/animconv/converter"
	"github.com/binzume/animconv/mmd"
)

func newVMDCommand(ctx *commandContext) *cobra.Command {
	var output string
	var keepNames bool
	var scale float64

	cmd := &cobra.Command{
		Use:   "vmd <motion.vmd>",
		Short: "Convert an MMD motion into animation JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := ctx.ensure()
			if err != nil {
				return err
			}
			input := args[0]
			if output == "" {
				output = replaceExt(input, ".json")
			}

			anim, err := mmd.LoadVMD(input)
			if err != nil {
				return err
			}
			log.Debug("loaded motion", zap.String("model", anim.ModelName), zap.Int("bone_samples", len(anim.Bone)))

			opt := converter.DefaultVMDToJSONOption()
			if keepNames {
				opt.BoneMap = nil
			}
			if scale > 0 {
				opt.Scale = scale
			}
			obj, err := converter.NewVMDToJSONConverter(opt).Convert(anim)
			if err != nil {
				return err
			}
			data, err := obj.MarshalJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames\n", output, anim.FrameCount())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <input>.json)")
	cmd.Flags().BoolVar(&keepNames, "keep-names", false, "Keep MMD bone names instead of mapping to the mannequin")
	cmd.Flags().Float64Var(&scale, "scale", 0, "Centimeters per MMD unit (default 8)")
	return cmd
}
