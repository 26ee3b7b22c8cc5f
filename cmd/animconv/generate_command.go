package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/binzume/animconv/converter"
	"github.com/binzume/animconv/moviescene"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var sequencePath string
	var rigPath string
	var actorLabel string

	cmd := &cobra.Command{
		Use:   "generate <animation.json|motion.vmd>",
		Short: "Rebuild a sequence asset from animation JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}
			input := args[0]
			if sequencePath == "" {
				sequencePath = defaultSequenceFile(input)
			}

			text, err := loadAnimationText(input)
			if err != nil {
				return err
			}
			controlRig, actor, err := ctx.controlRig(cfg, rigPath)
			if err != nil {
				return err
			}
			if actorLabel != "" {
				actor = moviescene.NewActor(actorLabel, actor.Class())
			}

			lock, err := moviescene.LockAsset(sequencePath)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			seq, err := moviescene.LoadAsset(sequencePath)
			if errors.Is(err, os.ErrNotExist) {
				name := cfg.Sequence.Name
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
				}
				seq = moviescene.NewSequence(name)
				seq.Scene.SetDisplayRate(cfg.Sequence.DisplayRate)
				log.Info("creating sequence", zap.String("path", sequencePath), zap.String("name", name))
			} else if err != nil {
				return err
			}

			conv := converter.NewJSONToSequenceConverter(&converter.JSONToSequenceOption{Logger: log})
			result, err := conv.Convert(text, seq, actor, controlRig)
			if err != nil {
				log.Error("generate failed", zap.String("kind", converter.ErrorKind(err)), zap.Error(err))
				return err
			}

			if seq.IsDirty() {
				if err := moviescene.SaveAsset(sequencePath, seq); err != nil {
					return err
				}
			}
			log.Info("saved sequence", zap.String("path", sequencePath))

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames, %d keys on %d parameters (%d frames skipped)\n",
				sequencePath, result.TotalFrames, result.KeysEmitted, result.Parameters, result.FramesSkipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&sequencePath, "sequence", "o", "", "Sequence asset to rebuild (default: <input>.sequence.yaml)")
	cmd.Flags().StringVar(&rigPath, "rig", "", "Skeleton (.gltf/.glb/.vrm) used as control rig")
	cmd.Flags().StringVar(&actorLabel, "actor", "", "Override the bound actor label")
	return cmd
}
