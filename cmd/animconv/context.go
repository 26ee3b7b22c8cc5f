package main

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/binzume/animconv/config"
	"github.com/binzume/animconv/logger"
	"github.com/binzume/animconv/moviescene"
	"github.com/binzume/animconv/rig"
)

const configDefaultName = config.DefaultPath

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	once   sync.Once
	config *config.Config
	log    *zap.Logger
	err    error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensure loads the configuration and creates the logger once.
func (c *commandContext) ensure() (*config.Config, *zap.Logger, error) {
	c.once.Do(func() {
		path := strings.TrimSpace(*c.configFlag)
		allowMissing := path == ""
		if allowMissing {
			path = configDefaultName
		}
		cfg, err := config.Load(path, allowMissing)
		if err != nil {
			c.err = err
			return
		}
		if lvl := strings.TrimSpace(*c.logLevelFlag); lvl != "" {
			cfg.Logging.Level = lvl
		}

		var fileCfg logger.FileConfig
		if cfg.Logging.File != "" {
			fileCfg = logger.DefaultFileConfig(cfg.Logging.File)
		}
		log, err := logger.New(cfg.Logging.Level, fileCfg, true)
		if err != nil {
			c.err = err
			return
		}
		c.config, c.log = cfg, log
	})
	return c.config, c.log, c.err
}

func (c *commandContext) close() {
	if c.log != nil {
		_ = c.log.Sync()
	}
}

// controlRig resolves the rig and actor to bind. rigPath overrides the configuration.
func (c *commandContext) controlRig(cfg *config.Config, rigPath string) (*rig.ControlRig, moviescene.Actor, error) {
	if rigPath == "" {
		rigPath = cfg.Rig.Path
	}
	if rigPath == "" {
		return rig.Mannequin(), moviescene.NewActor(cfg.Actor.Label, cfg.Actor.Class), nil
	}
	r, actor, err := rig.LoadGLTF(rigPath)
	if err != nil {
		return nil, nil, err
	}
	c.log.Debug("loaded rig", zap.String("path", rigPath), zap.Int("controls", len(r.Controls)))
	return r, actor, nil
}
