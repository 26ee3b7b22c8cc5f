package converter

import (
	"github.com/binzume/animconv/moviescene"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResetMovieScene removes all possessables, spawnables and tracks from scene.
// Folders are left as they are. A nil scene is only reported.
func ResetMovieScene(scene moviescene.MovieScene, log Logger) {
	if isNil(log) {
		log = zap.NewNop()
	}
	if isNil(scene) {
		log.Warn("reset movie scene: scene is nil")
		return
	}

	var possessables []uuid.UUID
	for i := 0; i < scene.PossessableCount(); i++ {
		possessables = append(possessables, scene.Possessable(i).ID)
	}
	for _, id := range possessables {
		scene.RemovePossessable(id)
	}

	var spawnables []uuid.UUID
	for i := 0; i < scene.SpawnableCount(); i++ {
		spawnables = append(spawnables, scene.Spawnable(i).ID)
	}
	for _, id := range spawnables {
		scene.RemoveSpawnable(id)
	}

	for _, t := range scene.Tracks() {
		if t != nil {
			scene.RemoveTrack(t)
		}
	}

	log.Info("reset movie scene",
		zap.Int("possessables", len(possessables)),
		zap.Int("spawnables", len(spawnables)))
}
