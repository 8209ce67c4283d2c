// Package cleanup prunes the per-recording folder structure after a clip
// folder has been deleted.
//
// Steam lays recordings out as clip_<id>_<date>_<time>/video/fg_..., so
// when delete-after removes the fg_ folder the surrounding container is
// dead weight once nothing else lives in it. The decision logic is
// separated from the destructive call so it can be tested on its own.
package cleanup

import (
	"log/slog"
	"os"
	"path/filepath"

	"steamclip/internal/clips"
	"steamclip/internal/fileutil"
	"steamclip/internal/logging"
)

// containerDirName is the fixed directory Steam nests clip folders under.
const containerDirName = "video"

// Decision reports which gate stopped the cascade, or that it may proceed.
type Decision int

const (
	// NotContainer means the clip's parent is not the video container.
	NotContainer Decision = iota
	// HasSiblings means other directories remain next to the removed clip,
	// or the parent could not be listed to prove otherwise.
	HasSiblings
	// NotClipGrandparent means the directory above the container does not
	// follow the recording folder grammar.
	NotClipGrandparent
	// Eligible means the whole recording container may be removed.
	Eligible
)

func (d Decision) String() string {
	switch d {
	case NotContainer:
		return "not-container"
	case HasSiblings:
		return "has-siblings"
	case NotClipGrandparent:
		return "not-clip-grandparent"
	case Eligible:
		return "eligible"
	default:
		return "unknown"
	}
}

// Outcome couples a decision with the directory it licenses removing.
type Outcome struct {
	Decision Decision
	// Grandparent is only set when Decision is Eligible.
	Grandparent string
}

// Decide evaluates the cascade gates for a clip folder that has just been
// removed. It never deletes anything.
//
// The gates, in order: the clip's parent must be the video container, the
// parent must hold no other directories, and the grandparent must follow
// the recording folder grammar. An unlistable parent fails the sibling
// gate; emptiness that cannot be proven is not emptiness.
func Decide(clipDir string) Outcome {
	parent := filepath.Dir(clipDir)
	if filepath.Base(parent) != containerDirName {
		return Outcome{Decision: NotContainer}
	}

	hasDirs, err := fileutil.HasSubdirectories(parent)
	if err != nil || hasDirs {
		return Outcome{Decision: HasSiblings}
	}

	grandparent := filepath.Dir(parent)
	if !clips.IsContainerName(filepath.Base(grandparent)) {
		return Outcome{Decision: NotClipGrandparent}
	}

	return Outcome{Decision: Eligible, Grandparent: grandparent}
}

// Cascade runs Decide and removes the recording container when eligible.
// The returned outcome tells the caller what happened; a non-nil error
// means an eligible container could not be fully removed.
func Cascade(clipDir string, logger *slog.Logger) (Outcome, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	outcome := Decide(clipDir)
	if outcome.Decision != Eligible {
		logger.Debug("leaving recording container in place",
			logging.String(logging.FieldClipDir, clipDir),
			logging.String("reason", outcome.Decision.String()))
		return outcome, nil
	}

	if err := os.RemoveAll(outcome.Grandparent); err != nil {
		return outcome, err
	}
	logger.Info("removed empty recording container",
		logging.String("container", outcome.Grandparent))
	return outcome, nil
}
