package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
)

// Syncer keeps a local clone of a community rules repository current,
// the way masterlist bundles are distributed.
type Syncer struct {
	repoURL string
	dir     string
	log     zerolog.Logger
}

// NewSyncer creates a Syncer that mirrors repoURL into dir.
func NewSyncer(repoURL, dir string, log zerolog.Logger) *Syncer {
	return &Syncer{repoURL: repoURL, dir: dir, log: log}
}

// Sync clones the repository on first use and pulls on subsequent calls.
// Returns the short commit hash the local rules checkout ends up at.
func (s *Syncer) Sync(ctx context.Context) (string, error) {
	repo, err := git.PlainOpen(s.dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		s.log.Info().Str("repo", s.repoURL).Str("dir", s.dir).Msg("cloning rules repository")
		repo, err = git.PlainCloneContext(ctx, s.dir, false, &git.CloneOptions{
			URL:   s.repoURL,
			Depth: 1,
		})
		if err != nil {
			return "", fmt.Errorf("cloning rules repo: %w", err)
		}
		return headHash(repo)
	}
	if err != nil {
		return "", fmt.Errorf("opening rules repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("opening rules worktree: %w", err)
	}
	if err := wt.PullContext(ctx, &git.PullOptions{}); err != nil &&
		!errors.Is(err, git.NoErrAlreadyUpToDate) {
		return "", fmt.Errorf("updating rules repo: %w", err)
	}

	s.log.Debug().Str("dir", s.dir).Msg("rules repository up to date")
	return headHash(repo)
}

func headHash(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving rules head: %w", err)
	}
	return head.Hash().String()[:12], nil
}
