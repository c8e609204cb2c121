package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ant-design/changelog-gen/internal/changelog"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo reads tags and commits in-process with go-git.
type Repo struct {
	repo *git.Repository
}

// OpenRepo opens the repository containing path (empty = working directory).
func OpenRepo(path string) (*Repo, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}
	return NewRepo(repo), nil
}

// NewRepo wraps an already opened repository.
func NewRepo(repo *git.Repository) *Repo {
	return &Repo{repo: repo}
}

type datedTag struct {
	name string
	when time.Time
}

// Tags returns all tags newest first by creation date: the tagger date for
// annotated tags, the committer date of the target for lightweight tags.
// Tags created at the same instant are ordered by name.
func (r *Repo) Tags(ctx context.Context) ([]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var tags []datedTag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		when, err := r.creatorDate(ref.Hash())
		if err != nil {
			logDebug("[git] skipping tag %s: %v", ref.Name().Short(), err)
			return nil
		}
		tags = append(tags, datedTag{name: ref.Name().Short(), when: when})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	sort.Slice(tags, func(i, j int) bool {
		if !tags[i].when.Equal(tags[j].when) {
			return tags[i].when.After(tags[j].when)
		}
		return tags[i].name < tags[j].name
	})

	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.name
	}
	logDebug("[git] Tags: found %d tags", len(names))
	return names, nil
}

func (r *Repo) creatorDate(h plumbing.Hash) (time.Time, error) {
	tag, err := r.repo.TagObject(h)
	switch {
	case err == nil:
		return tag.Tagger.When, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		commit, err := r.repo.CommitObject(h)
		if err != nil {
			return time.Time{}, fmt.Errorf("resolving commit %s: %w", h, err)
		}
		return commit.Committer.When, nil
	default:
		return time.Time{}, fmt.Errorf("reading tag object %s: %w", h, err)
	}
}

// Commits returns log lines for commits reachable from to but not from
// from, newest committer time first.
func (r *Repo) Commits(ctx context.Context, from, to string) ([]string, error) {
	fromHash, err := r.resolve(from)
	if err != nil {
		return nil, err
	}
	toHash, err := r.resolve(to)
	if err != nil {
		return nil, err
	}

	excluded, err := r.reachable(ctx, fromHash)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: toHash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", to, err)
	}

	var lines []string
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := excluded[c.Hash]; ok {
			return nil
		}
		lines = append(lines, formatLogLine(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s..%s: %w", from, to, err)
	}

	logDebug("[git] Commits %s..%s: %d lines", from, to, len(lines))
	return lines, nil
}

func (r *Repo) resolve(rev string) (plumbing.Hash, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving %s: %w", rev, err)
	}
	return *h, nil
}

// reachable collects every commit reachable from h.
func (r *Repo) reachable(ctx context.Context, h plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := r.repo.Log(&git.LogOptions{From: h})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", h, err)
	}

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", h, err)
	}
	return seen, nil
}

// formatLogLine mirrors `git log --pretty=format:%s|%an|%h`.
func formatLogLine(c *object.Commit) string {
	return strings.Join([]string{
		subject(c.Message),
		c.Author.Name,
		shortHash(c.Hash.String()),
	}, changelog.LogFieldSeparator)
}

// subject returns the first paragraph of a commit message joined into
// one line, the way git renders %s. Trailing whitespace is dropped from
// each line; leading whitespace is kept.
func subject(msg string) string {
	var parts []string
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimRight(line, " \t\v\f\r")
		if line == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}
