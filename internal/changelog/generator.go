package changelog

import (
	"context"
	"errors"
	"fmt"
)

// DefaultMaxTags is the number of tags inspected per run, giving
// DefaultMaxTags-1 release intervals.
const DefaultMaxTags = 21

// ErrNotEnoughTags is returned by Generate when fewer than two tags exist.
var ErrNotEnoughTags = errors.New("not enough tags to generate changelog")

// Source reads tag history and commit log lines from a repository.
type Source interface {
	// Tags returns tag names ordered by creation time, newest first.
	Tags(ctx context.Context) ([]string, error)
	// Commits returns "subject|author|shorthash" lines for the commits
	// reachable from to but not from from, in log order.
	Commits(ctx context.Context, from, to string) ([]string, error)
}

// Generator builds a Changelog from a Source.
type Generator struct {
	Source Source
	// MaxTags limits how many of the newest tags are used (0 = DefaultMaxTags).
	MaxTags int
	// Logf receives debug messages. Nil disables logging.
	Logf func(format string, args ...any)
	// OnRelease is called before each interval is fetched.
	OnRelease func(tag string, index, total int)
}

// NewGenerator creates a Generator with default limits.
func NewGenerator(src Source) *Generator {
	return &Generator{Source: src, MaxTags: DefaultMaxTags}
}

// Generate lists tags and builds one Release per adjacent tag pair.
// A failure to list tags is treated as an empty tag list unless ctx
// is done, in which case the context error is returned.
func (g *Generator) Generate(ctx context.Context) (*Changelog, error) {
	tags, err := g.Source.Tags(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		g.logf("[changelog] listing tags failed, treating as empty: %v", err)
		tags = nil
	}

	tags = limitTags(tags, g.maxTags())
	g.logf("[changelog] using %d tags", len(tags))

	if len(tags) < 2 {
		return nil, ErrNotEnoughTags
	}

	total := len(tags) - 1
	log := &Changelog{Releases: make([]Release, 0, total)}

	for i := 0; i < total; i++ {
		current, previous := tags[i], tags[i+1]
		if g.OnRelease != nil {
			g.OnRelease(current, i, total)
		}

		release, err := g.buildRelease(ctx, previous, current)
		if err != nil {
			return nil, err
		}
		log.Releases = append(log.Releases, release)
	}

	return log, nil
}

func (g *Generator) buildRelease(ctx context.Context, previous, current string) (Release, error) {
	lines, err := g.Source.Commits(ctx, previous, current)
	if err != nil {
		return Release{}, fmt.Errorf("fetching commits %s..%s: %w", previous, current, err)
	}

	commits := ParseLines(lines)
	g.logf("[changelog] %s..%s: %d lines, %d commits", previous, current, len(lines), len(commits))

	return Release{
		Tag:      current,
		Previous: previous,
		Groups:   GroupByComponent(commits),
	}, nil
}

func (g *Generator) maxTags() int {
	if g.MaxTags <= 0 {
		return DefaultMaxTags
	}
	return g.MaxTags
}

func (g *Generator) logf(format string, args ...any) {
	if g.Logf != nil {
		g.Logf(format, args...)
	}
}

// limitTags drops empty names and keeps at most n tags.
func limitTags(tags []string, n int) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
