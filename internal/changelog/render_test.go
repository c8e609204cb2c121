package changelog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown_EndToEnd(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		tags: []string{"v3", "v2", "v1"},
		commits: map[string][]string{
			"v2..v3": {"feat(core): x (#5)|alice|abc123"},
		},
	}

	log, err := NewGenerator(src).Generate(context.Background())
	require.NoError(t, err)

	out, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)

	expected := "## v3\n\n" +
		"core:\n" +
		"  - 🆕 x [#5](https://github.com/ant-design/agentic-ui/pull/5) [@alice]\n" +
		"\n" +
		"## v2\n\n"
	assert.Equal(t, expected, out)
}

func TestRenderMarkdownString(t *testing.T) {
	t.Parallel()

	log := &Changelog{
		Releases: []Release{
			{
				Tag:      "2.1.0",
				Previous: "2.0.0",
				Groups: GroupByComponent(ParseLines([]string{
					"fix(table): 修复bug (#9)|bob|1",
					"docs: readme|carol|2",
					"feat(table): sorting|dan|3",
				})),
			},
		},
	}

	tests := map[string]struct {
		opts        RenderOptions
		contains    []string
		notContains []string
	}{
		"default repository": {
			opts: RenderOptions{},
			contains: []string{
				"## 2.1.0\n\n",
				"Other:\n  - 📖 readme  [@carol]\n\n",
				"table:\n  - 🐞 修复 bug [#9](https://github.com/ant-design/agentic-ui/pull/9) [@bob]\n  - 🆕 sorting  [@dan]\n\n",
			},
			notContains: []string{"2.0.0"},
		},
		"custom repository with trailing slash": {
			opts: RenderOptions{RepoURL: "https://github.com/acme/widgets/"},
			contains: []string{
				"[#9](https://github.com/acme/widgets/pull/9)",
			},
			notContains: []string{"ant-design"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := RenderMarkdownString(log, tt.opts)
			require.NoError(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderMarkdown_ComponentOrder(t *testing.T) {
	t.Parallel()

	log := &Changelog{Releases: []Release{{
		Tag: "v2",
		Groups: GroupByComponent(ParseLines([]string{
			"feat(zeta): z|a|1",
			"feat(alpha): a|a|2",
			"feat(Beta): b|a|3",
		})),
	}}}

	out, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)

	beta := strings.Index(out, "Beta:")
	alpha := strings.Index(out, "alpha:")
	zeta := strings.Index(out, "zeta:")
	assert.True(t, beta < alpha && alpha < zeta, out)
}

func TestRenderMarkdown_Idempotent(t *testing.T) {
	t.Parallel()

	log := &Changelog{Releases: []Release{{
		Tag:    "v1.1.0",
		Groups: GroupByComponent(ParseLines([]string{"feat(a): b (#1)|c|d"})),
	}}}

	first, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	second, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderMarkdown_WriteError(t *testing.T) {
	t.Parallel()

	log := &Changelog{Releases: []Release{{Tag: "v1"}}}
	err := RenderMarkdown(log, failingWriter{}, RenderOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rendering release v1")
}

func TestRender_Formats(t *testing.T) {
	t.Parallel()

	log := &Changelog{Releases: []Release{{Tag: "v2", Previous: "v1"}}}

	var md strings.Builder
	require.NoError(t, Render(log, FormatMarkdown, &md, RenderOptions{}))
	assert.Equal(t, "## v2\n\n", md.String())

	var def strings.Builder
	require.NoError(t, Render(log, "", &def, RenderOptions{}))
	assert.Equal(t, md.String(), def.String())

	var y strings.Builder
	require.NoError(t, Render(log, FormatYAML, &y, RenderOptions{}))
	assert.Contains(t, y.String(), "tag: v2")

	err := Render(log, "html", &strings.Builder{}, RenderOptions{})
	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "html", unknown.Format)
	assert.Contains(t, err.Error(), "markdown, yaml")
}
