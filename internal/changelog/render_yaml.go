package changelog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlChangelog struct {
	Releases []yamlRelease `yaml:"releases"`
}

type yamlRelease struct {
	Tag        string          `yaml:"tag"`
	Previous   string          `yaml:"previous"`
	Components []yamlComponent `yaml:"components"`
}

type yamlComponent struct {
	Name    string       `yaml:"name"`
	Commits []yamlCommit `yaml:"commits"`
}

type yamlCommit struct {
	Type        string `yaml:"type,omitempty"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
	PR          string `yaml:"pr,omitempty"`
	PRURL       string `yaml:"pr_url,omitempty"`
	Author      string `yaml:"author"`
	Hash        string `yaml:"hash"`
}

// RenderYAML writes the changelog as a YAML document with the same
// release/component/commit nesting as the Markdown output.
func RenderYAML(c *Changelog, w io.Writer, opts RenderOptions) error {
	doc := toYAML(c, opts)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding changelog YAML: %w", err)
	}
	return enc.Close()
}

func toYAML(c *Changelog, opts RenderOptions) yamlChangelog {
	doc := yamlChangelog{Releases: make([]yamlRelease, 0, len(c.Releases))}

	for _, r := range c.Releases {
		yr := yamlRelease{
			Tag:        r.Tag,
			Previous:   r.Previous,
			Components: make([]yamlComponent, 0, len(r.Groups)),
		}
		for _, g := range r.Groups {
			yc := yamlComponent{Name: g.Component}
			for _, cm := range g.Commits {
				entry := yamlCommit{
					Type:        cm.Type,
					Emoji:       cm.Emoji,
					Description: cm.Description,
					PR:          cm.PR,
					Author:      cm.Author,
					Hash:        cm.Hash,
				}
				if cm.HasPR() {
					entry.PRURL = opts.PRURL(cm.PR)
				}
				yc.Commits = append(yc.Commits, entry)
			}
			yr.Components = append(yr.Components, yc)
		}
		doc.Releases = append(doc.Releases, yr)
	}

	return doc
}
