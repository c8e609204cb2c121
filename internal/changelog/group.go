package changelog

import "sort"

// GroupByComponent buckets commits by component. Groups are sorted by
// component name; commits keep their input order within a group.
func GroupByComponent(commits []Commit) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, c := range commits {
		i, ok := index[c.Component]
		if !ok {
			i = len(groups)
			index[c.Component] = i
			groups = append(groups, Group{Component: c.Component})
		}
		groups[i].Commits = append(groups[i].Commits, c)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Component < groups[j].Component
	})

	return groups
}
