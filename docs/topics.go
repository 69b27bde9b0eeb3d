// Package docs holds the user documentation, one markdown topic per file.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var files embed.FS

// Readme is the index topic, it lists all the others.
const Readme = "readme"

// All is the pseudo topic standing for every topic but the readme.
const All = "*"

// Topic returns the markdown of one topic.
func Topic(name string) (string, error) {
	b, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(b), nil
}

// Topics returns the markdown of several topics, in order, All being expanded.
func Topics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name != All {
			expanded = append(expanded, name)
			continue
		}
		all, err := Names()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	parts := make([]string, 0, len(expanded))
	for _, name := range expanded {
		md, err := Topic(name)
		if err != nil {
			return "", err
		}
		parts = append(parts, md)
	}
	return strings.Join(parts, "\n"), nil
}

// Names returns the names of all topics but the readme, sorted.
func Names() ([]string, error) {
	matches, err := fs.Glob(files, "*.md")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := strings.TrimSuffix(m, ".md"); name != Readme {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}
