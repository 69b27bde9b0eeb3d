package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics returns the topics listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}
	return topics
}

func TestReadmeListsAllTopics(t *testing.T) {
	listed := readmeTopics(t)
	for _, topic := range listed {
		if _, err := Topic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	all, err := Names()
	if err != nil {
		t.Fatalf("Names() unexpected error: %v", err)
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	if len(all) != len(files)-1 {
		t.Errorf("Names() = %v, want one topic per file but the readme in %v", all, files)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopics(t *testing.T) {
	got, err := Topics("dates", "curve")
	if err != nil {
		t.Fatalf("Topics() unexpected error: %v", err)
	}
	if strings.Index(got, "# Dates") > strings.Index(got, "# Displaying the curve") {
		t.Errorf("Topics(dates, curve) did not keep the order of topics")
	}

	if _, err := Topics("dates", "unknown"); err == nil {
		t.Errorf("Topics(unknown) expected an error")
	}

	all, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) unexpected error: %v", err)
	}
	if strings.Contains(all, "# ycurve") {
		t.Errorf("Topics(*) includes the readme")
	}
}

// TestTitles checks that every topic has a single top level title.
func TestTitles(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		titles := 0
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
				titles++
			}
			return ast.WalkContinue, nil
		})
		if titles != 1 {
			t.Errorf("%s has %d titles want 1", file, titles)
		}
	}
}
