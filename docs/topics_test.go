package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is
	// listed in readme.md.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	listed := slices.Clone(topicsInReadme)
	slices.Sort(listed)
	if diff := cmp.Diff(all, listed); diff != "" {
		t.Errorf("topics listed in readme.md mismatch (-files +listed):\n%s", diff)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(\"nope\") = nil error, want an error")
	}
	if _, err := GetTopics("persons", "nope"); err == nil {
		t.Error("GetTopics() = nil error, want an error")
	}
}

func TestGetTopic_All(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(\"*\") unexpected error: %v", err)
	}
	for _, heading := range []string{"# Persons", "# Transactions", "# Markers", "# Data", "# Configuration"} {
		if !strings.Contains(all, heading) {
			t.Errorf("GetTopic(\"*\") does not contain %q", heading)
		}
	}
	if strings.Contains(all, "# Transact\n") {
		t.Errorf("GetTopic(\"*\") should not contain the readme")
	}
}

// TestExamples checks that every topic starts with a title, and that every
// bash example invokes transact.
func TestExamples(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	envAssignment := regexp.MustCompile(`^[A-Z_]+=\S*$`)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			first, ok := root.FirstChild().(*ast.Heading)
			if !ok || first.Level != 1 {
				t.Errorf("%s does not start with a title", file)
			}

			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !entering || !ok || string(fcb.Language(content)) != "bash" {
					return ast.WalkContinue, nil
				}
				for i := 0; i < fcb.Lines().Len(); i++ {
					seg := fcb.Lines().At(i)
					line := strings.TrimSpace(string(seg.Value(content)))
					words := strings.Fields(line)
					for len(words) > 0 && envAssignment.MatchString(words[0]) {
						words = words[1:]
					}
					if len(words) == 0 || words[0] != "transact" {
						t.Errorf("%s: example %q does not invoke transact", file, line)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
