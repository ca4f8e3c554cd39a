package diff

import (
	"strings"
	"testing"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	content := []byte("<div>\n  <p>hi</p>\n</div>\n")

	if result := GenerateUnifiedDiff(content, content, "a", "b"); result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestGenerateUnifiedDiff_WholeLineChanges(t *testing.T) {
	existing := []byte("line1\nline2\nline3\n")
	generated := []byte("line1\nline two\nline3\n")

	result := GenerateUnifiedDiff(existing, generated, "src/App.jsx (on disk)", "src/App.jsx (generated)")

	want := "--- src/App.jsx (on disk)\n" +
		"+++ src/App.jsx (generated)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" line1\n" +
		"-line2\n" +
		"+line two\n" +
		" line3\n"
	if result != want {
		t.Errorf("unexpected diff:\n%s\nwant:\n%s", result, want)
	}
}

func TestGenerateUnifiedDiff_IsStable(t *testing.T) {
	a := []byte("one\ntwo\n")
	b := []byte("one\nthree\n")

	if GenerateUnifiedDiff(a, b, "x", "y") != GenerateUnifiedDiff(a, b, "x", "y") {
		t.Error("Diff output should not vary between calls")
	}
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	var expectedLines []string
	var actualLines []string

	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(expectedLines, "\n")), []byte(strings.Join(actualLines, "\n")), "expected", "actual")

	if !strings.Contains(result, "truncated") {
		t.Error("Large diff should be truncated with truncation message")
	}

	if lineCount := strings.Count(result, "\n"); lineCount > 10001 {
		t.Errorf("Truncated diff should not exceed 10,000 lines, got %d", lineCount)
	}
}

func TestGenerateUnifiedDiff_NewFile(t *testing.T) {
	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "/dev/null", "styles.css")

	if !strings.Contains(result, "@@ -1,0 +1,1 @@") {
		t.Errorf("Diff should count no existing lines, got: %s", result)
	}

	if !strings.Contains(result, "+new content") {
		t.Error("Diff should show added content")
	}
}

func TestStats(t *testing.T) {
	result := GenerateUnifiedDiff([]byte("a\nb\nc\n"), []byte("a\nx\ny\n"), "old", "new")

	added, removed := Stats(result)
	if added != 2 || removed != 2 {
		t.Errorf("Stats() = %d, %d; want 2, 2", added, removed)
	}

	if added, removed := Stats(""); added != 0 || removed != 0 {
		t.Error("Stats of an empty diff should be zero")
	}
}
