package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Filename", "L*", "Category", "RGB"})
	table.AlignRight(1)
	table.AddRow([]string{"dark.png", "24.3", "Dark", "#503a2e"})
	table.AddRow([]string{"light.png", "72.5", "Light", "#d2aa8c"})
	table.AddRow([]string{"shadow.png", "9.8", "Very Dark", "#2a1e18"})

	want := strings.Join([]string{
		"Filename      L*  Category   RGB    ",
		"----------  ----  ---------  -------",
		"dark.png    24.3  Dark       #503a2e",
		"light.png   72.5  Light      #d2aa8c",
		"shadow.png   9.8  Very Dark  #2a1e18",
	}, "\n") + "\n"

	if got := table.Render(); got != want {
		t.Errorf("Unexpected render:\n%s\nWant:\n%s", got, want)
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"Filename", "L*", "Category", "RGB"})
	table.AddRow([]string{"broken.jpg", "", "ERROR"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header, separator and 1 row, got %d lines", len(lines))
	}
	if got := strings.TrimRight(lines[2], " "); got != "broken.jpg      ERROR" {
		t.Errorf("Unexpected error row rendering: %q", got)
	}
}

func TestTableLinesAligned(t *testing.T) {
	table := NewTable([]string{"Filename", "L*", "Category", "RGB"})
	table.AlignRight(1)
	table.AddRow([]string{"portrait-close-up.png", "47.1", "Medium", "#8c5e46"})
	table.AddRow([]string{"b.png", "81.2", "Very Light", "#e8cab2"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("Line %d width %d differs from header width %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Expected empty render for headerless table, got %q", got)
	}
}
