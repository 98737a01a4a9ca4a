package csvsource

import (
	"strings"
	"testing"
)

func TestParseBasicFile(t *testing.T) {
	input := "id,date,title,category,description,astro_signature,weight\n" +
		"e1,2024-01-15,Solar eclipse,macro,total eclipse,\"sun:295.5,moon:295.1\",2.5\n" +
		",2024-02-01,Market crash,finance,,,1\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "e1" || rows[0].Title != "Solar eclipse" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[0].AstroSignature != "sun:295.5,moon:295.1" {
		t.Fatalf("quoted signature mangled: %q", rows[0].AstroSignature)
	}
	if rows[1].ID != "" || rows[1].Category != "finance" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestParseStripsBOMAndIgnoresHeaderCase(t *testing.T) {
	input := "\ufeffDate,TITLE,Weight\n2024-01-15,Solar eclipse,2\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-15" || rows[0].Title != "Solar eclipse" || rows[0].Weight != "2" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestParseToleratesShortRowsAndUnknownColumns(t *testing.T) {
	input := "date,title,planet_hours\n" +
		"2024-01-15,Solar eclipse,7\n" +
		"2024-02-01\n"

	rows, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Date != "2024-02-01" || rows[1].Title != "" {
		t.Fatalf("short row not padded: %+v", rows[1])
	}
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
