package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"senkron/contexts/temporal-analysis/event-catalog-service/ports"
)

// FileSource reads raw catalog rows from a CSV file on each call, so a
// rewritten file is picked up without restarting.
type FileSource struct {
	Path string
}

func (f FileSource) ReadAll(ctx context.Context) ([]ports.RawEvent, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open events csv: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse decodes catalog rows from CSV. The header row is matched
// case-insensitively and columns may appear in any order; a UTF-8 BOM
// on the first header cell is tolerated. Rows shorter than the header
// are padded with empty cells rather than rejected.
func Parse(r io.Reader) ([]ports.RawEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []ports.RawEvent{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rows := []ports.RawEvent{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, ports.RawEvent{
			ID:             cell(record, "id"),
			Date:           cell(record, "date"),
			Title:          cell(record, "title"),
			Category:       cell(record, "category"),
			Description:    cell(record, "description"),
			AstroSignature: cell(record, "astro_signature"),
			Weight:         cell(record, "weight"),
		})
	}
	return rows, nil
}
