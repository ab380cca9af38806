package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airport_data.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadRecordsArray(t *testing.T) {
	path := writeDataFile(t, `[
		{"mcn_ntype": "Dine", "mcn_category": ["Coffee"], "mcn_map_location": ["B01-UL001-IDA0100"],
		 "mcn_content": [{"mcn_title": "Café Crema", "mcn_body": "<p>Espresso.</p>", "mcn_language": "en"}]},
		{"mcn_ntype": "Shop", "mcn_content": []}
	]`)

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Content[0].Title != "Café Crema" {
		t.Errorf("first title = %q", records[0].Content[0].Title)
	}
}

func TestLoadRecordsSingleObject(t *testing.T) {
	path := writeDataFile(t, `{"mcn_ntype": "Relax", "mcn_content": [{"mcn_title": "Quiet Room"}]}`)

	records, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].NType != "Relax" {
		t.Errorf("got %+v, want one Relax record", records)
	}
}

func TestLoadRecordsErrors(t *testing.T) {
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should error")
	}

	path := writeDataFile(t, "not json at all")
	if _, err := LoadRecords(path); err == nil {
		t.Error("malformed json should error")
	}
}
