package corpus

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadRecords reads the airport data file. The file usually holds a JSON
// array, but a single top-level object is accepted too.
func LoadRecords(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}

	var single Record
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", path, err)
	}
	return []Record{single}, nil
}
