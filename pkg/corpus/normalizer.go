package corpus

import (
	"fmt"
	"regexp"
	"strings"
)

// ContentBlock is one language rendition of a venue's content
type ContentBlock struct {
	Title    string `json:"mcn_title"`
	Body     string `json:"mcn_body"` // raw HTML
	Language string `json:"mcn_language"`
	Logo     string `json:"mcn_content_logo,omitempty"`
}

// Record is one raw corpus row as loaded from the airport data file
type Record struct {
	NType        string         `json:"mcn_ntype"`
	Categories   []string       `json:"mcn_category"`
	MapLocations []string       `json:"mcn_map_location"`
	Content      []ContentBlock `json:"mcn_content"`
}

// Tag stripping only, no entity decoding. Matches what the upstream content
// pipeline expects.
var htmlTagPattern = regexp.MustCompile(`<.*?>`)

// StripHTML deletes every <...> sequence from raw markup
func StripHTML(raw string) string {
	if raw == "" {
		return ""
	}
	return htmlTagPattern.ReplaceAllString(raw, "")
}

// BuildChunks flattens records into embeddable text chunks, one per content
// block, in input order. Each chunk carries the record type, block title,
// categories, decoded locations, language and cleaned body on labeled lines.
func BuildChunks(records []Record) []string {
	var chunks []string
	for _, record := range records {
		decoded := make([]string, 0, len(record.MapLocations))
		for _, code := range record.MapLocations {
			decoded = append(decoded, DecodeLocationCode(code))
		}
		locations := strings.Join(decoded, ", ")
		if locations == "" {
			locations = "No location info"
		}
		categories := strings.Join(record.Categories, ", ")
		if categories == "" {
			categories = "No categories"
		}

		for _, block := range record.Content {
			title := strings.TrimSpace(block.Title)
			body := ReplaceLocationCodes(strings.TrimSpace(StripHTML(block.Body)))
			lang := block.Language
			if lang == "" {
				lang = "en"
			}

			chunks = append(chunks, fmt.Sprintf(
				"Type: %s\nTitle: %s\nCategories: %s\nLocations: %s\nLanguage: %s\nContent: %s",
				record.NType, title, categories, locations, lang, body,
			))
		}
	}
	return chunks
}
