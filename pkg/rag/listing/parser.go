package listing

import (
	"regexp"
	"strconv"
	"strings"
)

// The assistant renders recommendations as a numbered HTML list and this
// package parses them back. The positional shape is a contract with the
// prompt in pkg/rag/prompt: ordinal, bold name, description, then two styled
// lines for walk time and concourse. Entries that drift from the shape are
// simply invisible to selection; a failed parse is never an error.
//
//	1. <b>Name</b> — description<br><i>located within X walk</i><br><i>Concourse A, Level 1</i>
var entryPattern = regexp.MustCompile(
	`(?s)(\d+)\.\s*<b>(.*?)</b>\s*(?:—|–|-)\s*(.*?)\s*<br\s*/?>\s*<i[^>]*>\s*(located within[^<]*?)\s*</i>\s*<br\s*/?>\s*<i[^>]*>\s*([^<]*?)\s*</i>`,
)

// Entry is one parsed recommendation
type Entry struct {
	Ordinal     int
	Name        string
	Description string
	WalkTime    string
	Concourse   string
}

// Parse extracts every well-formed entry from an assistant message, in order
func Parse(text string) []Entry {
	matches := entryPattern.FindAllStringSubmatch(text, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		ordinal, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Ordinal:     ordinal,
			Name:        strings.TrimSpace(m[2]),
			Description: strings.TrimSpace(m[3]),
			WalkTime:    strings.TrimSpace(m[4]),
			Concourse:   strings.TrimSpace(m[5]),
		})
	}
	return entries
}

// FindByOrdinal returns the entry carrying the given list number, or nil
func FindByOrdinal(entries []Entry, ordinal int) *Entry {
	for i := range entries {
		if entries[i].Ordinal == ordinal {
			return &entries[i]
		}
	}
	return nil
}

// FindByName matches a place name against parsed entries, preferring exact
// case-insensitive equality over containment in either direction
func FindByName(entries []Entry, name string) *Entry {
	for i := range entries {
		if strings.EqualFold(entries[i].Name, name) {
			return &entries[i]
		}
	}
	lowered := strings.ToLower(name)
	for i := range entries {
		entryName := strings.ToLower(entries[i].Name)
		if strings.Contains(entryName, lowered) || strings.Contains(lowered, entryName) {
			return &entries[i]
		}
	}
	return nil
}
