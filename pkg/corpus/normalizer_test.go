package corpus

import (
	"strings"
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text untouched",
			raw:  "A quiet coffee spot",
			want: "A quiet coffee spot",
		},
		{
			name: "tags removed",
			raw:  "<p>Fresh <b>sushi</b> daily</p>",
			want: "Fresh sushi daily",
		},
		{
			name: "attributes removed with the tag",
			raw:  `<div class="desc">Open 24/7</div>`,
			want: "Open 24/7",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.raw); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBuildChunks(t *testing.T) {
	records := []Record{
		{
			NType:        "Dine",
			Categories:   []string{"Restaurants", "Asian"},
			MapLocations: []string{"B01-UL001-IDA0431"},
			Content: []ContentBlock{
				{Title: "Sora Sushi", Body: "<p>Hand-rolled sushi near gate A4.</p>", Language: "en"},
				{Title: "ソラ寿司", Body: "<p>A4ゲート近く。</p>", Language: "ja"},
			},
		},
		{
			NType:   "Relax",
			Content: []ContentBlock{{Title: "Quiet Room", Body: "Rest area."}},
		},
	}

	chunks := BuildChunks(records)

	if len(chunks) != 3 {
		t.Fatalf("BuildChunks() produced %d chunks, want 3 (one per content block)", len(chunks))
	}

	first := chunks[0]
	for _, want := range []string{
		"Type: Dine",
		"Title: Sora Sushi",
		"Categories: Restaurants, Asian",
		"Locations: Concourse A, Level 1",
		"Language: en",
		"Content: Hand-rolled sushi near gate A4.",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("first chunk missing %q:\n%s", want, first)
		}
	}

	if !strings.Contains(chunks[1], "Language: ja") {
		t.Errorf("second chunk should keep its language tag:\n%s", chunks[1])
	}

	// Missing fields use the labeled fallbacks
	third := chunks[2]
	for _, want := range []string{"Categories: No categories", "Locations: No location info", "Language: en"} {
		if !strings.Contains(third, want) {
			t.Errorf("third chunk missing fallback %q:\n%s", want, third)
		}
	}
}

func TestBuildChunksDecodesLocationCodesInBody(t *testing.T) {
	records := []Record{{
		NType:   "Shop",
		Content: []ContentBlock{{Title: "Duty Free", Body: "Main store at B01-UL001-IDC0100."}},
	}}

	chunks := BuildChunks(records)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if !strings.Contains(chunks[0], "Main store at Concourse C, Level 1.") {
		t.Errorf("body location code not decoded:\n%s", chunks[0])
	}
}
