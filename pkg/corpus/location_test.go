package corpus

import (
	"testing"
)

func TestDecodeLocationCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "concourse A level 1",
			code: "B01-UL001-IDA0431",
			want: "Concourse A, Level 1",
		},
		{
			name: "concourse C level 2",
			code: "B01-UL002-IDC0100",
			want: "Concourse C, Level 2",
		},
		{
			name: "landside",
			code: "B01-UL001-IDL0001",
			want: "Landside, Level 1",
		},
		{
			name: "unknown area letter U",
			code: "B01-UL003-IDU0002",
			want: "Unknown Area, Level 3",
		},
		{
			name: "letter outside the known map",
			code: "B01-UL001-IDZ0001",
			want: "Area Z, Level 1",
		},
		{
			name: "wrong segment count passes through",
			code: "B01-UL001",
			want: "B01-UL001",
		},
		{
			name: "short level segment passes through",
			code: "B01-UL-IDA0431",
			want: "B01-UL-IDA0431",
		},
		{
			name: "short area segment passes through",
			code: "B01-UL001-ID",
			want: "B01-UL001-ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeLocationCode(tt.code); got != tt.want {
				t.Errorf("DecodeLocationCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestReplaceLocationCodes(t *testing.T) {
	in := "Find us at B01-UL001-IDA0431 or B01-UL002-IDB0200 near the gates."
	want := "Find us at Concourse A, Level 1 or Concourse B, Level 2 near the gates."
	if got := ReplaceLocationCodes(in); got != want {
		t.Errorf("ReplaceLocationCodes() = %q, want %q", got, want)
	}
}

func TestInferConcourse(t *testing.T) {
	tests := []struct {
		gate string
		want string
	}{
		{"A12", "Concourse A"},
		{"b3", "Concourse B"},
		{"E1", "Concourse E"},
		{"F7", "Unknown"},
		{"12", "Unknown"},
		{"", "Unknown"},
	}

	for _, tt := range tests {
		if got := InferConcourse(tt.gate); got != tt.want {
			t.Errorf("InferConcourse(%q) = %q, want %q", tt.gate, got, tt.want)
		}
	}
}

func TestConcourseLetter(t *testing.T) {
	if got := ConcourseLetter("Concourse D"); got != "D" {
		t.Errorf("ConcourseLetter(Concourse D) = %q, want D", got)
	}
	if got := ConcourseLetter("Landside"); got != "" {
		t.Errorf("ConcourseLetter(Landside) = %q, want empty", got)
	}
}
