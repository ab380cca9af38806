package corpus

import (
	"fmt"
	"regexp"
	"strings"
)

// Map location codes look like "B01-UL001-IDA0431": building, level segment,
// area segment. The level digit sits at index 4 of the level segment and the
// concourse letter at index 2 of the area segment.
var locationCodePattern = regexp.MustCompile(`B01-UL\d{3}-ID([A-Z])\d{4}`)

var concourseNames = map[string]string{
	"A": "Concourse A",
	"B": "Concourse B",
	"C": "Concourse C",
	"D": "Concourse D",
	"E": "Concourse E",
	"L": "Landside",
	"U": "Unknown Area",
}

// DecodeLocationCode converts a structured map location code into a
// human-readable "<area>, Level <n>" label. Codes that do not match the
// expected shape are passed through unchanged; this never fails.
func DecodeLocationCode(code string) string {
	parts := strings.Split(code, "-")
	if len(parts) != 3 {
		return code
	}

	levelSegment := parts[1] // e.g. "UL001"
	areaSegment := parts[2]  // e.g. "IDA0431"
	if len(levelSegment) < 5 || len(areaSegment) < 3 {
		return code
	}

	level := levelSegment[4]
	areaLetter := strings.ToUpper(string(areaSegment[2]))

	concourse, ok := concourseNames[areaLetter]
	if !ok {
		concourse = fmt.Sprintf("Area %s", areaLetter)
	}

	return fmt.Sprintf("%s, Level %c", concourse, level)
}

// ReplaceLocationCodes rewrites every embedded location code inside free text
// with its decoded label.
func ReplaceLocationCodes(text string) string {
	return locationCodePattern.ReplaceAllStringFunc(text, DecodeLocationCode)
}

// InferConcourse maps a gate code to its concourse by first letter.
// Gates outside A-E resolve to "Unknown".
func InferConcourse(gate string) string {
	if gate == "" {
		return "Unknown"
	}
	letter := strings.ToUpper(string(gate[0]))
	if letter >= "A" && letter <= "E" {
		return "Concourse " + letter
	}
	return "Unknown"
}

// ConcourseLetter extracts the trailing letter from a "Concourse X" label,
// or "" when the label is not a concourse.
func ConcourseLetter(concourse string) string {
	if !strings.HasPrefix(concourse, "Concourse ") {
		return ""
	}
	return strings.TrimPrefix(concourse, "Concourse ")
}
