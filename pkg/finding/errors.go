package finding

import "fmt"

// NewParseError builds the synthetic finding that parsers emit instead of
// raising when an input file cannot be processed at all. The parse
// contract is "always return a non-empty list"; this is the one-element
// degraded form of that list.
func NewParseError(source, tool string, err error) Finding {
	f := Finding{
		Title:       fmt.Sprintf("%s Parsing Error", tool),
		Description: fmt.Sprintf("Failed to parse %s file: %v", tool, err),
		Impact:      "Unable to analyze scan results",
		Evidence:    fmt.Sprintf("Parser error: %v", err),
		TechStack:   "Parser",
		Category:    "parsing_error",
		Source:      source,
	}
	f.ApplyDefaults()
	return f
}
