package finding

import "strings"

// Severity represents the severity level of a security finding.
// Values are lowercase strings; use Normalize to fold arbitrary scanner
// vocabulary onto the canonical set.
type Severity string

const (
	// Critical represents immediate system compromise (SQLi, RCE, auth bypass).
	Critical Severity = "critical"

	// High represents significant impact requiring prompt fix (XSS, CSRF).
	High Severity = "high"

	// Medium represents moderate impact (info leakage, weak configuration).
	Medium Severity = "medium"

	// Low represents limited impact (fingerprinting, verbose errors).
	Low Severity = "low"

	// Info represents informational findings with no direct security impact.
	Info Severity = "info"
)

// Ordered returns the five canonical severities from most to least severe.
// This is the system-wide sort order.
func Ordered() []Severity {
	return []Severity{Critical, High, Medium, Low, Info}
}

// IsValid reports whether s is a recognized severity level.
func (s Severity) IsValid() bool {
	switch s {
	case Critical, High, Medium, Low, Info:
		return true
	}
	return false
}

// Normalize folds a raw severity string onto the canonical enum.
// Matching is case-insensitive. Unrecognized values return ok=false;
// callers decide the default (parsers default to Medium).
func Normalize(raw string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s.IsValid() {
		return s, true
	}
	return "", false
}

// Score returns a numeric score for sorting and comparison.
// Critical=4, High=3, Medium=2, Low=1, Info=0. Unknown values score 0.
func (s Severity) Score() int {
	switch s {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 0
	}
}

// String returns the severity as a string.
func (s Severity) String() string {
	return string(s)
}

// Title returns the severity capitalized for human-facing output
// ("Critical", "High", ...).
func (s Severity) Title() string {
	if s == "" {
		return ""
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}

// CVSS returns the deterministic CVSS proxy score for the severity.
// Used when the source tool does not report a native score.
func (s Severity) CVSS() float64 {
	switch s {
	case Critical:
		return 9.5
	case High:
		return 7.5
	case Medium:
		return 5.0
	case Low:
		return 2.5
	default:
		return 0.0
	}
}

// ToSARIF maps severity to SARIF result level.
// Critical/High → error, Medium → warning, Low/Info → note.
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
func (s Severity) ToSARIF() string {
	switch s {
	case Critical, High:
		return "error"
	case Medium:
		return "warning"
	default:
		return "note"
	}
}

// IsFailure reports whether the severity counts as a JUnit test failure.
// Only Critical and High findings fail a CI gate.
func (s Severity) IsFailure() bool {
	return s == Critical || s == High
}
