package finding

import (
	"testing"
)

func TestSeverityIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want bool
	}{
		{Critical, true},
		{High, true},
		{Medium, true},
		{Low, true},
		{Info, true},
		{"Unknown", false},
		{"", false},
		{"CRITICAL", false}, // case-sensitive
		{"Critical", false}, // must be lowercase
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			t.Parallel()
			if got := tt.s.IsValid(); got != tt.want {
				t.Errorf("Severity(%q).IsValid() = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestSeverityScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want int
	}{
		{Critical, 4},
		{High, 3},
		{Medium, 2},
		{Low, 1},
		{Info, 0},
		{"Unknown", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			t.Parallel()
			if got := tt.s.Score(); got != tt.want {
				t.Errorf("Severity(%q).Score() = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Severity
		wantOK bool
	}{
		{"Critical", Critical, true},
		{"HIGH", High, true},
		{"  medium ", Medium, true},
		{"low", Low, true},
		{"Info", Info, true},
		{"Information", "", false},
		{"unknown", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := Normalize(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSeverityCVSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want float64
	}{
		{Critical, 9.5},
		{High, 7.5},
		{Medium, 5.0},
		{Low, 2.5},
		{Info, 0.0},
		{"bogus", 0.0},
	}
	for _, tt := range tests {
		if got := tt.s.CVSS(); got != tt.want {
			t.Errorf("Severity(%q).CVSS() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestSeverityToSARIF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want string
	}{
		{Critical, "error"},
		{High, "error"},
		{Medium, "warning"},
		{Low, "note"},
		{Info, "note"},
	}
	for _, tt := range tests {
		if got := tt.s.ToSARIF(); got != tt.want {
			t.Errorf("Severity(%q).ToSARIF() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSeverityTitle(t *testing.T) {
	t.Parallel()

	if got := Critical.Title(); got != "Critical" {
		t.Errorf("Title() = %q, want Critical", got)
	}
	if got := Severity("").Title(); got != "" {
		t.Errorf("Title() on empty = %q, want empty", got)
	}
}
