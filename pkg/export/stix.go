package export

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

type stixBundle struct {
	Type        string       `json:"type"`
	ID          string       `json:"id"`
	SpecVersion string       `json:"spec_version"`
	Objects     []stixObject `json:"objects"`
}

// stixObject covers both the identity and vulnerability object shapes.
type stixObject struct {
	Type          string `json:"type"`
	ID            string `json:"id"`
	Created       string `json:"created"`
	Modified      string `json:"modified"`
	Name          string `json:"name"`
	IdentityClass string `json:"identity_class,omitempty"`

	Description    string   `json:"description,omitempty"`
	Labels         []string `json:"labels,omitempty"`
	XSeverity      string   `json:"x_severity,omitempty"`
	XCVSSScore     float64  `json:"x_cvss_score,omitempty"`
	XAffectedHosts []string `json:"x_affected_assets,omitempty"`
}

// WriteSTIX emits a STIX 2.1 bundle: the reporting organization's
// identity object first, then one vulnerability object per finding.
func WriteSTIX(w io.Writer, findings []finding.Finding, meta Metadata) error {
	now := time.Now().UTC().Format(time.RFC3339)

	bundle := stixBundle{
		Type:        "bundle",
		ID:          "bundle--" + uuid.NewString(),
		SpecVersion: defaults.STIXSpecVersion,
		Objects: []stixObject{{
			Type:          "identity",
			ID:            "identity--" + uuid.NewString(),
			Created:       now,
			Modified:      now,
			Name:          meta.Organization,
			IdentityClass: "organization",
		}},
	}

	for i := range findings {
		f := &findings[i]
		label := strings.ToLower(f.Category)
		if label == "" {
			label = "vulnerability"
		}
		severity := strings.ToLower(string(f.Severity))
		if severity == "" {
			severity = "medium"
		}
		host := f.Host
		if host == "" {
			host = "unknown"
		}
		bundle.Objects = append(bundle.Objects, stixObject{
			Type:           "vulnerability",
			ID:             "vulnerability--" + uuid.NewString(),
			Created:        now,
			Modified:       now,
			Name:           f.Title,
			Description:    f.Description,
			Labels:         []string{label},
			XSeverity:      severity,
			XCVSSScore:     f.CVSSScore,
			XAffectedHosts: []string{host},
		})
	}

	enc := jsonutil.NewStreamEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bundle)
}
