package main

import (
	"fmt"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/jsonutil"
)

// loadFindings reads the canonical findings JSON. It accepts both a
// bare finding array (from 'parse') and a full report document (from
// the JSON exporter), so artifacts round-trip between commands.
func loadFindings(path string) ([]finding.Finding, error) {
	raw, err := iohelper.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read findings: %w", err)
	}

	var list []finding.Finding
	if err := jsonutil.Unmarshal(raw, &list); err == nil {
		finding.ApplyDefaultsAll(list)
		return list, nil
	}

	var doc struct {
		Findings []finding.Finding `json:"findings"`
	}
	if err := jsonutil.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse findings %s: %w", path, err)
	}
	if doc.Findings == nil {
		return nil, fmt.Errorf("parse findings %s: no findings array", path)
	}
	finding.ApplyDefaultsAll(doc.Findings)
	return doc.Findings, nil
}

// saveFindings writes the bare findings array.
func saveFindings(findings []finding.Finding, path string) error {
	data, err := jsonutil.MarshalIndent(findings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}
	if err := iohelper.EnsureDir(path); err != nil {
		return err
	}
	return iohelper.WriteFileAtomic(path, append(data, '\n'))
}
