package defaults

import "strings"

// MITRE ATT&CK technique IDs referenced by the exporter mapping tables.
const (
	// TechniqueExploitPublicFacing is T1190 Exploit Public-Facing Application.
	TechniqueExploitPublicFacing = "T1190"

	// TechniqueNetworkServiceScan is T1046 Network Service Scanning.
	TechniqueNetworkServiceScan = "T1046"

	// TechniquePrivEscExploit is T1068 Exploitation for Privilege Escalation.
	TechniquePrivEscExploit = "T1068"
)

// MapMITRETechniques maps a finding's category and title onto ATT&CK
// technique IDs using fixed substring rules. The rule order and the default
// are a behavioral contract; do not reorder.
func MapMITRETechniques(category, title string) []string {
	category = strings.ToLower(category)
	title = strings.ToLower(title)

	var techniques []string
	add := func(id string) {
		for _, t := range techniques {
			if t == id {
				return
			}
		}
		techniques = append(techniques, id)
	}

	if strings.Contains(category, "web") || strings.Contains(category, "application") {
		add(TechniqueExploitPublicFacing)
	}
	if strings.Contains(category, "network") {
		add(TechniqueNetworkServiceScan)
	}
	if strings.Contains(category, "system") {
		add(TechniquePrivEscExploit)
	}
	if strings.Contains(title, "sql") || strings.Contains(title, "injection") {
		add(TechniqueExploitPublicFacing)
	}
	if strings.Contains(title, "xss") || strings.Contains(title, "cross-site") {
		add(TechniqueExploitPublicFacing)
	}

	if len(techniques) == 0 {
		return []string{TechniqueExploitPublicFacing}
	}
	return techniques
}

// MapNISTSubcategories maps a finding's category onto NIST CSF subcategory
// codes. Critical/High severity additionally triggers the response-function
// codes RS.RP-1 and RS.MI-1. Defaults to ID.AM-1 when no rule matches.
func MapNISTSubcategories(category, severity string) []string {
	category = strings.ToLower(category)
	severity = strings.ToLower(severity)

	var subcategories []string
	if strings.Contains(category, "web") || strings.Contains(category, "application") {
		subcategories = append(subcategories, "PR.AC-4", "PR.DS-5", "DE.CM-1")
	}
	if strings.Contains(category, "network") {
		subcategories = append(subcategories, "PR.AC-5", "PR.PT-3", "DE.CM-1")
	}
	if strings.Contains(category, "system") {
		subcategories = append(subcategories, "PR.AC-1", "PR.PT-1", "DE.CM-7")
	}

	if severity == "critical" || severity == "high" {
		subcategories = append(subcategories, "RS.RP-1", "RS.MI-1")
	}

	if len(subcategories) == 0 {
		return []string{"ID.AM-1"}
	}
	return subcategories
}
