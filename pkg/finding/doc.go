// Package finding provides the canonical security finding model.
//
// Every source parser normalizes into Finding, and every exporter and the
// report generator consume it. The package also owns the ordered Severity
// enum that drives sorting, risk bucketing, and the per-format severity
// mappings (SARIF levels, JUnit failure semantics, CVSS derivation).
package finding
