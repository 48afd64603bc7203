// Package defaults provides canonical default values for the entire codebase.
// This is the single source of truth for tool identity, schema versions, and
// the fixed classification tables shared by the exporters.
package defaults

import "time"

// Version is the current cybersec-ai-autoreport version.
const Version = "2.0.0"

// Tool identity used in exported documents (SARIF driver, JUnit suites,
// report footers).
const (
	// ToolName is the machine-readable tool name.
	ToolName = "cybersec-ai-autoreport"

	// ToolNameDisplay is the human-readable tool name.
	ToolNameDisplay = "CyberSec-AI AutoReport"

	// ToolURI is the information URI for the tool.
	ToolURI = "https://github.com/gh0st-bit/cybersec-ai-autoreport"
)

// SchemaVersion is the version of the JSON/YAML report schema.
const SchemaVersion = "1.0"

// SARIFSchemaURI is the canonical SARIF 2.1.0 schema location.
const SARIFSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// STIXSpecVersion is the STIX bundle spec version emitted by the STIX exporter.
const STIXSpecVersion = "2.1"

// NISTFrameworkVersion is the NIST CSF version used by the NIST exporter.
const NISTFrameworkVersion = "1.1"

// External-collaborator timeouts. Enrichment and PDF rendering are the only
// blocking calls in the pipeline; both must be bounded (never hang the batch).
const (
	// EnrichTimeout bounds a single text-generation call.
	EnrichTimeout = 30 * time.Second

	// RenderTimeout bounds a single HTML-to-PDF conversion.
	RenderTimeout = 60 * time.Second
)

// AI provider defaults.
const (
	// OpenAIModel is the default chat-completion model.
	OpenAIModel = "gpt-3.5-turbo"

	// GeminiModel is the default Gemini model.
	GeminiModel = "gemini-1.5-flash"

	// OllamaModel is the default local model.
	OllamaModel = "llama3"

	// MaxTokens is the default completion token budget.
	MaxTokens = 1500

	// Temperature is the default sampling temperature.
	Temperature = 0.5

	// AIRequestsPerMinute caps outbound enrichment calls.
	AIRequestsPerMinute = 60
)

// ComplianceFrameworks is the fixed framework set tallied by the statistics
// component. Findings referencing frameworks outside this set are ignored by
// the tally (forward tolerance).
var ComplianceFrameworks = []string{
	"OWASP", "NIST", "PCI-DSS", "ISO-27001", "GDPR", "SOX", "HIPAA",
}
