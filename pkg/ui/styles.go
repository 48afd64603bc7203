package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Severity colors match the HTML report badges.
var (
	Primary   = lipgloss.Color("#2C4A7C")
	Secondary = lipgloss.Color("#00D4AA")

	Critical = lipgloss.Color("#DC3545")
	High     = lipgloss.Color("#FD7E14")
	Medium   = lipgloss.Color("#FFC107")
	Low      = lipgloss.Color("#28A745")
	Info     = lipgloss.Color("#17A2B8")

	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Errored = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(15)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Errored).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// SeverityStyle returns the badge style for a severity level.
func SeverityStyle(severity string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch severity {
	case "Critical", "critical":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(Critical)
	case "High", "high":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(High)
	case "Medium", "medium":
		return base.Foreground(lipgloss.Color("#000000")).Background(Medium)
	case "Low", "low":
		return base.Foreground(lipgloss.Color("#000000")).Background(Low)
	case "Info", "info":
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(Info)
	default:
		return base.Foreground(Muted)
	}
}
