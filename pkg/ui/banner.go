package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/defaults"
)

// Global UI state.
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent suppresses banner and progress output.
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent reports whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor reports whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
   _____      __              _____           ___    ____
  / ____/_  _/ /_  ___  _____/ ___/___  _____/   |  /  _/
 / /   / / / / __ \/ _ \/ ___/\__ \/ _ \/ ___/ /| |  / /
/ /___/ /_/ / /_/ /  __/ /   ___/ /  __/ /__/ ___ |_/ /
\____/\__, /_.___/\___/_/   /____/\___/\___/_/  |_/___/
     /____/            AutoReport
`

// PrintBanner prints the application banner to stderr.
func PrintBanner() {
	if IsSilent() {
		return
	}
	for _, line := range strings.Split(bannerArt, "\n") {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "\n\t\tv%s\n\n", VersionStyle.Render(defaults.Version))
}
