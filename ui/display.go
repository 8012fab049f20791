package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ip-geo-lookup/models"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Color helper functions
func ColorTitle(text string) string     { return ColorCyan + ColorBold + text + ColorReset }
func ColorError(text string) string     { return ColorRed + ColorBold + text + ColorReset }
func ColorWarning(text string) string   { return ColorYellow + text + ColorReset }
func ColorInfo(text string) string      { return ColorWhite + text + ColorReset }
func ColorSection(text string) string   { return ColorBlue + ColorBold + text + ColorReset }
func ColorHighlight(text string) string { return ColorCyan + text + ColorReset }
func ColorDimText(text string) string   { return ColorDim + ColorWhite + text + ColorReset }

// PrintBanner writes the usage banner shown by -h
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, ColorTitle("    ╔══════════════════════════════════════════════════╗"))
	fmt.Fprint(w, ColorTitle("    ║  IP Geo Lookup                                   "))
	fmt.Fprintln(w, ColorTitle("║"))
	fmt.Fprint(w, ColorTitle("    ║  "))
	fmt.Fprint(w, ColorInfo("Validate an address and query the lookup service  "))
	fmt.Fprintln(w, ColorTitle("║"))
	fmt.Fprintln(w, ColorTitle("    ╚══════════════════════════════════════════════════╝"))
	fmt.Fprintln(w)
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := 60 - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	dashLine := strings.Repeat("─", remainingWidth)
	fmt.Fprintln(w, ColorSection("┌"+headerContent+dashLine+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, ColorSection("└"+strings.Repeat("─", 60)+"┘"))
}

// PrintStartupError reports a failure that prevented the form from starting.
// Config errors name the offending field.
func PrintStartupError(w io.Writer, err error) {
	PrintSectionHeader(w, "Startup failed")

	var cfgErr *models.ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "  %s %s\n", ColorError("Invalid setting:"), ColorHighlight(cfgErr.Field))
		fmt.Fprintf(w, "  %s\n", ColorWarning(cfgErr.Message))
	} else {
		fmt.Fprintf(w, "  %s\n", ColorError(err.Error()))
	}

	PrintSectionFooter(w)
}

// PrintSessionEnd tells the user where the session's log went
func PrintSessionEnd(w io.Writer, cfg *models.Config) {
	fmt.Fprintf(w, "%s %s\n", ColorDimText("Session log:"), ColorHighlight(cfg.LogFile))
	if cfg.MetricsAddr != "" {
		fmt.Fprintf(w, "%s %s\n", ColorDimText("Metrics were served on"), ColorHighlight(cfg.MetricsAddr))
	}
}
