package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette shared by all commands. Cyan carries the primary
// accent; grids and file paths render in plain bright white so the
// tiles themselves stay readable.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

// Styles used across commands. StyleTitle and StyleDim are exported for
// the view command's bubbletea model.
var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim   = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning     = lipgloss.NewStyle().Foreground(colorYellow)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)
)

// statusLine prints an icon-prefixed message.
func statusLine(icon lipgloss.Style, glyph, format string, args ...any) {
	fmt.Println(icon.Render(glyph) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { statusLine(styleIconSuccess, "✓", format, args...) }

func printError(format string, args ...any) { statusLine(styleIconError, "✗", format, args...) }

func printInfo(format string, args ...any) { statusLine(styleIconInfo, "›", format, args...) }

func printWarning(format string, args ...any) {
	statusLine(styleWarning, "!", "%s", styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints an indented artifact path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printStats prints a one-line orbit summary: grid count, variant, and
// whether the orbit came out of the cache.
func printStats(gridCount int, variant string, cached bool) {
	parts := []string{StyleDim.Render(fmt.Sprintf("%d grids", gridCount))}
	if variant != "" {
		parts = append(parts, StyleDim.Render(variant))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleComputed.Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
