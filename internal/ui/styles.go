package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	// Colors
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Success   = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))
)

// Banner returns the shrink banner
func Banner() string {
	banner := `
 █▀▀ █  █ █▀▀█ ▀█▀ █▀▀▄ █ █
 ▀▀█ █▀▀█ █▄▄▀  █  █  █ █▀▄
 ▀▀▀ ▀  ▀ ▀ ▀▀ ▀▀▀ ▀  ▀ ▀ ▀`
	return TitleStyle.Render(banner)
}

// line renders a message prefixed with icon in the given style
func line(style lipgloss.Style, icon, format string, args ...interface{}) string {
	return style.Render(icon + " " + fmt.Sprintf(format, args...))
}

func PrintSuccess(format string, args ...interface{}) {
	fmt.Println(line(SuccessStyle, "✓", format, args...))
}

func PrintInfo(format string, args ...interface{}) {
	fmt.Println(line(InfoStyle, "•", format, args...))
}

func PrintError(format string, args ...interface{}) {
	fmt.Println(line(ErrorStyle, "✗", format, args...))
}

func PrintWarning(format string, args ...interface{}) {
	fmt.Println(line(WarningStyle, "⚠", format, args...))
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	fmt.Printf("  %s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// Savings formats a before/after size line: "1,234 -> 800 bytes (35.2% smaller)"
func Savings(original, minified int64, percent float64) string {
	return fmt.Sprintf("%s -> %s bytes (%.1f%% smaller)", humanize.Comma(original), humanize.Comma(minified), percent)
}

// PrintSavings prints the size change for one file
func PrintSavings(original, minified int64, percent float64) {
	fmt.Println(MutedStyle.Render("  " + Savings(original, minified, percent)))
}

// PrintTotal prints the totals for a run using human-readable sizes
func PrintTotal(files int, original, minified int64, percent float64) {
	PrintKeyValue("Files", "  "+humanize.Comma(int64(files)))
	PrintKeyValue("Before", " "+humanize.Bytes(uint64(original)))
	PrintKeyValue("After", "  "+humanize.Bytes(uint64(minified)))
	PrintKeyValue("Saved", "  "+fmt.Sprintf("%.1f%%", percent))
}

// Divider returns a divider line
func Divider() string {
	return MutedStyle.Render("─────────────────────────────────────────")
}

// PrintVersion prints the version
func PrintVersion(version string) {
	fmt.Println(ValueStyle.Render(" Version: " + version))
}

// PrintHeader prints the standard header
func PrintHeader(version string) {
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println(Banner())
	PrintVersion(version)
	fmt.Println()
	fmt.Println(Divider())
	fmt.Println()
}
