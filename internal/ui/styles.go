// Package ui holds the lipgloss styles and print helpers shared by the
// CLI commands.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Successf prints a green line to stdout.
func Successf(format string, a ...any) {
	fmt.Println(SuccessStyle.Render(fmt.Sprintf(format, a...)))
}

// Warnf prints a yellow line to stdout.
func Warnf(format string, a ...any) {
	fmt.Println(WarnStyle.Render(fmt.Sprintf(format, a...)))
}

// Errorf prints a red line to stderr.
func Errorf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render(fmt.Sprintf(format, a...)))
}

// Accent renders s in the accent color for inline emphasis.
func Accent(s string) string {
	return AccentStyle.Render(s)
}
