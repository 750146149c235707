package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle   = lipgloss.NewStyle().Width(15)
)

func PrintHeader(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(msg))
}

func PrintSuccess(w io.Writer, label, detail string) {
	printLine(w, successStyle, "✔", label, detail)
}

func PrintError(w io.Writer, label, detail string) {
	printLine(w, errorStyle, "✘", label, detail)
}

func PrintWarning(w io.Writer, label, detail string) {
	printLine(w, warningStyle, "!", label, detail)
}

func printLine(w io.Writer, style lipgloss.Style, mark, label, detail string) {
	fmt.Fprintf(w, "  %s %s %s\n", style.Render(mark), labelStyle.Render(label), style.Render(detail))
}
