package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	trackerDoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("36")).
		Bold(true)

	trackerActiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("36")).
		Bold(true).
		Padding(0, 1)

	trackerPendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	trackerSepStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
)

// stepLabels names the wizard steps for the header strip.
var stepLabels = []string{
	"Patient", "Provider", "Claim", "Denial", "Clarify", "Documents", "Contact", "Appeal",
}

// StepTracker renders the header strip showing progress through the
// eight steps: completed steps get a check, the active step is
// highlighted.
func StepTracker(current int) string {
	parts := make([]string, 0, len(stepLabels)*2)
	for i, label := range stepLabels {
		step := i + 1
		switch {
		case step < current:
			parts = append(parts, trackerDoneStyle.Render(fmt.Sprintf("✓ %s", label)))
		case step == current:
			parts = append(parts, trackerActiveStyle.Render(fmt.Sprintf("%d %s", step, label)))
		default:
			parts = append(parts, trackerPendingStyle.Render(fmt.Sprintf("%d %s", step, label)))
		}
		if i < len(stepLabels)-1 {
			parts = append(parts, trackerSepStyle.Render("─"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, " "))
}
