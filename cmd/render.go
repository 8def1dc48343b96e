package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avelar/wordsight/internal/insights"
	"github.com/avelar/wordsight/internal/recommend"
)

// Muted palette — this is a report surface, not a game screen.
var (
	strengthColor = lipgloss.Color("#22C55E") // Green
	weaknessColor = lipgloss.Color("#F43F5E") // Rose
	patternColor  = lipgloss.Color("#8B5CF6") // Purple
	neutralColor  = lipgloss.Color("#94A3B8") // Slate

	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(neutralColor)
	okStyle      = lipgloss.NewStyle().Foreground(strengthColor)
	tipStyle     = lipgloss.NewStyle().Foreground(neutralColor).Italic(true)
)

func insightStyle(typ insights.Type) lipgloss.Style {
	switch typ {
	case insights.TypeStrength:
		return lipgloss.NewStyle().Foreground(strengthColor)
	case insights.TypeWeakness:
		return lipgloss.NewStyle().Foreground(weaknessColor)
	case insights.TypePattern:
		return lipgloss.NewStyle().Foreground(patternColor)
	default:
		return dimStyle
	}
}

func renderInsights(list []insights.Insight) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Insights"))
	b.WriteString("\n")
	for _, ins := range list {
		marker := insightStyle(ins.Type).Render(fmt.Sprintf("[%s]", ins.Type))
		fmt.Fprintf(&b, "  %s %s (%.0f)\n", marker, ins.Description, ins.Score)
		for _, a := range ins.RecommendedActions {
			fmt.Fprintf(&b, "      %s\n", dimStyle.Render("→ "+a))
		}
		if ins.PersonalTip != "" {
			fmt.Fprintf(&b, "      %s\n", tipStyle.Render(ins.PersonalTip))
		}
	}
	return b.String()
}

func renderItems(items []recommend.Item) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Practice next"))
	b.WriteString("\n")
	for i, it := range items {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, it.Word,
			dimStyle.Render(fmt.Sprintf("(%s, %s)", it.Difficulty, it.Category)))
	}
	return b.String()
}
