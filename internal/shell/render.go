package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menukit/pkg/menutypes"
)

const bannerWidth = 40

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Faint(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	aliasStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// RenderMenu produces the numbered option listing: a title banner followed
// by one "N. name (aliases) - help" row per option in registration order.
func RenderMenu(title string, options []*menutypes.Option) string {
	var b strings.Builder
	banner := bannerStyle.Render(strings.Repeat("=", bannerWidth))

	b.WriteString("\n" + banner + "\n")
	b.WriteString(titleStyle.Render("  "+title) + "\n")
	b.WriteString(banner + "\n")
	for i, opt := range options {
		b.WriteString(fmt.Sprintf("  %s %s", numberStyle.Render(fmt.Sprintf("%d.", i+1)), opt.Name))
		if len(opt.Aliases) > 0 {
			b.WriteString(aliasStyle.Render(fmt.Sprintf(" (%s)", strings.Join(opt.Aliases, ", "))))
		}
		if opt.Help != "" {
			b.WriteString(helpStyle.Render(" - " + opt.Help))
		}
		b.WriteString("\n")
	}
	b.WriteString(banner + "\n\n")
	return b.String()
}

// renderNotFound reports an unmatched token, with near-miss suggestions
// when any exist.
func renderNotFound(token string, suggestions []string) string {
	msg := errorStyle.Render(fmt.Sprintf("Invalid choice %q. Try again.", token))
	if len(suggestions) > 0 {
		msg += "\n" + helpStyle.Render("Did you mean: "+strings.Join(suggestions, ", ")+"?")
	}
	return msg + "\n"
}

// renderAmbiguous reports a prefix that reaches several options.
func renderAmbiguous(candidates []string) string {
	return warnStyle.Render("Ambiguous choice, matches: "+strings.Join(candidates, ", ")) + "\n"
}

// renderError reports a recoverable dispatch failure.
func renderError(err error) string {
	return errorStyle.Render("Error: "+err.Error()) + "\n"
}
