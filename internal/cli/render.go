package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// resultBox frames command results, matching the display boxes of the
// interactive console this tool grew out of.
var resultBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// renderResult joins the lines and, unless plain output was requested,
// wraps them in the result box.
func renderResult(plain bool, lines ...string) string {
	body := strings.Join(lines, "\n")
	if plain {
		return body
	}
	return resultBox.Render(body)
}
