// Package termview draws quiz views for terminals.
package termview

import (
	"strings"

	"github.com/a-h/scentquiz/quiz"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Dracula color scheme.
var (
	Background  = lipgloss.Color("#282a36")
	CurrentLine = lipgloss.Color("#44475a")
	Foreground  = lipgloss.Color("#f8f8f2")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Green       = lipgloss.Color("#50fa7b")
	Pink        = lipgloss.Color("#ff79c6")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Purple).Padding(0, 1).MarginBottom(1)
	brandStyle = lipgloss.NewStyle().Foreground(Comment)
	nameStyle  = lipgloss.NewStyle().Foreground(Foreground).Bold(true)
	matchStyle = lipgloss.NewStyle().Foreground(Green).Bold(true)
	linkStyle  = lipgloss.NewStyle().Foreground(Cyan).Underline(true)

	errorStyle     = lipgloss.NewStyle().Foreground(Red).Bold(true)
	noMatchesStyle = lipgloss.NewStyle().Foreground(Comment).Italic(true)
)

var tagStyles = map[quiz.TagKind]lipgloss.Style{
	quiz.TagKindNote:        lipgloss.NewStyle().Foreground(Pink),
	quiz.TagKindMore:        lipgloss.NewStyle().Foreground(Comment),
	quiz.TagKindUnavailable: lipgloss.NewStyle().Foreground(Comment).Faint(true),
}

const minWidth = 20

// Render draws the results region of the view, which is empty while it is
// hidden.
func Render(v quiz.View, width int) string {
	if v.ResultsHidden {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	switch v.MessageKind {
	case quiz.MessageKindError:
		return errorStyle.Render(wordwrap.String(v.Message, width))
	case quiz.MessageKindNoMatches:
		return noMatchesStyle.Render(wordwrap.String(v.Message, width))
	}
	cards := make([]string, len(v.Cards))
	for i, c := range v.Cards {
		cards[i] = Card(c, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Card draws a single card no wider than width.
func Card(c quiz.Card, width int) string {
	content := width - cardStyle.GetHorizontalFrameSize()
	if content < 1 {
		content = 1
	}
	var sb strings.Builder
	sb.WriteString(brandStyle.Render(strings.ToUpper(c.Brand)))
	sb.WriteString("\n")
	sb.WriteString(nameStyle.Render(c.Name))
	sb.WriteString("  ")
	sb.WriteString(matchStyle.Render(c.MatchLabel()))
	sb.WriteString("\n")
	sb.WriteString(Tags(c.Tags, content))
	if c.URL != "" {
		sb.WriteString("\n")
		sb.WriteString(linkStyle.Render(c.URL))
	}
	return cardStyle.Width(content + cardStyle.GetHorizontalPadding()).Render(sb.String())
}

// Tags lays the tags out in rows no wider than width.
func Tags(tags []quiz.Tag, width int) string {
	var lines []string
	var line []string
	var lineWidth int
	for _, tag := range tags {
		text := "#" + tag.Text
		if tag.Kind != quiz.TagKindNote {
			text = tag.Text
		}
		w := lipgloss.Width(text)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineWidth = nil, 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		line = append(line, tagStyles[tag.Kind].Render(text))
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}
