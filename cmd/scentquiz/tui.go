package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/scentquiz/client"
	"github.com/a-h/scentquiz/quiz"
	"github.com/a-h/scentquiz/quiz/termview"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type TUICommand struct {
	EngineURL    string `help:"The URL of the recommendation engine." env:"ENGINE_URL" default:"http://localhost:8000"`
	EngineAPIKey string `help:"The API key for the recommendation engine." env:"ENGINE_API_KEY" default:""`
	OptionsFile  string `help:"A YAML file of suggestions and gender options." env:"OPTIONS_FILE" default:""`
}

func (c TUICommand) Run(ctx context.Context) (err error) {
	options, err := quiz.LoadOptions(c.OptionsFile)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}
	rsc := client.New(c.EngineURL, c.EngineAPIKey)

	session := new(quiz.Session)
	defer session.Close()

	p := tea.NewProgram(newQuizModel(ctx, rsc, session, options), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(termview.Purple).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(termview.Comment)
	genderStyle = lipgloss.NewStyle().Foreground(termview.Background).Background(termview.Pink).Padding(0, 1)
	chipStyle   = lipgloss.NewStyle().Foreground(termview.Cyan)
	helpStyle   = lipgloss.NewStyle().Foreground(termview.Comment).Faint(true)
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxChips      = 9
)

// searchResultMsg carries the outcome of the search identified by token.
type searchResultMsg struct {
	token quiz.Token
	view  quiz.View
	err   error
}

func searchCmd(ctx context.Context, r quiz.Recommender, token quiz.Token, q quiz.Query) tea.Cmd {
	return func() tea.Msg {
		v, err := quiz.Search(ctx, r, q)
		return searchResultMsg{token: token, view: v, err: err}
	}
}

type quizModel struct {
	ctx         context.Context
	recommender quiz.Recommender
	session     *quiz.Session
	options     quiz.Options

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	genderIndex int
	view        quiz.View
	err         error
	width       int
	height      int
}

func newQuizModel(ctx context.Context, r quiz.Recommender, session *quiz.Session, options quiz.Options) quizModel {
	ti := textinput.New()
	ti.Placeholder = "Describe the fragrance you are looking for..."
	ti.Prompt = "┃ "
	ti.CharLimit = 280
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(termview.Pink)

	m := quizModel{
		ctx:         ctx,
		recommender: r,
		session:     session,
		options:     options,
		input:       ti,
		spinner:     sp,
		view:        quiz.Idle(),
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.viewport = viewport.New(defaultWidth, m.viewportHeight())
	return m
}

func (m quizModel) gender() string {
	if len(m.options.Genders) == 0 {
		return quiz.GenderAll
	}
	return m.options.Genders[m.genderIndex%len(m.options.Genders)]
}

func (m quizModel) chips() int {
	return min(len(m.options.Suggestions), maxChips)
}

func (m quizModel) viewportHeight() int {
	// Title, input, gender, chips, status and help lines with spacing.
	return max(m.height-(m.chips()+9), 3)
}

func (m quizModel) Init() tea.Cmd {
	return textinput.Blink
}

// search starts a search for the input. Blank input is ignored.
func (m quizModel) search(input string) (quizModel, tea.Cmd) {
	q, ok := quiz.NewQuery(input, m.gender())
	if !ok {
		return m, nil
	}
	token, ctx := m.session.Begin(m.ctx)
	m.view = quiz.Loading(q)
	m.err = nil
	m.viewport.SetContent("")
	return m, tea.Batch(m.spinner.Tick, searchCmd(ctx, m.recommender, token, q))
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg:
		if !m.session.Accept(msg.token) {
			return m, nil
		}
		m.view = msg.view
		m.err = msg.err
		m.viewport.SetContent(termview.Render(m.view, m.width))
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.view.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.viewport.Width = msg.Width
		m.viewport.Height = m.viewportHeight()
		m.viewport.SetContent(termview.Render(m.view, m.width))
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m.search(m.input.Value())
		case "tab":
			if len(m.options.Genders) > 0 {
				m.genderIndex = (m.genderIndex + 1) % len(m.options.Genders)
			}
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if n, ok := strings.CutPrefix(key, "alt+"); ok {
			if i, err := strconv.Atoi(n); err == nil && i >= 1 && i <= m.chips() {
				if text, ok := m.options.Suggestion(i - 1); ok {
					m.input.SetValue(text)
					m.input.CursorEnd()
					return m.search(text)
				}
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m quizModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Find your signature scent"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Gender "))
	sb.WriteString(genderStyle.Render(m.gender()))
	sb.WriteString("\n\n")
	for i := range m.chips() {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("alt+%d ", i+1)))
		sb.WriteString(chipStyle.Render(m.options.Suggestions[i]))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if m.view.Loading {
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Finding your matches...")
	} else if m.err != nil {
		sb.WriteString(helpStyle.Render(m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("enter search • tab gender • alt+n suggestion • pgup/pgdown scroll • esc quit"))
	return sb.String()
}
