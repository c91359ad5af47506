package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

var (
	analysisStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("252")).
		MarginBottom(1)

	questionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))
)

// ClarifyScreen is step 5. It has three states: waiting for the
// clarification call, showing its failure, or presenting the analysis
// and questions with a free-text answer field. The wizard rebuilds this
// screen whenever the call resolves, so each instance renders exactly
// one of the three.
type ClarifyScreen struct {
	clar    *appeal.Clarification
	loading bool
	errText string

	spin      spinner.Model
	form      *huh.Form
	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewClarifyScreen creates the clarification screen from the session's
// current loading/error/clarification state.
func NewClarifyScreen(clar *appeal.Clarification, loading bool, errText string) *ClarifyScreen {
	s := &ClarifyScreen{
		clar:    clar,
		loading: loading,
		errText: errText,
	}

	if loading {
		s.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
		return s
	}

	if errText == "" {
		s.form = huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Key("clarification_answers").
					Title("Your Answers").
					Description("Answer the questions above; these answers carry the appeal").
					Value(&clar.Answers).
					Validate(required("answers")),
			),
		).WithShowHelp(false).WithShowErrors(true)
	}

	return s
}

// Init implements tea.Model
func (s *ClarifyScreen) Init() tea.Cmd {
	if s.loading {
		return s.spin.Tick
	}
	if s.form != nil {
		return s.form.Init()
	}
	return nil
}

// Update implements tea.Model
func (s *ClarifyScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Backward navigation is disabled while the request is in
			// flight: there is no cancellation, so leaving the step
			// would let a late result land on a different screen.
			if !s.loading {
				s.back = true
			}
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case spinner.TickMsg:
		if s.loading {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	}

	if s.form == nil {
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *ClarifyScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("CLARIFYING QUESTIONS")

	if s.loading {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			fmt.Sprintf("%s Analyzing the denial reason... This may take a moment.", s.spin.View()),
		)
	}

	if s.errText != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			components.ErrorStyle.Render("Could not analyze the denial: "+s.errText),
			"",
			components.FooterStyle.Render("Esc: Back (edit the denial reason and retry)"),
		)
	}

	var qs strings.Builder
	for i, q := range s.clar.Questions {
		fmt.Fprintf(&qs, "%d. %s\n", i+1, q)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		analysisStyle.Render(s.clar.Analysis),
		questionStyle.Render(qs.String()),
		s.form.View(),
		"",
		components.FooterStyle.Render("Enter: Next | Esc: Back"),
	)
}

// Done returns true if the answers were submitted
func (s *ClarifyScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *ClarifyScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *ClarifyScreen) Cancelled() bool { return s.cancelled }
