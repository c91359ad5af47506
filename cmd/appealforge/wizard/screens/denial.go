package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

// DenialScreen collects the denial reason (step 4): a catalog category
// that drives the documentation guidance later, and the reason text
// copied verbatim from the payer letter. Completing this screen
// triggers the clarification request.
type DenialScreen struct {
	form      *huh.Form
	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewDenialScreen creates the denial-reason form bound to the session's
// denial fields.
func NewDenialScreen(reasonID, reasonText *string) *DenialScreen {
	s := &DenialScreen{}

	categoryOptions := make([]huh.Option[string], 0, len(appeal.DenialReasons))
	for _, r := range appeal.DenialReasons {
		categoryOptions = append(categoryOptions, huh.NewOption(r.Title, r.ID))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("denial_category").
				Title("Denial Category").
				Description("Closest match from the payer's letter").
				Options(categoryOptions...).
				Value(reasonID),

			huh.NewText().
				Key("denial_reason").
				Title("Denial Reason").
				Description("Copy the payer's stated reason verbatim").
				Value(reasonText).
				Validate(required("denial reason")),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *DenialScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *DenialScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
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
func (s *DenialScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("DENIAL REASON")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		components.SubtitleStyle.Render("The exact wording matters: follow-up questions are built from it."),
		s.form.View(),
		"",
		components.FooterStyle.Render("Enter: Analyze denial | Esc: Back"),
	)
}

// Done returns true if the form was completed
func (s *DenialScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *DenialScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *DenialScreen) Cancelled() bool { return s.cancelled }
