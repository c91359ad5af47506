package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

// ContactScreen collects the submitter's contact details (step 7).
// Completing it triggers letter generation, so a previous generation
// failure is surfaced here until the next attempt.
type ContactScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	errText   string
	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewContactScreen creates the contact form bound to the session's
// UserDetails slice. errText carries the last generation failure, if
// any.
func NewContactScreen(user *appeal.UserDetails, errText string) *ContactScreen {
	s := &ContactScreen{
		helpPanel: components.NewHelpPanel(),
		errText:   errText,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("attention_to").
				Title("Attention To").
				Description("Appeals department or contact at the payer").
				Value(&user.AttentionTo).
				Validate(required("attention to")),

			huh.NewInput().
				Key("user_name").
				Title("Your Name").
				Value(&user.UserName).
				Validate(required("your name")),

			huh.NewInput().
				Key("user_designation").
				Title("Designation").
				Description("e.g. Billing Manager, Office Administrator").
				Value(&user.UserDesignation).
				Validate(required("designation")),

			huh.NewInput().
				Key("user_email").
				Title("Email").
				Value(&user.UserEmail).
				Validate(requiredWith("email", appeal.ValidateEmail)),

			huh.NewInput().
				Key("user_phone").
				Title("Phone").
				Value(&user.UserPhone).
				Validate(requiredWith("phone", appeal.ValidatePhone)),

			huh.NewInput().
				Key("user_fax").
				Title("Fax").
				Value(&user.UserFax).
				Validate(requiredWith("fax", appeal.ValidatePhone)),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *ContactScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ContactScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *ContactScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("CONTACT DETAILS")

	sections := []string{
		title,
		components.SubtitleStyle.Render("Who signs and who receives follow-up."),
	}
	if s.errText != "" {
		sections = append(sections,
			components.ErrorStyle.Render("Generation failed: "+s.errText+" (press Enter to retry)"))
	}
	sections = append(sections,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.FooterStyle.Render("Enter: Generate Appeal | Esc: Back"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Done returns true if the form was completed
func (s *ContactScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *ContactScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *ContactScreen) Cancelled() bool { return s.cancelled }
