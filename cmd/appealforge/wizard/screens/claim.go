package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

// ClaimScreen collects the denied claim's details (step 3).
type ClaimScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewClaimScreen creates the claim form bound to the session's
// ClaimInfo slice.
func NewClaimScreen(claim *appeal.ClaimInfo) *ClaimScreen {
	s := &ClaimScreen{
		helpPanel: components.NewHelpPanel(),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("claim_number").
				Title("Claim Number").
				Value(&claim.ClaimNumber).
				Validate(required("claim number")),

			huh.NewInput().
				Key("date_of_service").
				Title("Date of Service").
				Description("Format: YYYY-MM-DD").
				Value(&claim.DateOfService).
				Validate(requiredWith("date of service", appeal.ValidateDate)),

			huh.NewInput().
				Key("billed_amount").
				Title("Billed Amount").
				Value(&claim.BilledAmount).
				Validate(required("billed amount")),

			huh.NewInput().
				Key("cpt_codes").
				Title("CPT Codes").
				Description("Comma-separated procedure codes").
				Value(&claim.CPTCodes).
				Validate(required("CPT codes")),

			huh.NewInput().
				Key("denial_date").
				Title("Denial Date").
				Description("Format: YYYY-MM-DD").
				Value(&claim.DenialDate).
				Validate(requiredWith("denial date", appeal.ValidateDate)),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *ClaimScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ClaimScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *ClaimScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("CLAIM INFORMATION")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		components.SubtitleStyle.Render("Details from the EOB or denial letter."),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.FooterStyle.Render("Tab: Next field | Enter: Next | Esc: Back"),
	)
}

// Done returns true if the form was completed
func (s *ClaimScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *ClaimScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *ClaimScreen) Cancelled() bool { return s.cancelled }
