package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

// PatientScreen collects the patient's identifying details (step 1).
type PatientScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewPatientScreen creates the patient details form bound to the
// session's PatientInfo slice.
func NewPatientScreen(patient *appeal.PatientInfo) *PatientScreen {
	s := &PatientScreen{
		helpPanel: components.NewHelpPanel(),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("patient_name").
				Title("Patient Name").
				Value(&patient.PatientName).
				Validate(required("patient name")),

			huh.NewInput().
				Key("date_of_birth").
				Title("Date of Birth").
				Description("Format: YYYY-MM-DD").
				Value(&patient.DateOfBirth).
				Validate(requiredWith("date of birth", appeal.ValidateDate)),

			huh.NewInput().
				Key("member_id").
				Title("Member ID").
				Value(&patient.MemberID).
				Validate(required("member ID")),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *PatientScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PatientScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
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
func (s *PatientScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("PATIENT INFORMATION")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		components.SubtitleStyle.Render("Who was the denied claim filed for?"),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.FooterStyle.Render("Tab: Next field | Enter: Next | Esc: Quit"),
	)
}

// Done returns true if the form was completed
func (s *PatientScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *PatientScreen) Cancelled() bool { return s.cancelled }
