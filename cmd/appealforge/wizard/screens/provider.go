package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
)

// ProviderScreen collects the rendering provider's details (step 2).
type ProviderScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewProviderScreen creates the provider form bound to the session's
// ProviderInfo slice. NPI and Tax ID formats are validated inline; the
// state is a select over the 50 two-letter codes.
func NewProviderScreen(provider *appeal.ProviderInfo) *ProviderScreen {
	s := &ProviderScreen{
		helpPanel: components.NewHelpPanel(),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("provider_name").
				Title("Provider Name").
				Value(&provider.ProviderName).
				Validate(required("provider name")),

			huh.NewInput().
				Key("npi_number").
				Title("NPI Number").
				Description("10 digits").
				Value(&provider.NPINumber).
				Validate(requiredWith("NPI number", appeal.ValidateNPI)),

			huh.NewInput().
				Key("tax_id").
				Title("Tax ID").
				Description("Format: XX-XXXXXXX").
				Value(&provider.TaxID).
				Validate(requiredWith("tax ID", appeal.ValidateTaxID)),

			huh.NewSelect[string]().
				Key("provider_state").
				Title("Provider State").
				Options(huh.NewOptions(appeal.USStates...)...).
				Value(&provider.ProviderState),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *ProviderScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ProviderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *ProviderScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("PROVIDER INFORMATION")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		components.SubtitleStyle.Render("Details of the rendering provider."),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.FooterStyle.Render("Tab: Next field | Enter: Next | Esc: Back"),
	)
}

// Done returns true if the form was completed
func (s *ProviderScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *ProviderScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *ProviderScreen) Cancelled() bool { return s.cancelled }
