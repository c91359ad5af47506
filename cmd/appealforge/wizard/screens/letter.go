package screens

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
)

const letterFileName = "appeal-letter.txt"

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("34")).
	Bold(true)

// LetterScreen shows the generated appeal letter (step 8) in a
// scrollable viewport with copy, save and save-draft actions.
type LetterScreen struct {
	letter    string
	saveDraft func() error

	vp        viewport.Model
	ready     bool
	status    string
	startNew  bool
	cancelled bool
	width     int
	height    int
}

// NewLetterScreen creates the letter screen. saveDraft persists the
// form fields for a later session; it may be nil.
func NewLetterScreen(letter string, saveDraft func() error) *LetterScreen {
	return &LetterScreen{
		letter:    letter,
		saveDraft: saveDraft,
	}
}

// Init implements tea.Model
func (s *LetterScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *LetterScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.resize()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			s.cancelled = true
			return s, tea.Quit
		case "n":
			s.startNew = true
			return s, nil
		case "c":
			if err := clipboard.WriteAll(s.letter); err != nil {
				s.status = "Copy failed: " + err.Error()
			} else {
				s.status = "Copied to clipboard!"
			}
			return s, nil
		case "s":
			if err := os.WriteFile(letterFileName, []byte(s.letter), 0o644); err != nil {
				s.status = "Save failed: " + err.Error()
			} else {
				s.status = "Saved to " + letterFileName
			}
			return s, nil
		case "d":
			if s.saveDraft == nil {
				return s, nil
			}
			if err := s.saveDraft(); err != nil {
				s.status = "Draft save failed: " + err.Error()
			} else {
				s.status = "Draft saved"
			}
			return s, nil
		}
	}

	if s.ready {
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *LetterScreen) resize() {
	// Title, status and footer rows are carved off the terminal height.
	h := s.height - 6
	if h < 5 {
		h = 5
	}
	w := s.width - 2
	if w < 20 {
		w = 20
	}

	if !s.ready {
		s.vp = viewport.New(w, h)
		s.vp.SetContent(s.letter)
		s.ready = true
		return
	}
	s.vp.Width = w
	s.vp.Height = h
}

// View implements tea.Model
func (s *LetterScreen) View() string {
	if s.cancelled {
		return "Done.\n"
	}

	title := components.TitleStyle.Render("GENERATED APPEAL LETTER")

	body := s.letter
	if s.ready {
		body = s.vp.View()
	}

	sections := []string{title, body, ""}
	if s.status != "" {
		sections = append(sections, statusStyle.Render(s.status))
	}
	sections = append(sections,
		components.FooterStyle.Render("↑/↓: Scroll | c: Copy | s: Save | d: Save draft | n: New appeal | q: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// StartNew returns true if the user asked to begin a new appeal
func (s *LetterScreen) StartNew() bool { return s.startNew }

// Cancelled returns true if the user quit
func (s *LetterScreen) Cancelled() bool { return s.cancelled }
