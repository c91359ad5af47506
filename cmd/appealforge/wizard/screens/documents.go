package screens

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/internal/appeal"
	"github.com/hshah/appealforge/internal/gemini"
)

var (
	fileRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	fileCursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("36")).
		Bold(true)
)

// docsMode selects between the attachment list and the file picker.
type docsMode int

const (
	docsList docsMode = iota
	docsPick
)

// DocumentsScreen is step 6: an optional, reorderable-by-removal list
// of supporting documents. Attachments are mutated only through the
// callbacks handed in by the wizard, which owns the session.
type DocumentsScreen struct {
	reason appeal.DenialReason
	list   func() []appeal.Attachment
	add    func(appeal.Attachment)
	remove func(int)

	mode    docsMode
	cursor  int
	picker  *huh.Form
	path    string
	loadErr string

	done      bool
	back      bool
	cancelled bool
	width     int
	height    int
}

// NewDocumentsScreen creates the documents screen. The guidance block
// is tailored to the denial category chosen on step 4.
func NewDocumentsScreen(reason appeal.DenialReason, list func() []appeal.Attachment, add func(appeal.Attachment), remove func(int)) *DocumentsScreen {
	return &DocumentsScreen{
		reason: reason,
		list:   list,
		add:    add,
		remove: remove,
	}
}

// Init implements tea.Model
func (s *DocumentsScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *DocumentsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = wsm.Width
		s.height = wsm.Height
	}

	if s.mode == docsPick {
		return s.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		case "enter":
			s.done = true
			return s, nil
		case "a":
			return s.startPicker()
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.list())-1 {
				s.cursor++
			}
		case "x", "d":
			if n := len(s.list()); n > 0 {
				s.remove(s.cursor)
				if s.cursor >= n-1 && s.cursor > 0 {
					s.cursor--
				}
			}
		}
	}

	return s, nil
}

// startPicker opens a fresh file-picker form.
func (s *DocumentsScreen) startPicker() (tea.Model, tea.Cmd) {
	s.mode = docsPick
	s.path = ""
	s.loadErr = ""

	s.picker = huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Key("file").
				Title("Choose a document").
				Description("PDF, PNG, JPG up to 10MB").
				AllowedTypes(gemini.AcceptedExtensions).
				Value(&s.path),
		),
	).WithShowHelp(false)

	return s, s.picker.Init()
}

// updatePicker drives the file-picker form and loads the chosen file.
func (s *DocumentsScreen) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.mode = docsList
			return s, nil
		}
	}

	form, cmd := s.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.picker = f
	}

	if s.picker.State == huh.StateCompleted {
		s.mode = docsList
		if s.path != "" {
			if err := s.loadFile(s.path); err != nil {
				s.loadErr = err.Error()
			}
		}
	}

	return s, cmd
}

// loadFile reads the picked file and appends it as an attachment.
func (s *DocumentsScreen) loadFile(path string) error {
	mimeType, err := gemini.MIMETypeForPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	s.add(appeal.Attachment{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	})
	s.cursor = len(s.list()) - 1
	return nil
}

// View implements tea.Model
func (s *DocumentsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	if s.mode == docsPick {
		return lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render("ADD DOCUMENT"),
			s.picker.View(),
			"",
			components.FooterStyle.Render("Enter: Select | Esc: Cancel"),
		)
	}

	title := components.TitleStyle.Render("SUPPORTING DOCUMENTS")

	var guidance strings.Builder
	fmt.Fprintf(&guidance, "Documentation guide for %q:\n", s.reason.Title)
	for _, g := range s.reason.Guidance {
		fmt.Fprintf(&guidance, "  • %s\n", g)
	}

	var files string
	attachments := s.list()
	if len(attachments) == 0 {
		files = components.SubtitleStyle.Render("No documents attached (optional).")
	} else {
		var sb strings.Builder
		for i, a := range attachments {
			row := fmt.Sprintf("%s  (%s)", a.Name, humanize.Bytes(uint64(len(a.Data))))
			if i == s.cursor {
				sb.WriteString(fileCursorStyle.Render("> " + row))
			} else {
				sb.WriteString(fileRowStyle.Render("  " + row))
			}
			sb.WriteString("\n")
		}
		files = sb.String()
	}

	sections := []string{
		title,
		components.GuidanceStyle.Render(guidance.String()),
		"",
		files,
	}
	if s.loadErr != "" {
		sections = append(sections, components.ErrorStyle.Render(s.loadErr))
	}
	sections = append(sections, "",
		components.FooterStyle.Render("a: Add file | x: Remove | ↑/↓: Select | Enter: Next | Esc: Back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Done returns true if the user continued to the next step
func (s *DocumentsScreen) Done() bool { return s.done }

// Back returns true if the user navigated backward
func (s *DocumentsScreen) Back() bool { return s.back }

// Cancelled returns true if the user cancelled
func (s *DocumentsScreen) Cancelled() bool { return s.cancelled }
