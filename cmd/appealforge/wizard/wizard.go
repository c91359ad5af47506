package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/components"
	"github.com/hshah/appealforge/cmd/appealforge/wizard/screens"
	"github.com/hshah/appealforge/internal/appeal"
	"github.com/hshah/appealforge/internal/gemini"
	"github.com/hshah/appealforge/internal/logging"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Generator is the model backend the wizard talks to. The production
// implementation is gemini.Client; tests substitute a fake.
type Generator interface {
	Clarify(ctx context.Context, prompt string) (appeal.Clarification, error)
	GenerateLetter(ctx context.Context, prompt string, files []gemini.EncodedFile) (string, error)
}

// clarificationMsg carries the result of the clarification request.
type clarificationMsg struct {
	clar appeal.Clarification
	err  error
}

// letterMsg carries the result of the letter generation request.
type letterMsg struct {
	letter string
	err    error
}

// Wizard is the main orchestrator for the appeal-letter interface.
type Wizard struct {
	session *Session
	gen     Generator
	log     *zap.Logger

	// Screen instances
	patientScreen   *screens.PatientScreen
	providerScreen  *screens.ProviderScreen
	claimScreen     *screens.ClaimScreen
	denialScreen    *screens.DenialScreen
	clarifyScreen   *screens.ClarifyScreen
	documentsScreen *screens.DocumentsScreen
	contactScreen   *screens.ContactScreen
	letterScreen    *screens.LetterScreen

	// Path for the save-draft action on the letter screen
	draftPath string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
}

// NewWizard creates a new wizard over the given session. A nil session
// starts at step 1 with everything empty.
func NewWizard(session *Session, gen Generator, log *zap.Logger) *Wizard {
	if session == nil {
		session = NewSession()
	}
	if log == nil {
		log = zap.NewNop()
	}

	w := &Wizard{
		session:   session,
		gen:       gen,
		log:       log,
		draftPath: "appeal-draft.yaml",
	}

	w.patientScreen = screens.NewPatientScreen(&w.session.Patient)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.patientScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all steps
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	// Async results are handled regardless of the current screen so a
	// resolution cannot be lost to a screen swap.
	switch msg := msg.(type) {
	case clarificationMsg:
		return w.handleClarification(msg)
	case letterMsg:
		return w.handleLetter(msg)
	}

	switch w.session.Step {
	case StepPatient:
		return w.updatePatient(msg)
	case StepProvider:
		return w.updateProvider(msg)
	case StepClaim:
		return w.updateClaim(msg)
	case StepDenial:
		return w.updateDenial(msg)
	case StepClarify:
		return w.updateClarify(msg)
	case StepDocuments:
		return w.updateDocuments(msg)
	case StepContact:
		return w.updateContact(msg)
	case StepLetter:
		return w.updateLetter(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	var body string

	switch w.session.Step {
	case StepPatient:
		body = w.patientScreen.View()
	case StepProvider:
		body = w.providerScreen.View()
	case StepClaim:
		body = w.claimScreen.View()
	case StepDenial:
		body = w.denialScreen.View()
	case StepClarify:
		body = w.clarifyScreen.View()
	case StepDocuments:
		body = w.documentsScreen.View()
	case StepContact:
		body = w.contactScreen.View()
		if w.session.Loading {
			body = lipgloss.JoinVertical(lipgloss.Left,
				body,
				"",
				components.SubtitleStyle.Render("Generating your appeal letter... This may take a moment."),
			)
		}
	case StepLetter:
		return w.letterScreen.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.StepTracker(int(w.session.Step)),
		"",
		body,
	)
}

// updatePatient handles updates on the patient step.
func (w *Wizard) updatePatient(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.patientScreen.Update(msg)
	if ps, ok := model.(*screens.PatientScreen); ok {
		w.patientScreen = ps
	}

	if w.patientScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.patientScreen.Done() {
		return w.transitionToProvider()
	}

	return w, cmd
}

func (w *Wizard) transitionToPatient() (tea.Model, tea.Cmd) {
	w.session.Step = StepPatient
	w.patientScreen = screens.NewPatientScreen(&w.session.Patient)
	return w, w.patientScreen.Init()
}

// updateProvider handles updates on the provider step.
func (w *Wizard) updateProvider(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.providerScreen.Update(msg)
	if ps, ok := model.(*screens.ProviderScreen); ok {
		w.providerScreen = ps
	}

	if w.providerScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.providerScreen.Back() {
		w.session.LastError = ""
		return w.transitionToPatient()
	}

	if w.providerScreen.Done() {
		return w.transitionToClaim()
	}

	return w, cmd
}

func (w *Wizard) transitionToProvider() (tea.Model, tea.Cmd) {
	w.session.Step = StepProvider
	w.providerScreen = screens.NewProviderScreen(&w.session.Provider)
	return w, w.providerScreen.Init()
}

// updateClaim handles updates on the claim step.
func (w *Wizard) updateClaim(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.claimScreen.Update(msg)
	if cs, ok := model.(*screens.ClaimScreen); ok {
		w.claimScreen = cs
	}

	if w.claimScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.claimScreen.Back() {
		w.session.LastError = ""
		return w.transitionToProvider()
	}

	if w.claimScreen.Done() {
		return w.transitionToDenial()
	}

	return w, cmd
}

func (w *Wizard) transitionToClaim() (tea.Model, tea.Cmd) {
	w.session.Step = StepClaim
	w.claimScreen = screens.NewClaimScreen(&w.session.Claim)
	return w, w.claimScreen.Init()
}

// updateDenial handles updates on the denial-reason step. Completing
// the form fires the clarification request and jumps to step 5.
func (w *Wizard) updateDenial(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.denialScreen.Update(msg)
	if ds, ok := model.(*screens.DenialScreen); ok {
		w.denialScreen = ds
	}

	if w.denialScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.denialScreen.Back() {
		w.session.LastError = ""
		return w.transitionToClaim()
	}

	if w.denialScreen.Done() {
		return w.startClarification()
	}

	return w, cmd
}

func (w *Wizard) transitionToDenial() (tea.Model, tea.Cmd) {
	w.session.Step = StepDenial
	w.denialScreen = screens.NewDenialScreen(&w.session.DenialReasonID, &w.session.DenialReasonText)
	return w, w.denialScreen.Init()
}

// startClarification moves to step 5 in the loading state and fires
// the clarification request.
func (w *Wizard) startClarification() (tea.Model, tea.Cmd) {
	reason := strings.TrimSpace(w.session.DenialReasonText)
	if reason == "" {
		// The form validator keeps this from happening interactively.
		return w.transitionToDenial()
	}

	w.session.Step = StepClarify
	w.session.Loading = true
	w.session.LastError = ""
	w.session.Clarification = appeal.Clarification{}
	w.clarifyScreen = screens.NewClarifyScreen(&w.session.Clarification, true, "")

	w.log.Info("requesting clarification", zap.String("category", w.session.DenialReasonID))

	gen := w.gen
	cmd := func() tea.Msg {
		clar, err := gen.Clarify(context.Background(), appeal.BuildClarificationPrompt(reason))
		return clarificationMsg{clar: clar, err: err}
	}

	return w, tea.Batch(w.clarifyScreen.Init(), cmd)
}

// handleClarification applies the clarification result to the session
// and rebuilds the step-5 screen in its resolved state.
func (w *Wizard) handleClarification(msg clarificationMsg) (tea.Model, tea.Cmd) {
	w.session.Loading = false

	if msg.err != nil {
		w.log.Warn("clarification failed", zap.Error(msg.err))
		w.session.LastError = msg.err.Error()
		w.clarifyScreen = screens.NewClarifyScreen(&w.session.Clarification, false, w.session.LastError)
		return w, w.clarifyScreen.Init()
	}

	w.session.LastError = ""
	w.session.Clarification.Analysis = msg.clar.Analysis
	w.session.Clarification.Questions = msg.clar.Questions
	w.clarifyScreen = screens.NewClarifyScreen(&w.session.Clarification, false, "")
	return w, w.clarifyScreen.Init()
}

// updateClarify handles updates on the clarification step.
func (w *Wizard) updateClarify(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.clarifyScreen.Update(msg)
	if cs, ok := model.(*screens.ClarifyScreen); ok {
		w.clarifyScreen = cs
	}

	if w.clarifyScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.clarifyScreen.Back() {
		w.session.LastError = ""
		return w.transitionToDenial()
	}

	if w.clarifyScreen.Done() {
		return w.transitionToDocuments()
	}

	return w, cmd
}

// updateDocuments handles updates on the documents step.
func (w *Wizard) updateDocuments(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.documentsScreen.Update(msg)
	if ds, ok := model.(*screens.DocumentsScreen); ok {
		w.documentsScreen = ds
	}

	if w.documentsScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.documentsScreen.Back() {
		w.session.LastError = ""
		return w.transitionToClarifyResolved()
	}

	if w.documentsScreen.Done() {
		return w.transitionToContact()
	}

	return w, cmd
}

// transitionToClarifyResolved returns to step 5 without re-firing the
// request: the questions and answers collected earlier are kept.
func (w *Wizard) transitionToClarifyResolved() (tea.Model, tea.Cmd) {
	w.session.Step = StepClarify
	w.clarifyScreen = screens.NewClarifyScreen(&w.session.Clarification, false, "")
	return w, w.clarifyScreen.Init()
}

func (w *Wizard) transitionToDocuments() (tea.Model, tea.Cmd) {
	w.session.Step = StepDocuments
	w.documentsScreen = screens.NewDocumentsScreen(
		appeal.ReasonByID(w.session.DenialReasonID),
		func() []appeal.Attachment { return w.session.Attachments },
		w.session.AddAttachment,
		w.session.RemoveAttachment,
	)
	return w, w.documentsScreen.Init()
}

// updateContact handles updates on the contact step. Completing the
// form fires letter generation.
func (w *Wizard) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.contactScreen.Update(msg)
	if cs, ok := model.(*screens.ContactScreen); ok {
		w.contactScreen = cs
	}

	if w.contactScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	// Backward navigation is blocked while a request is in flight, the
	// same rule the clarification step applies: there is no
	// cancellation, so leaving the step would let a late result land
	// on a different screen.
	if w.contactScreen.Back() && !w.session.Loading {
		w.session.LastError = ""
		return w.transitionToDocuments()
	}

	if w.contactScreen.Done() && !w.session.Loading {
		return w.startGeneration()
	}

	return w, cmd
}

func (w *Wizard) transitionToContact() (tea.Model, tea.Cmd) {
	w.session.Step = StepContact
	w.contactScreen = screens.NewContactScreen(&w.session.User, "")
	return w, w.contactScreen.Init()
}

// startGeneration encodes the attachments and fires the letter
// request. Encoding failures surface like any other generation
// failure, before the request is issued.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.session.Loading = true
	w.session.LastError = ""

	w.log.Info("generating appeal letter",
		zap.String("claim", w.session.Claim.ClaimNumber),
		zap.Int("attachments", len(w.session.Attachments)))

	gen := w.gen
	session := w.session
	input := appeal.AppealPromptInput{
		Patient:              session.Patient,
		Provider:             session.Provider,
		Claim:                session.Claim,
		DenialReasonText:     session.DenialReasonText,
		ClarificationAnswers: session.Clarification.Answers,
		User:                 session.User,
		HasAttachments:       len(session.Attachments) > 0,
	}
	attachments := session.Attachments

	cmd := func() tea.Msg {
		ctx := context.Background()

		files, err := gemini.EncodeAll(ctx, attachments)
		if err != nil {
			return letterMsg{err: err}
		}

		letter, err := gen.GenerateLetter(ctx, appeal.BuildAppealPrompt(input), files)
		return letterMsg{letter: letter, err: err}
	}

	return w, cmd
}

// handleLetter applies the generation result: failure keeps the user
// on step 7 with the error shown, success moves to step 8.
func (w *Wizard) handleLetter(msg letterMsg) (tea.Model, tea.Cmd) {
	w.session.Loading = false

	if msg.err != nil {
		w.log.Warn("letter generation failed", zap.Error(msg.err))
		w.session.LastError = msg.err.Error()
		w.contactScreen = screens.NewContactScreen(&w.session.User, w.session.LastError)
		return w, w.contactScreen.Init()
	}

	w.session.LastError = ""
	w.session.Letter = msg.letter
	w.session.Step = StepLetter
	w.letterScreen = screens.NewLetterScreen(msg.letter, w.saveDraft)
	return w, w.letterScreen.Init()
}

// saveDraft writes the session's form fields to the draft path.
func (w *Wizard) saveDraft() error {
	return SaveToYAML(w.session, w.draftPath)
}

// updateLetter handles updates on the final letter step.
func (w *Wizard) updateLetter(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.letterScreen.Update(msg)
	if ls, ok := model.(*screens.LetterScreen); ok {
		w.letterScreen = ls
	}

	if w.letterScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.letterScreen.StartNew() {
		w.session.Reset()
		return w.transitionToPatient()
	}

	return w, cmd
}

// Run starts the interactive wizard. If fromDraft is provided, the
// form fields are preloaded from that YAML file. The model name falls
// back to the package default when empty.
func Run(fromDraft, model, logPath string) error {
	// Missing .env is fine; the key may come from the environment.
	_ = godotenv.Load()

	if logPath == "" {
		logPath = logging.DefaultPath()
	}
	log, err := logging.New(logPath)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer log.Sync()

	apiKey := os.Getenv("GEMINI_API_KEY")
	client, err := gemini.NewClient(context.Background(), apiKey, model, log)
	if err != nil {
		return err
	}

	session := NewSession()
	if fromDraft != "" {
		absPath, err := filepath.Abs(fromDraft)
		if err != nil {
			return fmt.Errorf("resolving draft path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}
		session = loaded
	}

	wizard := NewWizard(session, client, log)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	return nil
}
