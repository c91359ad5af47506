package wizard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hshah/appealforge/internal/appeal"
	"github.com/hshah/appealforge/internal/gemini"
)

// fakeGenerator records calls and returns canned results.
type fakeGenerator struct {
	clarifyCalls  int
	clarifyPrompt string
	clar          appeal.Clarification
	clarifyErr    error

	genCalls  int
	genPrompt string
	genFiles  []gemini.EncodedFile
	letter    string
	genErr    error
}

func (f *fakeGenerator) Clarify(_ context.Context, prompt string) (appeal.Clarification, error) {
	f.clarifyCalls++
	f.clarifyPrompt = prompt
	return f.clar, f.clarifyErr
}

func (f *fakeGenerator) GenerateLetter(_ context.Context, prompt string, files []gemini.EncodedFile) (string, error) {
	f.genCalls++
	f.genPrompt = prompt
	f.genFiles = files
	return f.letter, f.genErr
}

// runCmd executes a command tree and returns the first wizard message
// it produces, unwrapping batches.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := runCmd(c); m != nil {
				switch m.(type) {
				case clarificationMsg, letterMsg:
					return m
				}
			}
		}
		return nil
	}
	return msg
}

func completeSession() *Session {
	s := NewSession()
	s.Patient = appeal.PatientInfo{PatientName: "Jane Roe", DateOfBirth: "1980-02-03", MemberID: "MBR-1"}
	s.Provider = appeal.ProviderInfo{ProviderName: "Dr. Smith", NPINumber: "1234567890", TaxID: "12-3456789", ProviderState: "CA"}
	s.Claim = appeal.ClaimInfo{ClaimNumber: "CLM-42", DateOfService: "2025-01-15", BilledAmount: "$1,200.00", CPTCodes: "99213", DenialDate: "2025-02-01"}
	s.DenialReasonID = "medical_necessity"
	s.DenialReasonText = "Service deemed not medically necessary"
	s.User = appeal.UserDetails{AttentionTo: "Appeals Dept", UserName: "Pat Doe", UserDesignation: "Billing Manager", UserEmail: "pat@clinic.com", UserPhone: "555-123-4567", UserFax: "555-123-4568"}
	return s
}

func TestStartClarificationEntersLoadingState(t *testing.T) {
	gen := &fakeGenerator{
		clar: appeal.Clarification{
			Analysis:  "The payer questions necessity.",
			Questions: []string{"What symptoms were documented?"},
		},
	}
	w := NewWizard(completeSession(), gen, nil)
	w.session.Step = StepDenial

	model, cmd := w.startClarification()
	w = model.(*Wizard)

	// The jump to step 5 happens before the request resolves.
	if w.session.Step != StepClarify {
		t.Errorf("Expected step %d, got %d", StepClarify, w.session.Step)
	}
	if !w.session.Loading {
		t.Error("Expected loading state before the request resolves")
	}
	if w.session.LastError != "" {
		t.Errorf("Expected no error, got %q", w.session.LastError)
	}
	if gen.clarifyCalls != 0 {
		t.Errorf("Expected no call before the command runs, got %d", gen.clarifyCalls)
	}

	msg := runCmd(cmd)
	cm, ok := msg.(clarificationMsg)
	if !ok {
		t.Fatalf("Expected clarificationMsg, got %T", msg)
	}
	if gen.clarifyCalls != 1 {
		t.Errorf("Expected 1 clarify call, got %d", gen.clarifyCalls)
	}
	if !strings.Contains(gen.clarifyPrompt, "Service deemed not medically necessary") {
		t.Error("Expected the prompt to carry the denial reason text")
	}

	model, _ = w.Update(cm)
	w = model.(*Wizard)

	if w.session.Loading {
		t.Error("Expected loading to clear after resolution")
	}
	if w.session.Step != StepClarify {
		t.Errorf("Expected to stay on step %d, got %d", StepClarify, w.session.Step)
	}
	if w.session.Clarification.Analysis != "The payer questions necessity." {
		t.Errorf("Expected analysis to be stored, got %q", w.session.Clarification.Analysis)
	}
	if len(w.session.Clarification.Questions) != 1 {
		t.Errorf("Expected 1 question, got %d", len(w.session.Clarification.Questions))
	}
}

func TestClarificationFailureStaysOnStepWithError(t *testing.T) {
	gen := &fakeGenerator{clarifyErr: errors.New("network unreachable")}
	w := NewWizard(completeSession(), gen, nil)
	w.session.Step = StepDenial

	model, cmd := w.startClarification()
	w = model.(*Wizard)

	msg := runCmd(cmd)
	model, _ = w.Update(msg)
	w = model.(*Wizard)

	if w.session.Step != StepClarify {
		t.Errorf("Expected step %d, got %d", StepClarify, w.session.Step)
	}
	if w.session.Loading {
		t.Error("Expected loading to clear after failure")
	}
	if w.session.LastError == "" {
		t.Error("Expected the failure to be recorded")
	}
	if len(w.session.Clarification.Questions) != 0 {
		t.Errorf("Expected no questions after failure, got %d", len(w.session.Clarification.Questions))
	}
}

func TestStartClarificationRequiresReasonText(t *testing.T) {
	gen := &fakeGenerator{}
	s := completeSession()
	s.DenialReasonText = "   "
	w := NewWizard(s, gen, nil)
	w.session.Step = StepDenial

	model, _ := w.startClarification()
	w = model.(*Wizard)

	if w.session.Step != StepDenial {
		t.Errorf("Expected to stay on step %d, got %d", StepDenial, w.session.Step)
	}
	if gen.clarifyCalls != 0 {
		t.Errorf("Expected no clarify call, got %d", gen.clarifyCalls)
	}
}

func TestGenerationSuccessMovesToLetter(t *testing.T) {
	gen := &fakeGenerator{letter: "Dear Appeals Department,\n\nWe formally appeal..."}
	s := completeSession()
	s.Step = StepContact
	s.Clarification.Answers = "The patient had documented symptoms for six months."
	w := NewWizard(s, gen, nil)

	model, cmd := w.startGeneration()
	w = model.(*Wizard)

	if !w.session.Loading {
		t.Error("Expected loading state while generating")
	}

	msg := runCmd(cmd)
	model, _ = w.Update(msg)
	w = model.(*Wizard)

	if w.session.Step != StepLetter {
		t.Errorf("Expected step %d, got %d", StepLetter, w.session.Step)
	}
	if w.session.Letter != gen.letter {
		t.Errorf("Expected the letter to be stored, got %q", w.session.Letter)
	}
	if w.session.Loading {
		t.Error("Expected loading to clear after success")
	}
	if !strings.Contains(gen.genPrompt, "documented symptoms for six months") {
		t.Error("Expected the prompt to carry the clarification answers")
	}
}

func TestGenerationFailureStaysOnContact(t *testing.T) {
	gen := &fakeGenerator{genErr: gemini.ErrEmptyResponse}
	s := completeSession()
	s.Step = StepContact
	w := NewWizard(s, gen, nil)

	model, cmd := w.startGeneration()
	w = model.(*Wizard)

	msg := runCmd(cmd)
	model, _ = w.Update(msg)
	w = model.(*Wizard)

	if w.session.Step != StepContact {
		t.Errorf("Expected step %d, got %d", StepContact, w.session.Step)
	}
	if w.session.LastError == "" {
		t.Error("Expected the failure to be recorded")
	}
	if w.session.Letter != "" {
		t.Errorf("Expected no letter, got %q", w.session.Letter)
	}
}

func TestEncodeFailureSkipsRequest(t *testing.T) {
	gen := &fakeGenerator{letter: "should never be returned"}
	s := completeSession()
	s.Step = StepContact
	s.AddAttachment(appeal.Attachment{Name: "eob.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")})
	s.AddAttachment(appeal.Attachment{Name: "scan.pdf", MIMEType: "application/pdf"}) // no data

	w := NewWizard(s, gen, nil)

	model, cmd := w.startGeneration()
	w = model.(*Wizard)

	msg := runCmd(cmd)
	if gen.genCalls != 0 {
		t.Errorf("Expected no generate call after encoding failure, got %d", gen.genCalls)
	}

	model, _ = w.Update(msg)
	w = model.(*Wizard)

	if w.session.Step != StepContact {
		t.Errorf("Expected step %d, got %d", StepContact, w.session.Step)
	}
	if !strings.Contains(w.session.LastError, "scan.pdf") {
		t.Errorf("Expected the error to name the file, got %q", w.session.LastError)
	}
}

func TestAttachmentsForwardedToGeneration(t *testing.T) {
	gen := &fakeGenerator{letter: "Dear Appeals Department,"}
	s := completeSession()
	s.Step = StepContact
	s.AddAttachment(appeal.Attachment{Name: "eob.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-1.4")})
	w := NewWizard(s, gen, nil)

	_, cmd := w.startGeneration()

	runCmd(cmd)
	if len(gen.genFiles) != 1 {
		t.Fatalf("Expected 1 encoded file, got %d", len(gen.genFiles))
	}
	if gen.genFiles[0].Name != "eob.pdf" {
		t.Errorf("Expected eob.pdf, got %q", gen.genFiles[0].Name)
	}
	if !strings.Contains(gen.genPrompt, "File Analysis Instructions") {
		t.Error("Expected the prompt to carry the file analysis instructions")
	}
}

func TestBackClearsErrorAfterClarificationFailure(t *testing.T) {
	gen := &fakeGenerator{clarifyErr: errors.New("network unreachable")}
	w := NewWizard(completeSession(), gen, nil)
	w.session.Step = StepDenial

	model, cmd := w.startClarification()
	w = model.(*Wizard)
	model, _ = w.Update(runCmd(cmd))
	w = model.(*Wizard)

	if w.session.LastError == "" {
		t.Fatal("Expected the failure to be recorded before navigating back")
	}

	model, _ = w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	w = model.(*Wizard)

	if w.session.Step != StepDenial {
		t.Errorf("Expected step %d, got %d", StepDenial, w.session.Step)
	}
	if w.session.LastError != "" {
		t.Errorf("Expected error to clear on back navigation, got %q", w.session.LastError)
	}
}

func TestForwardTransitionPreservesLastError(t *testing.T) {
	gen := &fakeGenerator{}
	s := completeSession()
	s.LastError = "network unreachable"
	w := NewWizard(s, gen, nil)

	model, _ := w.transitionToDocuments()
	w = model.(*Wizard)

	// Only back navigation and a fresh attempt clear the error.
	if w.session.LastError != "network unreachable" {
		t.Errorf("Expected error to survive a forward transition, got %q", w.session.LastError)
	}
}

func TestRetryClearsLastError(t *testing.T) {
	gen := &fakeGenerator{genErr: errors.New("network unreachable")}
	s := completeSession()
	s.Step = StepContact
	w := NewWizard(s, gen, nil)

	model, cmd := w.startGeneration()
	w = model.(*Wizard)
	model, _ = w.Update(runCmd(cmd))
	w = model.(*Wizard)

	if w.session.LastError == "" {
		t.Fatal("Expected the first attempt to record its failure")
	}

	gen.genErr = nil
	gen.letter = "Dear Appeals Department,"
	model, _ = w.startGeneration()
	w = model.(*Wizard)

	if w.session.LastError != "" {
		t.Errorf("Expected a new attempt to clear the error, got %q", w.session.LastError)
	}
}

func TestEscDuringGenerationKeepsStep(t *testing.T) {
	gen := &fakeGenerator{letter: "Dear Sir..."}
	s := completeSession()
	w := NewWizard(s, gen, nil)

	model, _ := w.transitionToContact()
	w = model.(*Wizard)
	model, cmd := w.startGeneration()
	w = model.(*Wizard)

	// Esc while the request is in flight must not navigate away.
	model, _ = w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	w = model.(*Wizard)

	if w.session.Step != StepContact {
		t.Errorf("Expected step %d while loading, got %d", StepContact, w.session.Step)
	}
	if !w.session.Loading {
		t.Error("Expected loading to remain set")
	}

	// The late result then lands on the step it belongs to.
	model, _ = w.Update(runCmd(cmd))
	w = model.(*Wizard)

	if w.session.Step != StepLetter {
		t.Errorf("Expected step %d after the result, got %d", StepLetter, w.session.Step)
	}
	if w.session.Letter != "Dear Sir..." {
		t.Errorf("Expected the letter to be stored, got %q", w.session.Letter)
	}
}

func TestResetReturnsToInitialState(t *testing.T) {
	s := completeSession()
	s.Step = StepLetter
	s.Letter = "Dear Appeals Department,"
	s.LastError = "stale"
	s.AddAttachment(appeal.Attachment{Name: "eob.pdf", MIMEType: "application/pdf", Data: []byte("x")})

	s.Reset()

	if s.Step != StepPatient {
		t.Errorf("Expected step %d after reset, got %d", StepPatient, s.Step)
	}
	if s.Patient.PatientName != "" || s.Letter != "" || s.LastError != "" {
		t.Error("Expected all fields to clear on reset")
	}
	if len(s.Attachments) != 0 {
		t.Errorf("Expected no attachments after reset, got %d", len(s.Attachments))
	}

	// Reset from the initial state is a no-op.
	s.Reset()
	if s.Step != StepPatient {
		t.Errorf("Expected step %d after second reset, got %d", StepPatient, s.Step)
	}
}

func TestRemoveAttachmentIgnoresOutOfRange(t *testing.T) {
	s := NewSession()
	s.AddAttachment(appeal.Attachment{Name: "a.pdf", MIMEType: "application/pdf", Data: []byte("a")})

	s.RemoveAttachment(-1)
	s.RemoveAttachment(5)
	if len(s.Attachments) != 1 {
		t.Errorf("Expected 1 attachment, got %d", len(s.Attachments))
	}

	s.RemoveAttachment(0)
	if len(s.Attachments) != 0 {
		t.Errorf("Expected 0 attachments, got %d", len(s.Attachments))
	}
}
