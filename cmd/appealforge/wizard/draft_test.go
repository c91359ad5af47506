package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hshah/appealforge/internal/appeal"
)

func TestSaveToYAML_AndLoadBack(t *testing.T) {
	session := completeSession()
	session.Step = StepLetter
	session.Letter = "Dear Appeals Department,"
	session.Clarification = appeal.Clarification{
		Analysis:  "analysis",
		Questions: []string{"q1"},
		Answers:   "a1",
	}
	session.AddAttachment(appeal.Attachment{Name: "eob.pdf", MIMEType: "application/pdf", Data: []byte("x")})

	path := filepath.Join(t.TempDir(), "draft.yaml")
	if err := SaveToYAML(session, path); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if loaded.Patient != session.Patient {
		t.Errorf("Expected patient %+v, got %+v", session.Patient, loaded.Patient)
	}
	if loaded.Provider != session.Provider {
		t.Errorf("Expected provider %+v, got %+v", session.Provider, loaded.Provider)
	}
	if loaded.Claim != session.Claim {
		t.Errorf("Expected claim %+v, got %+v", session.Claim, loaded.Claim)
	}
	if loaded.DenialReasonID != session.DenialReasonID {
		t.Errorf("Expected category %q, got %q", session.DenialReasonID, loaded.DenialReasonID)
	}
	if loaded.DenialReasonText != session.DenialReasonText {
		t.Errorf("Expected reason %q, got %q", session.DenialReasonText, loaded.DenialReasonText)
	}
	if loaded.User != session.User {
		t.Errorf("Expected contact %+v, got %+v", session.User, loaded.User)
	}

	// Only form fields round-trip.
	if loaded.Step != StepPatient {
		t.Errorf("Expected a loaded draft to start at step %d, got %d", StepPatient, loaded.Step)
	}
	if loaded.Letter != "" {
		t.Errorf("Expected no letter in a loaded draft, got %q", loaded.Letter)
	}
	if loaded.Clarification.Analysis != "" || len(loaded.Clarification.Questions) != 0 {
		t.Error("Expected no clarification state in a loaded draft")
	}
	if len(loaded.Attachments) != 0 {
		t.Errorf("Expected no attachments in a loaded draft, got %d", len(loaded.Attachments))
	}
}

func TestLoadFromYAML_NonExistentFile(t *testing.T) {
	_, err := LoadFromYAML("/non/existent/path/draft.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestLoadFromYAML_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.yaml")
	if err := os.WriteFile(path, []byte("patient: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := LoadFromYAML(path)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestSaveToYAML_InvalidPath(t *testing.T) {
	err := SaveToYAML(NewSession(), "/nonexistent/deeply/nested/path/draft.yaml")
	if err == nil {
		t.Error("Expected error for invalid path, got nil")
	}
}
