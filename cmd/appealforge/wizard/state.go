// Package wizard provides the interactive appeal-letter wizard: an
// 8-step flow that collects claim-denial details, asks the model for
// clarifying questions, and generates a formal appeal letter.
package wizard

import "github.com/hshah/appealforge/internal/appeal"

// Step numbers the wizard's screens. Transitions move one step at a
// time under user control; the clarification request jumps 4 -> 5
// programmatically so the loading state is visible while the call is
// in flight.
type Step int

const (
	StepPatient   Step = iota + 1 // 1: patient details
	StepProvider                  // 2: provider details
	StepClaim                     // 3: claim details
	StepDenial                    // 4: denial reason
	StepClarify                   // 5: AI clarification questions + answers
	StepDocuments                 // 6: supporting documents (optional)
	StepContact                   // 7: submitter contact details
	StepLetter                    // 8: generated letter
)

// Session is the single source of truth for everything the wizard has
// collected. Each step reads and writes only its own slice of it, and
// screens reach it exclusively through pointers handed out here.
type Session struct {
	Step Step

	Patient  appeal.PatientInfo
	Provider appeal.ProviderInfo
	Claim    appeal.ClaimInfo

	DenialReasonID   string // catalog selection, drives documentation guidance
	DenialReasonText string // verbatim from the payer letter

	Clarification appeal.Clarification
	Attachments   []appeal.Attachment
	User          appeal.UserDetails

	Letter string

	Loading   bool
	LastError string
}

// NewSession returns the initial empty session at step 1.
func NewSession() *Session {
	return &Session{Step: StepPatient}
}

// Reset returns every field to its initial empty value and the step to
// 1. Idempotent from any state.
func (s *Session) Reset() {
	*s = Session{Step: StepPatient}
}

// AddAttachment appends one uploaded document.
func (s *Session) AddAttachment(a appeal.Attachment) {
	s.Attachments = append(s.Attachments, a)
}

// RemoveAttachment removes the attachment at the given position.
// Out-of-range positions are ignored.
func (s *Session) RemoveAttachment(i int) {
	if i < 0 || i >= len(s.Attachments) {
		return
	}
	s.Attachments = append(s.Attachments[:i], s.Attachments[i+1:]...)
}
