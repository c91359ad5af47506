package wizard

import (
	"fmt"
	"os"

	"github.com/hshah/appealforge/internal/appeal"
	"gopkg.in/yaml.v3"
)

// Draft is the YAML shape of a saved session. Only form fields are
// persisted: model output, attachments and transient state stay out so
// a resumed session re-runs the clarification with fresh questions.
type Draft struct {
	Patient  PatientYAML  `yaml:"patient"`
	Provider ProviderYAML `yaml:"provider"`
	Claim    ClaimYAML    `yaml:"claim"`
	Denial   DenialYAML   `yaml:"denial"`
	Contact  ContactYAML  `yaml:"contact"`
}

// PatientYAML holds patient details with YAML tags for serialization.
type PatientYAML struct {
	Name        string `yaml:"name"`
	DateOfBirth string `yaml:"date_of_birth"`
	MemberID    string `yaml:"member_id"`
}

// ProviderYAML holds provider details with YAML tags.
type ProviderYAML struct {
	Name  string `yaml:"name"`
	NPI   string `yaml:"npi"`
	TaxID string `yaml:"tax_id"`
	State string `yaml:"state"`
}

// ClaimYAML holds claim details with YAML tags.
type ClaimYAML struct {
	Number        string `yaml:"number"`
	DateOfService string `yaml:"date_of_service"`
	BilledAmount  string `yaml:"billed_amount"`
	CPTCodes      string `yaml:"cpt_codes"`
	DenialDate    string `yaml:"denial_date"`
}

// DenialYAML holds the denial category and reason text with YAML tags.
type DenialYAML struct {
	Category string `yaml:"category"`
	Reason   string `yaml:"reason"`
}

// ContactYAML holds the submitter's details with YAML tags.
type ContactYAML struct {
	AttentionTo string `yaml:"attention_to"`
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	Fax         string `yaml:"fax"`
}

// SaveToYAML writes the session's form fields to a YAML draft file.
func SaveToYAML(s *Session, path string) error {
	draft := Draft{
		Patient: PatientYAML{
			Name:        s.Patient.PatientName,
			DateOfBirth: s.Patient.DateOfBirth,
			MemberID:    s.Patient.MemberID,
		},
		Provider: ProviderYAML{
			Name:  s.Provider.ProviderName,
			NPI:   s.Provider.NPINumber,
			TaxID: s.Provider.TaxID,
			State: s.Provider.ProviderState,
		},
		Claim: ClaimYAML{
			Number:        s.Claim.ClaimNumber,
			DateOfService: s.Claim.DateOfService,
			BilledAmount:  s.Claim.BilledAmount,
			CPTCodes:      s.Claim.CPTCodes,
			DenialDate:    s.Claim.DenialDate,
		},
		Denial: DenialYAML{
			Category: s.DenialReasonID,
			Reason:   s.DenialReasonText,
		},
		Contact: ContactYAML{
			AttentionTo: s.User.AttentionTo,
			Name:        s.User.UserName,
			Designation: s.User.UserDesignation,
			Email:       s.User.UserEmail,
			Phone:       s.User.UserPhone,
			Fax:         s.User.UserFax,
		},
	}

	data, err := yaml.Marshal(&draft)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing draft: %w", err)
	}

	return nil
}

// LoadFromYAML reads a YAML draft file into a fresh session at step 1.
func LoadFromYAML(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}

	var draft Draft
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("parsing draft: %w", err)
	}

	session := NewSession()
	session.Patient = appeal.PatientInfo{
		PatientName: draft.Patient.Name,
		DateOfBirth: draft.Patient.DateOfBirth,
		MemberID:    draft.Patient.MemberID,
	}
	session.Provider = appeal.ProviderInfo{
		ProviderName:  draft.Provider.Name,
		NPINumber:     draft.Provider.NPI,
		TaxID:         draft.Provider.TaxID,
		ProviderState: draft.Provider.State,
	}
	session.Claim = appeal.ClaimInfo{
		ClaimNumber:   draft.Claim.Number,
		DateOfService: draft.Claim.DateOfService,
		BilledAmount:  draft.Claim.BilledAmount,
		CPTCodes:      draft.Claim.CPTCodes,
		DenialDate:    draft.Claim.DenialDate,
	}
	session.DenialReasonID = draft.Denial.Category
	session.DenialReasonText = draft.Denial.Reason
	session.User = appeal.UserDetails{
		AttentionTo:     draft.Contact.AttentionTo,
		UserName:        draft.Contact.Name,
		UserDesignation: draft.Contact.Designation,
		UserEmail:       draft.Contact.Email,
		UserPhone:       draft.Contact.Phone,
		UserFax:         draft.Contact.Fax,
	}

	return session, nil
}
