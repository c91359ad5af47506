// Package appeal holds the domain model for insurance claim appeals:
// the entities collected by the wizard, field validators, and the
// prompt builders that turn collected state into generation requests.
package appeal

// PatientInfo identifies the patient the denied claim belongs to.
type PatientInfo struct {
	PatientName string
	DateOfBirth string // YYYY-MM-DD
	MemberID    string
}

// Complete reports whether every required field has been entered.
func (p PatientInfo) Complete() bool {
	return p.PatientName != "" && p.DateOfBirth != "" && p.MemberID != ""
}

// ProviderInfo identifies the rendering provider.
type ProviderInfo struct {
	ProviderName  string
	NPINumber     string
	TaxID         string
	ProviderState string // two-letter US state code
}

// Complete reports whether every required field has been entered.
func (p ProviderInfo) Complete() bool {
	return p.ProviderName != "" && p.NPINumber != "" && p.TaxID != "" && p.ProviderState != ""
}

// ClaimInfo describes the denied claim.
type ClaimInfo struct {
	ClaimNumber   string
	DateOfService string // YYYY-MM-DD
	BilledAmount  string
	CPTCodes      string
	DenialDate    string // YYYY-MM-DD
}

// Complete reports whether every required field has been entered.
func (c ClaimInfo) Complete() bool {
	return c.ClaimNumber != "" && c.DateOfService != "" && c.BilledAmount != "" &&
		c.CPTCodes != "" && c.DenialDate != ""
}

// UserDetails describes the person submitting the appeal and the
// contact block rendered into the letter signature.
type UserDetails struct {
	AttentionTo     string
	UserName        string
	UserDesignation string
	UserEmail       string
	UserPhone       string
	UserFax         string
}

// Complete reports whether every required field has been entered.
func (u UserDetails) Complete() bool {
	return u.AttentionTo != "" && u.UserName != "" && u.UserDesignation != "" &&
		u.UserEmail != "" && u.UserPhone != "" && u.UserFax != ""
}

// Clarification holds the AI-produced denial analysis and follow-up
// questions, plus the user's free-text answers. Analysis and Questions
// are read-only to the user.
type Clarification struct {
	Analysis  string
	Questions []string
	Answers   string
}

// Attachment is one uploaded supporting document. Data holds the raw
// file bytes; MIMEType is derived from the file extension.
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}
