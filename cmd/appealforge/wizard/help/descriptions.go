package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"patient_name": {
		Title:       "PATIENT NAME",
		Description: "Full legal name of the patient the claim was filed for.",
		Details:     "Use the name exactly as it appears on the insurance card.",
	},
	"date_of_birth": {
		Title:       "DATE OF BIRTH",
		Description: "Patient's date of birth.",
		Details:     "Format: YYYY-MM-DD. Rendered as MM/DD/YYYY in the letter.",
	},
	"member_id": {
		Title:       "MEMBER ID",
		Description: "The patient's insurance member or subscriber ID.",
		Details:     "Found on the front of the insurance card.",
	},
	"provider_name": {
		Title:       "PROVIDER NAME",
		Description: "Name of the rendering provider or practice.",
		Details:     "Appears in the letter's signature block.",
	},
	"npi_number": {
		Title:       "NPI NUMBER",
		Description: "National Provider Identifier.",
		Details:     "Exactly 10 digits. Identifies the healthcare provider to payers.",
	},
	"tax_id": {
		Title:       "TAX ID",
		Description: "The provider's employer identification number.",
		Details:     "Format: XX-XXXXXXX (hyphen optional).",
	},
	"provider_state": {
		Title:       "PROVIDER STATE",
		Description: "State where the rendering provider is located.",
		Details:     "Used to frame jurisdiction-specific arguments (prompt payment laws, timely filing statutes).",
	},
	"claim_number": {
		Title:       "CLAIM NUMBER",
		Description: "The payer's claim or reference number.",
		Details:     "Found on the EOB or denial letter.",
	},
	"date_of_service": {
		Title:       "DATE OF SERVICE",
		Description: "Date the denied service was rendered.",
		Details:     "Format: YYYY-MM-DD.",
	},
	"billed_amount": {
		Title:       "BILLED AMOUNT",
		Description: "Total amount billed for the denied claim.",
		Details:     "As submitted on the claim form.",
	},
	"cpt_codes": {
		Title:       "CPT CODES",
		Description: "Procedure codes on the denied claim.",
		Details:     "Comma-separate multiple codes (e.g., 99213, 36415).",
	},
	"denial_date": {
		Title:       "DENIAL DATE",
		Description: "Date on the payer's denial letter or EOB.",
		Details:     "Format: YYYY-MM-DD.",
	},
	"denial_category": {
		Title:       "DENIAL CATEGORY",
		Description: "The catalog entry closest to the payer's stated reason.",
		Details:     "Drives the documentation guidance on the documents step. Pick \"Other Reason\" if nothing fits.",
	},
	"denial_reason": {
		Title:       "DENIAL REASON",
		Description: "The payer's stated justification for rejecting the claim.",
		Details:     "Copy it verbatim from the denial letter or EOB. The analysis and follow-up questions are built from this text.",
	},
	"clarification_answers": {
		Title:       "YOUR ANSWERS",
		Description: "Answers to the follow-up questions above.",
		Details:     "These answers become the foundation of the appeal argument, so be specific: dates, reference numbers, clinical facts.",
	},
	"attention_to": {
		Title:       "ATTENTION TO",
		Description: "Who the letter is addressed to.",
		Details:     "Usually the payer's appeals department, e.g. \"Appeals Department, Acme Health\".",
	},
	"user_name": {
		Title:       "YOUR NAME",
		Description: "Name of the person submitting the appeal.",
		Details:     "Appears under \"Sincerely,\" in the signature block.",
	},
	"user_designation": {
		Title:       "DESIGNATION",
		Description: "Your role at the practice.",
		Details:     "e.g. Billing Manager, Office Administrator, Practice Owner.",
	},
	"user_email": {
		Title:       "EMAIL",
		Description: "Contact email for the signature block.",
		Details:     "Basic address shape is checked (name@domain.tld).",
	},
	"user_phone": {
		Title:       "PHONE",
		Description: "Contact phone number.",
		Details:     "US format, e.g. (555) 123-4567 or 555-123-4567.",
	},
	"user_fax": {
		Title:       "FAX",
		Description: "Fax number for payer correspondence.",
		Details:     "US format, e.g. (555) 123-4567 or 555-123-4567.",
	},
	"documents": {
		Title:       "SUPPORTING DOCUMENTS",
		Description: "Optional evidence attached to the generation request.",
		Details:     "PDF, PNG, JPG up to 10MB per file. Medical records are quoted directly in the argument; EOBs and correspondence contribute facts and reference numbers.",
	},
}
