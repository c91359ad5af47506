package appeal

// USStates lists the 50 two-letter state codes accepted for the
// provider state field.
var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// DenialReason is one entry of the payer denial-reason catalog. The
// Guidance list tells the user which supporting documents strengthen an
// appeal for this kind of denial.
type DenialReason struct {
	ID          string
	Title       string
	Description string
	Guidance    []string
}

// DenialReasons is the catalog offered on the denial-reason step. The
// final "other" entry lets the user enter a reason verbatim from the
// payer letter.
var DenialReasons = []DenialReason{
	{
		ID:          "medical_necessity",
		Title:       "Not Medically Necessary",
		Description: "The insurer has determined the service or procedure was not required for the patient's condition.",
		Guidance: []string{
			"A detailed letter from the treating physician explaining the medical necessity.",
			"Copies of relevant medical records, such as progress notes, lab results, and imaging reports.",
			"Peer-reviewed medical literature or clinical practice guidelines that support the treatment.",
		},
	},
	{
		ID:          "timely_filing",
		Title:       "Timely Filing Limit Exceeded",
		Description: "The claim was submitted after the deadline set by the insurance company.",
		Guidance: []string{
			"Proof of the original, timely submission (e.g., electronic submission report, certified mail receipt).",
			"A letter explaining any extenuating circumstances that caused the delay.",
			"Any correspondence from the payer that shows they received the claim on time but mishandled it.",
		},
	},
	{
		ID:          "coding_error",
		Title:       "Coding Error or Mismatch",
		Description: "The CPT, HCPCS, or diagnosis codes on the claim are considered incorrect or inconsistent.",
		Guidance: []string{
			"A corrected claim form with the accurate codes.",
			"A copy of the physician's notes or operative report to justify the codes used.",
			"References to official coding guidelines (e.g., AMA CPT Assistant, AHA Coding Clinic).",
		},
	},
	{
		ID:          "not_covered",
		Title:       "Service Not a Covered Benefit",
		Description: "The service is explicitly excluded from the patient's insurance plan.",
		Guidance: []string{
			"A copy of the patient's Summary of Benefits and Coverage (SBC) if you believe the service is covered.",
			"A letter arguing for an exception based on medical necessity or lack of alternative treatments.",
			"Documentation of any prior authorization that was obtained for the service.",
		},
	},
	{
		ID:          "info_missing",
		Title:       "Missing or Invalid Information",
		Description: "The claim was rejected due to incomplete or incorrect patient, provider, or insurance details.",
		Guidance: []string{
			"A corrected claim form with all fields accurately completed.",
			"A copy of the front and back of the patient's insurance card.",
			"Verify NPI, Tax ID, and address details for the provider.",
		},
	},
	{
		ID:          "other",
		Title:       "Other Reason",
		Description: "If the denial reason is not listed above, please specify it.",
		Guidance: []string{
			"Provide the exact denial reason from the EOB/denial letter.",
			"Upload a copy of the denial letter itself.",
			"Include any documentation that you believe refutes the specific reason for denial.",
		},
	},
}

// ReasonByID looks up a catalog entry. Unknown IDs fall back to the
// "other" entry.
func ReasonByID(id string) DenialReason {
	for _, r := range DenialReasons {
		if r.ID == id {
			return r
		}
	}
	return DenialReasons[len(DenialReasons)-1]
}
