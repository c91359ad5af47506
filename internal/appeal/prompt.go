package appeal

import (
	"fmt"
	"strings"
	"time"
)

// FormatDate renders a YYYY-MM-DD calendar date as MM/DD/YYYY. The date
// is treated as a wall-clock value, never converted through UTC, so the
// rendered day matches the entered day. Empty input renders as "N/A";
// input already in MM/DD/YYYY form passes through unchanged.
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d.Format("01/02/2006")
	}
	if _, err := time.Parse("01/02/2006", s); err == nil {
		return s
	}
	return s
}

// BuildClarificationPrompt produces the instruction string for the
// structured clarification request. The expected response shape (a JSON
// object with a string "analysis" and a string array "questions") is
// enforced by the gateway's response schema.
func BuildClarificationPrompt(denialReasonText string) string {
	var sb strings.Builder
	sb.WriteString(`You are an expert medical billing analyst. Your task is to analyze a given insurance claim denial reason and generate specific, targeted follow-up questions for the user. These questions should elicit the exact information needed to write a powerful and effective appeal letter.

Analyze the following denial reason:
"`)
	sb.WriteString(denialReasonText)
	sb.WriteString(`"

Based on your analysis, generate a list of questions.

**Examples:**
- If the denial is "No Authorization," ask things like: "Was prior authorization obtained? If yes, please provide the authorization number and date it was obtained. If no, was this an emergency service that would not require pre-authorization?"
- If the denial is "Timely Filing Limit Exceeded," ask things like: "What was the original submission date of the claim? Do you have proof of original submission (e.g., a clearinghouse report or payer confirmation number)? If the claim was rejected previously, what was the reason for the rejection and on what date was it rejected?"
- If the denial is "Not Medically Necessary," ask things like: "Can you provide a brief clinical summary explaining why this service was medically necessary for this patient at this time? Mention any specific symptoms, failed prior treatments, or relevant diagnoses."

Return your response in a structured JSON format. The JSON object must contain a brief 'analysis' of the denial and a 'questions' array.
`)
	return sb.String()
}

// AppealPromptInput is the union of collected wizard state needed to
// build the appeal-letter prompt.
type AppealPromptInput struct {
	Patient              PatientInfo
	Provider             ProviderInfo
	Claim                ClaimInfo
	DenialReasonText     string
	ClarificationAnswers string
	User                 UserDetails
	HasAttachments       bool

	// Today overrides the letter date. Zero value means time.Now().
	Today time.Time
}

// BuildAppealPrompt produces the single instruction string for the
// letter generation request: header block, centered demographics block,
// body-construction directives built around the user's clarification
// answers, optional file-analysis directive, state-context directive,
// and signature block. The model is instructed to emit only the letter
// text itself.
func BuildAppealPrompt(in AppealPromptInput) string {
	today := in.Today
	if today.IsZero() {
		today = time.Now()
	}
	currentDate := today.Format("01/02/2006")

	var sb strings.Builder
	sb.WriteString(`You are a legal expert specializing in healthcare insurance appeals. Your tone must be formal, authoritative, and structured. You are writing an official legal argument, not a simple letter. Your task is to analyze the user-provided denial reason and construct a logical, evidence-based appeal.

**CRITICAL INSTRUCTIONS:**
1.  **Output ONLY the official appeal text.** Do not include any conversational text, markdown, or headings like "Here is the appeal:".
2.  **Use MM/DD/YYYY format for all dates.**
3.  **Adhere strictly to the professional layout and content requirements outlined below.**

---
**APPEAL LAYOUT AND CONTENT:**

**1. Header Block (Top of page):**
`)
	fmt.Fprintf(&sb, "   - On the top left, write \"ATTENTION: %s\".\n", in.User.AttentionTo)
	fmt.Fprintf(&sb, "   - On the top right, write today's date: %s.\n", currentDate)
	sb.WriteString(`
**2. Demographics Block (Center this block below the header):**
   - Create a centered, clearly separated block of text for the patient and claim details. Include all of the following:
`)
	fmt.Fprintf(&sb, "     - Patient Name: %s\n", in.Patient.PatientName)
	fmt.Fprintf(&sb, "     - Date of Birth: %s\n", FormatDate(in.Patient.DateOfBirth))
	fmt.Fprintf(&sb, "     - Member ID: %s\n", in.Patient.MemberID)
	fmt.Fprintf(&sb, "     - Claim Number: %s\n", in.Claim.ClaimNumber)
	fmt.Fprintf(&sb, "     - Date of Service: %s\n", FormatDate(in.Claim.DateOfService))
	fmt.Fprintf(&sb, "     - Denial Date: %s\n", FormatDate(in.Claim.DenialDate))
	sb.WriteString(`
**3. Appeal Body (Formal argument format):**
   - Begin with a formal salutation like "To Whom It May Concern:".
   - State the purpose of the correspondence: to formally appeal a denied claim on behalf of the patient.
   - **Core Argument Construction:**
`)
	fmt.Fprintf(&sb, "     - The insurance company provided the following denial reason: %q.\n", in.DenialReasonText)
	sb.WriteString(`     - **YOUR PRIMARY TASK is to use the user's detailed answers (provided under "CRITICAL USER-PROVIDED CLARIFICATIONS") to construct a powerful and specific rebuttal.** Directly reference the facts and evidence the user provided in their answers. This is more important than any generic template.
     - Structure the appeal body with a clear introduction, a detailed argument section citing the user's clarifications and evidence from any provided documents, and a concluding statement.
   - Conclude by formally requesting a re-evaluation and subsequent reprocessing of the claim for payment.

**4. Signature Block (At the end):**
   - End with "Sincerely,".
   - Follow with the user's name, designation, provider's name, email, phone, and fax number.

---
**ADDITIONAL CONTEXT:**
`)
	sb.WriteString(clarificationFragment(in.ClarificationAnswers))
	if in.HasAttachments {
		sb.WriteString(fileAnalysisFragment)
	}
	sb.WriteString(stateContextFragment(in.Provider.ProviderState))
	sb.WriteString("\n**SIGNATURE DATA:**\n")
	fmt.Fprintf(&sb, "- User Name: %s\n", in.User.UserName)
	fmt.Fprintf(&sb, "- User Designation: %s\n", in.User.UserDesignation)
	fmt.Fprintf(&sb, "- Provider Name: %s\n", in.Provider.ProviderName)
	fmt.Fprintf(&sb, "- User Email: %s\n", in.User.UserEmail)
	fmt.Fprintf(&sb, "- User Phone: %s\n", in.User.UserPhone)
	fmt.Fprintf(&sb, "- User Fax: %s\n", in.User.UserFax)
	sb.WriteString(`
---
Now, generate the complete official appeal based on all the above instructions and data.
`)
	return sb.String()
}

// clarificationFragment embeds the user's answers to the follow-up
// questions. These answers are the foundation of the appeal argument.
func clarificationFragment(answers string) string {
	return fmt.Sprintf(`
**CRITICAL USER-PROVIDED CLARIFICATIONS:**
You previously asked the user follow-up questions based on the denial reason. Their response is below. This information is the MOST IMPORTANT part of the context and MUST be the foundation of your appeal argument.

USER'S ANSWERS:
%q
`, answers)
}

// fileAnalysisFragment is appended only when attachments accompany the
// request.
const fileAnalysisFragment = `
**File Analysis Instructions:**
To build the strongest case, you must carefully analyze ALL provided documents.
- If the documents appear to be **medical records** (e.g., physician's notes, lab results, imaging reports), you MUST use them to construct a highly detailed and compelling argument for medical necessity. Go beyond the generic template argument and quote specific findings, dates, and clinical justifications from the records.
- For other documents like EOBs or previous correspondence, extract key facts, dates, and reference numbers to make the appeal as evidence-based as possible.
`

// stateContextFragment asks for jurisdiction-specific framing based on
// the provider's state.
func stateContextFragment(state string) string {
	return fmt.Sprintf(`
**Legal & State Context:**
The rendering provider is located in **%s**. If applicable, you should subtly reference any relevant state-specific regulations, such as prompt payment laws, timely filing statutes, or patient protection acts for that state, to strengthen the appeal.
`, state)
}
