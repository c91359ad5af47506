package gemini

import (
	"context"
	"errors"
	"testing"
)

func TestParseClarification(t *testing.T) {
	clar, err := parseClarification(`{"analysis":"The payer disputes medical necessity.","questions":["What symptoms were documented?","Were prior treatments attempted?"]}`)
	if err != nil {
		t.Fatalf("parseClarification failed: %v", err)
	}
	if clar.Analysis != "The payer disputes medical necessity." {
		t.Errorf("Unexpected analysis: %q", clar.Analysis)
	}
	if len(clar.Questions) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(clar.Questions))
	}
	if clar.Questions[0] != "What symptoms were documented?" {
		t.Errorf("Question order not preserved: %q", clar.Questions[0])
	}
}

func TestParseClarificationMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "the model ignored the schema"},
		{"missing questions", `{"analysis":"something"}`},
		{"missing analysis", `{"questions":["q1"]}`},
		{"empty object", `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseClarification(tc.input)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("Expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestParseClarificationEmptyValues(t *testing.T) {
	// Present-but-empty keys are not malformed: the shape contract only
	// requires both fields to exist.
	clar, err := parseClarification(`{"analysis":"","questions":[]}`)
	if err != nil {
		t.Fatalf("Expected present-but-empty fields to parse, got %v", err)
	}
	if len(clar.Questions) != 0 {
		t.Errorf("Expected no questions, got %d", len(clar.Questions))
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "", nil)
	if err == nil {
		t.Fatal("Expected error when API key is missing")
	}
}

func TestClarificationSchemaShape(t *testing.T) {
	if len(clarificationSchema.Required) != 2 {
		t.Fatalf("Expected 2 required fields, got %d", len(clarificationSchema.Required))
	}
	if _, ok := clarificationSchema.Properties["analysis"]; !ok {
		t.Error("Schema is missing the analysis property")
	}
	q, ok := clarificationSchema.Properties["questions"]
	if !ok {
		t.Fatal("Schema is missing the questions property")
	}
	if q.Items == nil {
		t.Error("Expected questions to be an array of strings")
	}
}
