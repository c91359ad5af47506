package gemini

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/hshah/appealforge/internal/appeal"
)

func TestEncodeAttachment(t *testing.T) {
	a := appeal.Attachment{
		Name:     "eob.pdf",
		MIMEType: "application/pdf",
		Data:     []byte("%PDF-1.4 fake"),
	}

	ef, err := EncodeAttachment(a)
	if err != nil {
		t.Fatalf("EncodeAttachment failed: %v", err)
	}
	if ef.MIMEType != "application/pdf" {
		t.Errorf("Expected MIME type application/pdf, got %s", ef.MIMEType)
	}

	decoded, err := base64.StdEncoding.DecodeString(ef.Data)
	if err != nil {
		t.Fatalf("Payload is not valid base64: %v", err)
	}
	if string(decoded) != "%PDF-1.4 fake" {
		t.Errorf("Round-tripped payload does not match original bytes")
	}
}

func TestEncodeAttachmentFailures(t *testing.T) {
	_, err := EncodeAttachment(appeal.Attachment{Name: "empty.png", MIMEType: "image/png"})
	if err == nil {
		t.Error("Expected error for attachment with no data")
	}
	if err != nil && !strings.Contains(err.Error(), "empty.png") {
		t.Errorf("Expected error to name the file, got %v", err)
	}

	_, err = EncodeAttachment(appeal.Attachment{Name: "mystery", Data: []byte("x")})
	if err == nil {
		t.Error("Expected error for attachment without MIME type")
	}
}

func TestEncodeAllPreservesOrder(t *testing.T) {
	attachments := []appeal.Attachment{
		{Name: "a.pdf", MIMEType: "application/pdf", Data: []byte("aaa")},
		{Name: "b.png", MIMEType: "image/png", Data: []byte("bbb")},
		{Name: "c.jpg", MIMEType: "image/jpeg", Data: []byte("ccc")},
	}

	encoded, err := EncodeAll(context.Background(), attachments)
	if err != nil {
		t.Fatalf("EncodeAll failed: %v", err)
	}
	if len(encoded) != 3 {
		t.Fatalf("Expected 3 encoded files, got %d", len(encoded))
	}
	for i, name := range []string{"a.pdf", "b.png", "c.jpg"} {
		if encoded[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, encoded[i].Name)
		}
	}
}

func TestEncodeAllFailFast(t *testing.T) {
	attachments := []appeal.Attachment{
		{Name: "ok.pdf", MIMEType: "application/pdf", Data: []byte("fine")},
		{Name: "broken.png", MIMEType: "image/png"}, // no data
	}

	encoded, err := EncodeAll(context.Background(), attachments)
	if err == nil {
		t.Fatal("Expected batch to fail when one attachment cannot be encoded")
	}
	if encoded != nil {
		t.Error("Expected no partial result on failure")
	}
	if !strings.Contains(err.Error(), "broken.png") {
		t.Errorf("Expected error to name the failing file, got %v", err)
	}
}

func TestEncodeAllEmpty(t *testing.T) {
	encoded, err := EncodeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("EncodeAll on empty input failed: %v", err)
	}
	if len(encoded) != 0 {
		t.Errorf("Expected empty result, got %d entries", len(encoded))
	}
}

func TestMIMETypeForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		ok       bool
	}{
		{"scan.pdf", "application/pdf", true},
		{"xray.PNG", "image/png", true},
		{"photo.jpg", "image/jpeg", true},
		{"photo.jpeg", "image/jpeg", true},
		{"notes.docx", "", false},
		{"noext", "", false},
	}

	for _, tc := range tests {
		mt, err := MIMETypeForPath(tc.path)
		if tc.ok && err != nil {
			t.Errorf("MIMETypeForPath(%q): unexpected error %v", tc.path, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("MIMETypeForPath(%q): expected error", tc.path)
		}
		if mt != tc.expected {
			t.Errorf("MIMETypeForPath(%q): expected %q, got %q", tc.path, tc.expected, mt)
		}
	}
}
