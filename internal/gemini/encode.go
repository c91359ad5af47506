package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hshah/appealforge/internal/appeal"
)

// EncodedFile is the transport-safe form of one attachment: the original
// MIME type plus the file bytes re-encoded as base64 text, ready to be
// inlined into a generation request.
type EncodedFile struct {
	Name     string
	MIMEType string
	Data     string // base64
}

// mimeTypes maps the accepted attachment extensions to their MIME types.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// AcceptedExtensions lists the attachment types the file picker offers.
var AcceptedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// MIMETypeForPath returns the MIME type for an accepted attachment path,
// or an error for unsupported extensions.
func MIMETypeForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mt, ok := mimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file type %q (accepted: PDF, PNG, JPG)", ext)
	}
	return mt, nil
}

// EncodeAttachment converts one attachment into its inline payload form.
func EncodeAttachment(a appeal.Attachment) (EncodedFile, error) {
	if a.MIMEType == "" {
		return EncodedFile{}, fmt.Errorf("encoding %s: missing MIME type", a.Name)
	}
	if len(a.Data) == 0 {
		return EncodedFile{}, fmt.Errorf("encoding %s: no file data", a.Name)
	}
	return EncodedFile{
		Name:     a.Name,
		MIMEType: a.MIMEType,
		Data:     base64.StdEncoding.EncodeToString(a.Data),
	}, nil
}

// EncodeAll encodes every attachment in parallel, preserving order. The
// first failure aborts the batch: no partial result is ever returned,
// so a generation request is never issued with a subset of the files.
func EncodeAll(ctx context.Context, attachments []appeal.Attachment) ([]EncodedFile, error) {
	g, _ := errgroup.WithContext(ctx)
	encoded := make([]EncodedFile, len(attachments))
	for i, a := range attachments {
		g.Go(func() error {
			ef, err := EncodeAttachment(a)
			if err != nil {
				return err
			}
			encoded[i] = ef
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}
