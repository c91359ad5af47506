// Package gemini is the boundary to the generative text service. It
// issues the two requests the wizard makes (a structured clarification
// request and a free-text letter request) and normalizes their failures.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/hshah/appealforge/internal/appeal"
)

// DefaultModel is used unless overridden with -model.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrMalformedResponse means the clarification call succeeded but the
	// structured payload could not be parsed or lacks a required field.
	ErrMalformedResponse = errors.New("model did not return the expected question format")

	// ErrEmptyResponse means the letter call returned a present but empty
	// text result.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// clarificationSchema constrains the clarification response to a JSON
// object with a one-sentence analysis and an ordered question list.
var clarificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"analysis": {
			Type:        genai.TypeString,
			Description: "A brief, one-sentence analysis of the denial reason.",
		},
		"questions": {
			Type:        genai.TypeArray,
			Description: "A list of targeted questions to ask the user to gather necessary information for the appeal.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"analysis", "questions"},
}

// Client wraps the genai API for the two wizard calls. It performs no
// retries; failures surface to the caller, which owns retry policy.
type Client struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewClient builds a gateway client. An empty model selects DefaultModel
// and a nil logger disables logging.
func NewClient(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{client: c, model: model, log: log}, nil
}

// Clarify sends the clarification prompt with a structured-output
// directive and parses the result. Transport failures are returned
// wrapped; a response that parses but lacks either required field is
// ErrMalformedResponse.
func (c *Client) Clarify(ctx context.Context, prompt string) (appeal.Clarification, error) {
	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   clarificationSchema,
		},
	)
	if err != nil {
		c.log.Error("clarification request failed", zap.Error(err))
		return appeal.Clarification{}, fmt.Errorf("analyzing denial reason: %w", err)
	}

	clar, err := parseClarification(resp.Text())
	if err != nil {
		c.log.Error("clarification response malformed", zap.Error(err))
		return appeal.Clarification{}, err
	}

	c.log.Info("clarification request complete",
		zap.Int("questions", len(clar.Questions)),
		zap.Duration("elapsed", time.Since(start)))
	return clar, nil
}

// parseClarification decodes the structured payload. Pointer fields
// distinguish a missing key from a present-but-empty one.
func parseClarification(text string) (appeal.Clarification, error) {
	var raw struct {
		Analysis  *string   `json:"analysis"`
		Questions *[]string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return appeal.Clarification{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.Analysis == nil || raw.Questions == nil {
		return appeal.Clarification{}, ErrMalformedResponse
	}
	return appeal.Clarification{
		Analysis:  *raw.Analysis,
		Questions: *raw.Questions,
	}, nil
}

// GenerateLetter sends the appeal prompt together with zero or more
// encoded attachments as a single multi-part request and returns the
// letter text verbatim.
func (c *Client) GenerateLetter(ctx context.Context, prompt string, files []EncodedFile) (string, error) {
	start := time.Now()
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, f := range files {
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return "", fmt.Errorf("decoding payload for %s: %w", f.Name, err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, f.MIMEType))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		nil,
	)
	if err != nil {
		c.log.Error("letter request failed", zap.Error(err))
		return "", fmt.Errorf("generating appeal letter: %w", err)
	}

	letter := resp.Text()
	if letter == "" {
		c.log.Error("letter request returned no text")
		return "", ErrEmptyResponse
	}

	c.log.Info("letter request complete",
		zap.Int("attachments", len(files)),
		zap.Int("letter_bytes", len(letter)),
		zap.Duration("elapsed", time.Since(start)))
	return letter, nil
}
