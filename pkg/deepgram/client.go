package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultHost = "https://api.deepgram.com"

const defaultMimeType = "audio/ogg"

type client struct {
	apiKey string
	host   string
	hc     *http.Client
}

func NewClient(apiKey string) (*client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	return &client{
		apiKey: apiKey,
		host:   defaultHost,
		hc:     &http.Client{},
	}, nil
}

// Transcribe sends pre-recorded audio to the listen API. Smart formatting and
// punctuation are always requested so transcripts read as plain prose.
func (c *client) Transcribe(ctx context.Context, audio []byte, mimeType string, opts TranscribeOptions) (*TranscriptionResponse, error) {
	q := opts.values()
	q.Set("smart_format", "true")
	q.Set("punctuate", "true")

	if mimeType == "" {
		mimeType = defaultMimeType
	}

	body, err := c.post(ctx, "/v1/listen", q, mimeType, bytes.NewReader(audio))
	if err != nil {
		return nil, err
	}

	var resp TranscriptionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding transcription response: %w", err)
	}
	return &resp, nil
}

// Analyze sends text to the read API and returns the raw response
// pretty-printed as JSON.
func (c *client) Analyze(ctx context.Context, text string, opts AnalyzeOptions) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	body, err := c.post(ctx, "/v1/read", opts.values(), "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		// Not valid JSON; hand back whatever the provider sent.
		return body, nil
	}
	return pretty.Bytes(), nil
}

func (c *client) post(ctx context.Context, path string, q url.Values, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path+"?"+q.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Query:      q.Encode(),
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

// APIError is a non-2xx provider response. Query carries the request options
// so failures can be classified by what was asked for.
type APIError struct {
	StatusCode int
	Query      string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepgram: HTTP %d (%s): %s", e.StatusCode, e.Query, e.Body)
}
