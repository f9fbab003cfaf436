package deepgram

import (
	"net/url"
	"strconv"
)

// TranscribeOptions are the listen API request options this bot uses.
// DetectLanguage and Language are mutually exclusive on the wire; callers set
// at most one of them.
type TranscribeOptions struct {
	Language       string
	DetectLanguage bool
	Model          string
}

func (o TranscribeOptions) values() url.Values {
	q := url.Values{}
	if o.DetectLanguage {
		q.Set("detect_language", "true")
	} else if o.Language != "" {
		q.Set("language", o.Language)
	}
	if o.Model != "" {
		q.Set("model", o.Model)
	}
	return q
}

// AnalyzeOptions are the read API request options. Zero values are omitted
// from the request.
type AnalyzeOptions struct {
	Language  string
	Summarize string
	Topics    bool
	Intents   bool
	Sentiment bool
}

func (o AnalyzeOptions) values() url.Values {
	q := url.Values{}
	if o.Language != "" {
		q.Set("language", o.Language)
	}
	if o.Summarize != "" {
		q.Set("summarize", o.Summarize)
	}
	if o.Topics {
		q.Set("topics", strconv.FormatBool(o.Topics))
	}
	if o.Intents {
		q.Set("intents", strconv.FormatBool(o.Intents))
	}
	if o.Sentiment {
		q.Set("sentiment", strconv.FormatBool(o.Sentiment))
	}
	return q
}

type TranscriptionResponse struct {
	Results TranscriptionResults `json:"results"`
}

type TranscriptionResults struct {
	Channels   []Channel   `json:"channels"`
	Utterances []Utterance `json:"utterances"`
}

type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type Utterance struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}
