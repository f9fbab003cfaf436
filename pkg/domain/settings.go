package domain

// Settings group names as used in persisted rows and admin dotted paths,
// e.g. "stt.language" or "ti.topics".
const (
	SpeechGroup   = "stt"
	AnalysisGroup = "ti"
)

const (
	SummarizeOff = "off"
	SummarizeV2  = "v2"

	UILanguageEN = "en"
	UILanguageVI = "vi"

	// VietnameseDefaultModel is applied when the recognition language is
	// Vietnamese and the chat picked no model: the general-purpose model
	// rejects vi audio without it.
	VietnameseDefaultModel = "nova-2"
)

// SpeechSettings is the per-chat speech recognition group. An empty Model
// means the provider default. DetectLanguage and Language may both be stored;
// DetectLanguage wins when building a request.
type SpeechSettings struct {
	Language       string
	DetectLanguage bool
	Model          string
}

// AnalysisSettings is the per-chat text intelligence group. Summarize is
// SummarizeOff or SummarizeV2.
type AnalysisSettings struct {
	Language  string
	Summarize string
	Topics    bool
	Intents   bool
	Sentiment bool
}

func DefaultSpeechSettings() SpeechSettings {
	return SpeechSettings{
		Language:       "en-US",
		DetectLanguage: false,
		Model:          "",
	}
}

func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{
		Language:  "en",
		Summarize: SummarizeV2,
		Topics:    true,
		Intents:   true,
		Sentiment: true,
	}
}
