package i18n

import (
	"testing"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

func TestT(t *testing.T) {
	if got := T(domain.UILanguageVI, "transcribing"); got != vi["transcribing"] {
		t.Errorf("vi lookup = %q", got)
	}
	if got := T(domain.UILanguageEN, "transcribing"); got != en["transcribing"] {
		t.Errorf("en lookup = %q", got)
	}
	// Unknown UI language falls back to English.
	if got := T("de", "transcribing"); got != en["transcribing"] {
		t.Errorf("fallback lookup = %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := T(domain.UILanguageEN, "no_such_key"); got != "no_such_key" {
		t.Errorf("missing key = %q", got)
	}
}

func TestMessageTablesMatch(t *testing.T) {
	for key := range en {
		if _, ok := vi[key]; !ok {
			t.Errorf("key %q missing from vi table", key)
		}
	}
	for key := range vi {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from en table", key)
		}
	}
}

func TestParseUILanguage(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
	}{
		{"vi", domain.UILanguageVI},
		{"Vietnamese", domain.UILanguageVI},
		{"TIENG VIET", domain.UILanguageVI},
		{"tiếng việt", domain.UILanguageVI},
		{"vn", domain.UILanguageVI},
		{"en", domain.UILanguageEN},
		{"English", domain.UILanguageEN},
		{" en ", domain.UILanguageEN},
		{"de", ""},
		{"", ""},
	}

	for _, test := range tests {
		if got := ParseUILanguage(test.arg); got != test.expected {
			t.Errorf("ParseUILanguage(%q) = %q, want %q", test.arg, got, test.expected)
		}
	}
}
