package handlers

import (
	"errors"
	"testing"

	"github.com/go-telegram/bot/models"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

func TestCommandArg(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"/model nova-2", "nova-2"},
		{"/model", ""},
		{"/model ", ""},
		{"/analyze some longer text", "some longer text"},
		{"/lang  vi ", "vi"},
	}

	for _, test := range tests {
		if got := commandArg(test.text); got != test.expected {
			t.Errorf("commandArg(%q) = %q, want %q", test.text, got, test.expected)
		}
	}
}

func TestParseAdminSetArgs(t *testing.T) {
	tests := []struct {
		arg     string
		chatID  int64
		path    string
		value   string
		wantErr bool
	}{
		{"123 stt.language vi", 123, "stt.language", "vi", false},
		{"-100200 ti.summarize off", -100200, "ti.summarize", "off", false},
		{"5 stt.model nova 2 general", 5, "stt.model", "nova 2 general", false},
		{"abc stt.language vi", 0, "", "", true},
		{"123 stt.language", 0, "", "", true},
		{"", 0, "", "", true},
	}

	for _, test := range tests {
		chatID, path, value, err := parseAdminSetArgs(test.arg)
		if (err != nil) != test.wantErr {
			t.Errorf("parseAdminSetArgs(%q): err = %v, wantErr %t", test.arg, err, test.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if chatID != test.chatID || path != test.path || value != test.value {
			t.Errorf("parseAdminSetArgs(%q) = (%d, %q, %q), want (%d, %q, %q)",
				test.arg, chatID, path, value, test.chatID, test.path, test.value)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	update := func(userID int64) *models.Update {
		return &models.Update{Message: &models.Message{From: &models.User{ID: userID}}}
	}

	if !isAdmin(update(42), 42) {
		t.Errorf("expected admin match")
	}
	if isAdmin(update(43), 42) {
		t.Errorf("expected admin mismatch")
	}
	if isAdmin(update(0), 0) {
		t.Errorf("unset admin id must never match")
	}
	if isAdmin(&models.Update{}, 42) {
		t.Errorf("update without message must not match")
	}
}

func TestIsAudioMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      *models.Message
		expected bool
	}{
		{"voice", &models.Message{Voice: &models.Voice{FileID: "v"}}, true},
		{"audio", &models.Message{Audio: &models.Audio{FileID: "a"}}, true},
		{"video note", &models.Message{VideoNote: &models.VideoNote{FileID: "n"}}, true},
		{"mp3 document", &models.Message{Document: &models.Document{FileID: "d", FileName: "song.MP3"}}, true},
		{"wav document", &models.Message{Document: &models.Document{FileID: "d", FileName: "clip.wav"}}, true},
		{"pdf document", &models.Message{Document: &models.Document{FileID: "d", FileName: "paper.pdf"}}, false},
		{"plain text", &models.Message{Text: "hello"}, false},
		{"no message", nil, false},
	}

	for _, test := range tests {
		if got := IsAudioMessage(&models.Update{Message: test.msg}); got != test.expected {
			t.Errorf("%s: IsAudioMessage = %t, want %t", test.name, got, test.expected)
		}
	}
}

func TestIsTextDocument(t *testing.T) {
	tests := []struct {
		name     string
		msg      *models.Message
		expected bool
	}{
		{"txt", &models.Message{Document: &models.Document{FileName: "notes.txt"}}, true},
		{"markdown", &models.Message{Document: &models.Document{FileName: "README.md"}}, true},
		{"subtitles", &models.Message{Document: &models.Document{FileName: "movie.SRT"}}, true},
		{"webvtt", &models.Message{Document: &models.Document{FileName: "talk.vtt"}}, true},
		{"audio", &models.Message{Document: &models.Document{FileName: "clip.ogg"}}, false},
		{"no document", &models.Message{Text: "hi"}, false},
		{"no message", nil, false},
	}

	for _, test := range tests {
		if got := IsTextDocument(&models.Update{Message: test.msg}); got != test.expected {
			t.Errorf("%s: IsTextDocument = %t, want %t", test.name, got, test.expected)
		}
	}
}

func TestTranscriptFilename(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"voice.ogg", "voice.txt"},
		{"Meeting Notes.m4a", "Meeting Notes.txt"},
		{"noext", "noext.txt"},
		{"", "transcription.txt"},
	}

	for _, test := range tests {
		if got := transcriptFilename(test.name); got != test.expected {
			t.Errorf("transcriptFilename(%q) = %q, want %q", test.name, got, test.expected)
		}
	}
}

func TestDecodeText(t *testing.T) {
	if got := decodeText([]byte("xin chào")); got != "xin chào" {
		t.Errorf("utf-8 decode = %q", got)
	}
	// 0xE9 is 'é' in Latin-1 but invalid standalone UTF-8.
	if got := decodeText([]byte{'c', 'a', 'f', 0xE9}); got != "café" {
		t.Errorf("latin-1 fallback = %q", got)
	}
}

func TestAdminSetFailureText(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"validation with hint",
			&domain.ValidationError{Kind: domain.ValidationBadEnum, Field: "summarize", Hint: "expected off|v2"},
			"expected off|v2\n" + adminSetUsage,
		},
		{
			"validation without hint",
			&domain.ValidationError{Kind: domain.ValidationUnknownField, Field: "nosuch"},
			"unknown-field: nosuch\n" + adminSetUsage,
		},
		{
			"non-validation failure stays generic",
			errors.New("pq: connection reset"),
			"Update failed.",
		},
	}

	for _, test := range tests {
		if got := adminSetFailureText(test.err); got != test.expected {
			t.Errorf("%s: adminSetFailureText = %q, want %q", test.name, got, test.expected)
		}
	}
}
