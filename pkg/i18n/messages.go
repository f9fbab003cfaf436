package i18n

import (
	"strings"

	"github.com/tdvo/deepgram-telegram-bot/pkg/domain"
)

var en = map[string]string{
	"start_message": "Send me an audio file or voice note, and I'll return a transcription as a .txt file.",
	"help_message": "Usage:\n" +
		"- Send a voice message, audio, or upload an audio file.\n" +
		"- I will process and reply with a text file.\n\n" +
		"Interface language:\n" +
		"/language <English|Vietnamese|en|vi> — set bot language\n\n" +
		"Speech recognition options:\n" +
		"/speechlang <English|Vietnamese|en|vi|auto> — set speech language\n" +
		"/status — show current language/model settings\n" +
		"/lang <code|auto> — set language (e.g., en-US, vi) or auto-detect\n" +
		"/detect <on|off> — toggle language detection\n" +
		"/model <name> — set model (e.g., nova-2). Leave blank to reset default.\n\n" +
		"Text Intelligence:\n" +
		"/analyze <text> — summarize, topics, intents, sentiment\n" +
		"/anstatus — show TI settings\n" +
		"/summarize <off|v2>\n" +
		"/topics <on|off>\n" +
		"/intents <on|off>\n" +
		"/sentiment <on|off>\n" +
		"/anlang <code> — TI language (e.g., en, vi)\n" +
		"Or upload a .txt/.md/.srt/.vtt file to analyze contents.",
	"analyze_requires_upgrade": "Text Intelligence isn't available right now.",
	"couldnt_download_file":    "Couldn't download that file.",
	"analyzing_text":           "Analyzing text…",
	"analyzing_file_text":      "Analyzing file text…",
	"transcribing":             "Transcribing… this may take a moment.",
	"transcription_empty":      "Transcription came back empty. The audio may be too quiet or unsupported.",
	"transcription_caption":    "Here is your transcription.",
	"transcribe_failed":        "Sorry, I couldn't transcribe that audio.",
	"transcribe_failed_vi_model": "Deepgram rejected Vietnamese on the current model.\n" +
		"Set: /lang vi and /model nova-2, and resend the audio.",
	"ui_lang_set_en":      "Interface language set to English.",
	"ui_lang_set_vi":      "Đã chuyển ngôn ngữ hiển thị sang Tiếng Việt.",
	"language_usage":      "Usage: /language <English|Vietnamese|en|vi>",
	"speechlang_usage":    "Usage: /speechlang <English|Vietnamese|en|vi|auto>",
	"speechlang_set_en":   "Speech recognition language set to English (en-US).",
	"speechlang_set_vi":   "Speech recognition language set to Vietnamese (vi).",
	"speechlang_set_auto": "Language detection enabled for speech recognition.",
}

var vi = map[string]string{
	"start_message": "Gửi cho tôi file âm thanh hoặc voice note, tôi sẽ trả về bản ghi (.txt).",
	"help_message": "Cách dùng:\n" +
		"- Gửi voice, audio hoặc tải lên file âm thanh.\n" +
		"- Tôi sẽ xử lý và gửi lại file văn bản.\n\n" +
		"Ngôn ngữ giao diện:\n" +
		"/language <English|Vietnamese|en|vi> — đổi ngôn ngữ bot\n\n" +
		"Tùy chọn nhận dạng giọng nói:\n" +
		"/speechlang <English|Vietnamese|en|vi|auto> — đặt ngôn ngữ nhận dạng\n" +
		"/status — xem cài đặt ngôn ngữ/mô hình\n" +
		"/lang <code|auto> — đặt ngôn ngữ (vd: en-US, vi) hoặc tự động\n" +
		"/detect <on|off> — bật/tắt tự phát hiện ngôn ngữ\n" +
		"/model <name> — đặt mô hình (vd: nova-2). Bỏ trống để về mặc định.\n\n" +
		"Text Intelligence:\n" +
		"/analyze <text> — tóm tắt, chủ đề, ý định, cảm xúc\n" +
		"/anstatus — xem cài đặt TI\n" +
		"/summarize <off|v2>\n" +
		"/topics <on|off>\n" +
		"/intents <on|off>\n" +
		"/sentiment <on|off>\n" +
		"/anlang <code> — ngôn ngữ phân tích (vd: en, vi)\n" +
		"Hoặc tải lên file .txt/.md/.srt/.vtt để phân tích.",
	"analyze_requires_upgrade": "Tính năng Phân tích văn bản hiện chưa khả dụng.",
	"couldnt_download_file":    "Không tải được file.",
	"analyzing_text":           "Đang phân tích văn bản…",
	"analyzing_file_text":      "Đang phân tích nội dung file…",
	"transcribing":             "Đang chuyển giọng nói thành văn bản…",
	"transcription_empty":      "Kết quả trống. Âm thanh quá nhỏ hoặc không hỗ trợ.",
	"transcription_caption":    "Bản ghi của bạn đây.",
	"transcribe_failed":        "Xin lỗi, tôi không thể chuyển âm thanh này.",
	"transcribe_failed_vi_model": "Deepgram từ chối tiếng Việt với mô hình hiện tại.\n" +
		"Hãy đặt: /lang vi và /model nova-2, rồi gửi lại âm thanh.",
	"ui_lang_set_en":      "Đã chuyển ngôn ngữ hiển thị sang English.",
	"ui_lang_set_vi":      "Đã chuyển ngôn ngữ hiển thị sang Tiếng Việt.",
	"language_usage":      "Cú pháp: /language <English|Vietnamese|en|vi>",
	"speechlang_usage":    "Cú pháp: /speechlang <English|Vietnamese|en|vi|auto>",
	"speechlang_set_en":   "Đã đặt ngôn ngữ nhận dạng thành English (en-US).",
	"speechlang_set_vi":   "Đã đặt ngôn ngữ nhận dạng thành Tiếng Việt (vi).",
	"speechlang_set_auto": "Đã bật tự phát hiện ngôn ngữ cho nhận dạng giọng nói.",
}

// T returns the message for key in the given UI language, falling back to
// English and finally to the key itself.
func T(uiLanguage, key string) string {
	if uiLanguage == domain.UILanguageVI {
		if msg, ok := vi[key]; ok {
			return msg
		}
	}
	if msg, ok := en[key]; ok {
		return msg
	}
	return key
}

// ParseUILanguage maps user input to a supported UI language code. It returns
// an empty string for unrecognized input.
func ParseUILanguage(arg string) string {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "vi", "vietnamese", "viet", "tiếng việt", "tieng viet", "vn":
		return domain.UILanguageVI
	case "en", "english":
		return domain.UILanguageEN
	}
	return ""
}
