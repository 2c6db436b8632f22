package cfg

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func validCfg() *Cfg {
	return &Cfg{
		Backend:          "gemini",
		GeminiAPIKey:     "test-gemini-key",
		GeminiModel:      "gemini-2.0-flash",
		OpenAIAPIKey:     "test-openai-key",
		OpenAIModel:      "gpt-4o-mini",
		TelegramBotToken: "test-bot-token",
		TelegramChatID:   "12345",
		SitePath:         "site.yml",
		UserAgent:        "Test Agent",
	}
}

func TestValidateGeminiBackend(t *testing.T) {
	cfg := validCfg()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}

	cfg.GeminiAPIKey = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing Gemini API key")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Expected error to name GEMINI_API_KEY, got: %v", err)
	}
}

func TestValidateOpenAIBackend(t *testing.T) {
	cfg := validCfg()
	cfg.Backend = "openai"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}

	cfg.OpenAIAPIKey = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing OpenAI API key")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("Expected error to name OPENAI_API_KEY, got: %v", err)
	}
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := validCfg()
	cfg.Backend = "yandex"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestValidateTelegramCredentials(t *testing.T) {
	cfg := validCfg()
	cfg.TelegramBotToken = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing bot token")
	}
	if !strings.Contains(err.Error(), "TELEGRAM_BOT_TOKEN") {
		t.Errorf("Expected error to name TELEGRAM_BOT_TOKEN, got: %v", err)
	}

	cfg = validCfg()
	cfg.TelegramChatID = ""
	err = cfg.Validate()
	if err == nil {
		t.Fatal("Expected error for missing chat ID")
	}
	if !strings.Contains(err.Error(), "TELEGRAM_CHAT_ID") {
		t.Errorf("Expected error to name TELEGRAM_CHAT_ID, got: %v", err)
	}
}
