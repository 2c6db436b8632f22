package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Default User-Agent mimics Chrome on macOS; some news sites refuse
// requests without a browser-like agent.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

type rawCfg struct {
	// Summarization backend
	Backend      string `long:"backend" env:"SUMMARY_BACKEND" default:"gemini" choice:"gemini" choice:"openai" description:"Completion backend used for script generation"`
	GeminiAPIKey string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key (required for the gemini backend)"`
	GeminiModel  string `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.0-flash" description:"Gemini model name"`
	OpenAIAPIKey string `long:"openai-api-key" env:"OPENAI_API_KEY" description:"OpenAI API key (required for the openai backend)"`
	OpenAIModel  string `long:"openai-model" env:"OPENAI_MODEL" default:"gpt-4o-mini" description:"OpenAI model name"`

	// Delivery
	TelegramBotToken string `long:"telegram-bot-token" env:"TELEGRAM_BOT_TOKEN" description:"Telegram bot token (required)"`
	TelegramChatID   string `long:"telegram-chat-id" env:"TELEGRAM_CHAT_ID" description:"Telegram chat ID to deliver the script to (required)"`

	// Application configuration
	SitePath string `long:"site" env:"SITE_CONFIG" default:"site.yml" description:"Path to the site profile YAML file"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Backend:          raw.Backend,
		GeminiAPIKey:     raw.GeminiAPIKey,
		GeminiModel:      raw.GeminiModel,
		OpenAIAPIKey:     raw.OpenAIAPIKey,
		OpenAIModel:      raw.OpenAIModel,
		TelegramBotToken: raw.TelegramBotToken,
		TelegramChatID:   raw.TelegramChatID,
		SitePath:         raw.SitePath,
		UserAgent:        cmp.Or(raw.UserAgent, defaultUserAgent),
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every credential the run needs is present.
// Absence of any required value is a fatal startup error.
func (c *Cfg) Validate() error {
	switch c.Backend {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set (required for the gemini backend)")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set (required for the openai backend)")
		}
	default:
		return fmt.Errorf("unknown summarization backend: %s", c.Backend)
	}

	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}

	return nil
}
