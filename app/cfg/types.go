package cfg

type Cfg struct {
	// Summarization backend
	Backend      string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Delivery
	TelegramBotToken string
	TelegramChatID   string

	// Application configuration
	SitePath string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
