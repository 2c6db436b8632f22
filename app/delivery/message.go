package delivery

import (
	"fmt"
	"html"
	"time"
	"unicode/utf8"
)

// Telegram rejects messages over 4096 characters; the body cap leaves room
// for the header and footer.
const (
	maxBodyLength    = 4000
	truncationSuffix = " … [truncated]"
)

// formatScript wraps the generated script in the delivery template. The
// script is HTML-escaped because the message is sent with HTML parse mode.
func formatScript(script string, now time.Time) string {
	body := truncateBody(html.EscapeString(script))
	return fmt.Sprintf("📰 <b>popwire - Daily Tech News</b>\n📅 %s\n\n%s\n\n---\n<i>Generated by popwire</i>",
		now.Format("Monday, January 02, 2006"), body)
}

// formatError wraps a failure reason in the error-notification template.
func formatError(reason string) string {
	return fmt.Sprintf("❌ <b>Automation Error</b>\n\n%s\n\nPlease check the scheduler logs.",
		truncateBody(html.EscapeString(reason)))
}

// truncateBody caps the body at the transport limit, appending the
// truncation marker when anything was cut. The cut backs up to a rune
// boundary so the result stays valid UTF-8.
func truncateBody(body string) string {
	if len(body) <= maxBodyLength {
		return body
	}

	cut := maxBodyLength
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + truncationSuffix
}
