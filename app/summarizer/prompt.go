package summarizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/popwire/popwire/app/scraper"
)

// contentLimit caps how much of each article's content goes into the prompt.
const contentLimit = 2000

// systemInstruction encodes the formatting and tone rules for the script.
const systemInstruction = `You are a professional news script writer for TikTok/Reels financial news content.

CRITICAL RULES - MUST FOLLOW EXACTLY:

1. ORIGINAL HEADLINES: Use the EXACT headlines from the articles. Do NOT modify,
   reword, paraphrase, or dramatize them in ANY way. Copy them character-for-character.

2. NO CLICKBAIT: Write in a factual, professional, and authoritative tone like a
   news anchor. Avoid sensationalist adjectives, shocking reveals, or exaggerated
   language. No "You won't believe..." or "This changes everything!" type phrases.

3. SCRIPT STRUCTURE:
   - Hook: A neutral 1-2 sentence introduction about today's top tech/financial news
   - Body: For each news item:
     * State the ORIGINAL headline exactly as provided
     * Provide a 2-3 sentence factual summary based ONLY on the article content
   - Outro: A brief, professional closing statement (no cringe calls to action)

4. TONE: Credible, authoritative, straightforward. Like a Bloomberg or Reuters anchor.

5. DURATION: The script should be 2-3 minutes when read aloud (approximately 350-450 words).

6. LANGUAGE: Write in English unless the headlines are in another language, then match.

Format the output clearly with:
- "HOOK:" section
- "NEWS 1:" through "NEWS N:" sections (each with headline and summary)
- "OUTRO:" section`

// BuildPrompt serializes the scraped articles into the user block of the
// completion request. Article content is truncated to its first 2000
// characters; articles whose extraction degraded are labeled as such.
func BuildPrompt(siteName string, articles []scraper.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a professional TikTok/Reels news script based on these %d trending articles from %s.\n\n",
		len(articles), siteName)

	for i, article := range articles {
		content := article.Content
		if content == "" {
			content = "Content not available"
		} else {
			content = truncateContent(content)
		}
		fmt.Fprintf(&b, "ARTICLE %d:\nHEADLINE: %s\nURL: %s\nCONTENT: %s\n---\n",
			i+1, article.Title, article.URL, content)
	}

	b.WriteString(`
Remember:
- Use EXACT headlines (no modifications)
- No clickbait language
- Professional news anchor tone
- 2-3 minute duration (350-450 words)`)

	return b.String()
}

// truncateContent caps article content at the prompt limit, backing up to
// a rune boundary so the prompt stays valid UTF-8.
func truncateContent(content string) string {
	if len(content) <= contentLimit {
		return content
	}

	cut := contentLimit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}
