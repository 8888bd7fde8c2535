package bot

import (
	"fmt"
	"strings"

	"github.com/Rayxworld/Vegil/internal/verdict"
)

func levelEmoji(l verdict.Level) string {
	switch l {
	case verdict.LevelCritical:
		return "🔴"
	case verdict.LevelHigh:
		return "🟠"
	case verdict.LevelMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// FormatVerdict renders a verdict as a Telegram Markdown message.
func FormatVerdict(v verdict.Verdict) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s *Risk Score:* %d/100 (%s)\n", levelEmoji(v.Level), v.Score, v.Level))
	if v.URL != "" {
		sb.WriteString(fmt.Sprintf("URL: %s\n", v.URL))
	}
	if v.Handle != "" {
		sb.WriteString(fmt.Sprintf("Handle: @%s\n", v.Handle))
	}

	sb.WriteString("\n*Flags:*\n")
	for _, f := range v.Flags {
		sb.WriteString(fmt.Sprintf("• %s\n", f))
	}

	if v.Detail != "" {
		sb.WriteString(fmt.Sprintf("\n%s", v.Detail))
	}
	return sb.String()
}
