// Package bot runs the Telegram front end. It accepts explicit commands
// and auto-routes bare messages to the right assessment.
package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rayxworld/Vegil/internal/scanner"
)

const startReply = `Welcome to Vegil AI Guard.

Send me a link, pasted email text, or an X handle and I will assess it.

Commands:
/link <url> - score a URL
/email <text> - score email content
/x <handle> - score an X account handle
/status - show which analysis engines are active`

// Options configures a Bot.
type Options struct {
	Token   string
	Scanner *scanner.Scanner
	Debug   bool
}

// Bot is a long-polling Telegram bot backed by a Scanner.
type Bot struct {
	api     *tgbotapi.BotAPI
	scanner *scanner.Scanner
}

func New(opts Options) (*Bot, error) {
	if opts.Token == "" {
		return nil, fmt.Errorf("bot token is empty")
	}
	api, err := tgbotapi.NewBotAPI(opts.Token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = opts.Debug
	return &Bot{api: api, scanner: opts.Scanner}, nil
}

// Run polls for updates until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.reply(update.Message, b.respond(ctx, update.Message))
		}
	}
}

func (b *Bot) respond(ctx context.Context, msg *tgbotapi.Message) string {
	if msg.IsCommand() {
		return b.respondCommand(ctx, msg.Command(), strings.TrimSpace(msg.CommandArguments()))
	}

	kind, arg := routeText(msg.Text)
	switch kind {
	case routeLink:
		return FormatVerdict(b.scanner.AssessURL(ctx, arg))
	case routeEmail:
		return FormatVerdict(b.scanner.AssessEmail(ctx, arg))
	case routeHandle:
		return FormatVerdict(b.scanner.AssessHandle(ctx, arg))
	default:
		return startReply
	}
}

func (b *Bot) respondCommand(ctx context.Context, cmd, arg string) string {
	switch cmd {
	case "start", "help":
		return startReply
	case "status":
		return b.statusReply()
	case "link":
		if arg == "" {
			return "Usage: /link <url>"
		}
		return FormatVerdict(b.scanner.AssessURL(ctx, arg))
	case "email":
		if arg == "" {
			return "Usage: /email <pasted email text>"
		}
		return FormatVerdict(b.scanner.AssessEmail(ctx, arg))
	case "x":
		if arg == "" {
			return "Usage: /x <handle>"
		}
		return FormatVerdict(b.scanner.AssessHandle(ctx, arg))
	default:
		if suggestion, ok := Suggest(cmd); ok {
			return fmt.Sprintf("Unknown command /%s. Did you mean /%s?", cmd, suggestion)
		}
		return fmt.Sprintf("Unknown command /%s. Try /start for a list.", cmd)
	}
}

func (b *Bot) statusReply() string {
	rep, judge := b.scanner.ProviderNames()

	var sb strings.Builder
	sb.WriteString("Vegil AI Guard status\n")
	if judge != "" {
		sb.WriteString(fmt.Sprintf("AI judgment: %s", judge))
		if model := b.scanner.JudgmentModel(); model != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", model))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("AI judgment: offline, heuristic analysis active\n")
	}
	if rep != "" {
		sb.WriteString(fmt.Sprintf("URL reputation: %s\n", rep))
	} else {
		sb.WriteString("URL reputation: heuristics only\n")
	}
	return sb.String()
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		// Markdown in user-supplied content can break parsing; retry plain.
		out.ParseMode = ""
		_, _ = b.api.Send(out)
	}
}

type routeKind int

const (
	routeNone routeKind = iota
	routeLink
	routeEmail
	routeHandle
)

// autoEmailLength is the message length past which bare text is treated
// as pasted email content.
const autoEmailLength = 50

// routeText classifies a bare (non-command) message.
func routeText(text string) (routeKind, string) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return routeNone, ""
	case strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://"):
		return routeLink, text
	case strings.HasPrefix(text, "@"):
		return routeHandle, text
	case len(text) > autoEmailLength:
		return routeEmail, text
	default:
		return routeNone, ""
	}
}
