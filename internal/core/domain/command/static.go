package command

import (
	"context"
	"fmt"
	"moviemagnet/internal/core/domain"
	"moviemagnet/internal/core/port"
	"time"

	"github.com/rs/zerolog"
)

const greetingTemplate = "Hello %s, How may I help you today?"

// unknownUser is used in the greeting when the sender has no display name.
const unknownUser = "there"

const aboutText = `🎬 Welcome to MovieMagnet! 🤖

Discover the latest blockbusters effortlessly. 🌟
Instantly download your favorite movies in HD. 🎥
Stay ahead with our curated selection of the newest releases. 🍿
Experience cinema at your fingertips with MovieMagnet! 🌟🤖`

const helpText = `
🤖 *MovieMagnet Bot Help* 🤖


Use the following *commands* to interact with the bot:

/help - Display available commands and their descriptions.
/about - Learn more about MovieMagnet bot.
/randommovie - Get a random movie recommendation.
/displaygenres - Display all available genres.
/genre (Movie genre Choice) - Display Random Movie With Specified Genre (example : /genre crime) 
`

// Static replies with a fixed text that does not depend on the store.
type Static struct {
	textSender port.TextSender
	kind       domain.CommandKind
	mode       domain.ParseMode
	text       func(message *domain.Message) string
}

func NewStart(sender port.TextSender) *Static {
	return &Static{
		textSender: sender,
		kind:       domain.CommandStart,
		mode:       domain.PlainText,
		text: func(message *domain.Message) string {
			name := message.Username
			if name == "" {
				name = unknownUser
			}
			return fmt.Sprintf(greetingTemplate, name)
		},
	}
}

func NewAbout(sender port.TextSender) *Static {
	return &Static{
		textSender: sender,
		kind:       domain.CommandAbout,
		mode:       domain.PlainText,
		text:       func(*domain.Message) string { return aboutText },
	}
}

func NewHelp(sender port.TextSender) *Static {
	return &Static{
		textSender: sender,
		kind:       domain.CommandHelp,
		mode:       domain.Markdown,
		text:       func(*domain.Message) string { return helpText },
	}
}

func (s *Static) GetCommand() domain.CommandKind {
	return s.kind
}

func (s *Static) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := zerolog.Ctx(ctx).With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", string(s.GetCommand())).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.textSender.SendText(ctx, message, s.text(message), s.mode)
	if err != nil {
		return fmt.Errorf("error sending %s response: %w", s.GetCommand(), err)
	}

	return nil
}
