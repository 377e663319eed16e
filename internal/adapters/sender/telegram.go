package sender

import (
	"context"
	"fmt"
	"moviemagnet/internal/core/domain"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramBot is the subset of *bot.Bot used for replies.
type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *bot.SendChatActionParams) (bool, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

const TelegramMessageLimit = 4096

func (s *Telegram) SendText(ctx context.Context, message *domain.Message, text string, mode domain.ParseMode) error {
	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    message.ChatID,
			Text:      chunk,
			ParseMode: models.ParseMode(mode),
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", message.ChatID).Msg("failed to send text response")
			return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
	}

	return nil
}

func (s *Telegram) SendPresentation(ctx context.Context, message *domain.Message, p domain.Presentation) error {
	keyboard := make([][]models.InlineKeyboardButton, len(p.Buttons))
	for i, row := range p.Buttons {
		keyboard[i] = make([]models.InlineKeyboardButton, len(row))
		for j, button := range row {
			keyboard[i][j] = models.InlineKeyboardButton{Text: button.Label, URL: button.URL}
		}
	}

	params := &bot.SendPhotoParams{
		ChatID:      message.ChatID,
		Photo:       &models.InputFileString{Data: p.PhotoURL},
		Caption:     p.Caption,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: &models.InlineKeyboardMarkup{InlineKeyboard: keyboard},
	}

	_, err := s.bot.SendPhoto(ctx, params)
	if err != nil {
		log.Error().Err(err).Int64("chatId", message.ChatID).Msg("failed to send photo response")
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

// NotifyAndReturnError sends the generic apology and hands back err. The error itself never reaches the chat.
func (s *Telegram) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	log.Error().Err(err).Int64("chatId", message.ChatID).Msg("request failed")

	_, sendErr := s.bot.SendMessage(context.WithoutCancel(ctx), &bot.SendMessageParams{
		ChatID: message.ChatID,
		Text:   domain.GenericErrorText,
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Int64("chatId", message.ChatID).Msg("failed to send error notification")
	}

	return err
}

var ChatActionRepeat = 5 * time.Second

func (s *Telegram) SendChatAction(ctx context.Context, chatID int64, action domain.Action) {
	log.Debug().Int64("chatID", chatID).Msg("starting action routine")

	var chatAction models.ChatAction
	switch action {
	case domain.SendingPhoto:
		chatAction = models.ChatActionUploadPhoto
	case domain.Typing:
		chatAction = models.ChatActionTyping
	default:
		chatAction = models.ChatActionTyping
	}

	for {
		log.Debug().Int64("chatID", chatID).Msg("transmitting action")
		_, err := s.bot.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: chatAction,
		})
		if err != nil {
			if ctx.Err() == nil {
				log.Err(err).Msg("error sending chat action")
			}
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Int64("chatID", chatID).Msg("done, stopping action routine")
			return
		case <-time.After(ChatActionRepeat):
		}
	}
}

// chunkText splits text into pieces of at most limit bytes, preferring line breaks and never splitting a rune.
func chunkText(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8.RuneStart(text[cut]) {
				cut--
			}
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}

	if text != "" {
		chunks = append(chunks, text)
	}

	return chunks
}
