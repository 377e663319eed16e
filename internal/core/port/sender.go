package port

import (
	"context"
	"moviemagnet/internal/core/domain"
)

type TextSender interface {
	// SendText sends text to the chat of the given message using the given parse mode.
	SendText(ctx context.Context, message *domain.Message, text string, mode domain.ParseMode) error
	// SendChatAction sends a specified chat action (e.g., typing, sending photo) to indicate activity in a given chat.
	SendChatAction(ctx context.Context, chatID int64, action domain.Action)
	// NotifyAndReturnError sends the generic apology to the chat of the message and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}

type PhotoSender interface {
	// SendPresentation sends a photo with caption and inline link buttons to the chat of the message.
	SendPresentation(ctx context.Context, message *domain.Message, p domain.Presentation) error
}
