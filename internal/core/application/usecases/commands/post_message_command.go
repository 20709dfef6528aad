package commands

import (
	"context"
	"errors"
	"strings"

	"atelier/internal/core/domain/model/message"
	"atelier/internal/pkg/guard"
)

var ErrPostMessageCommandIsNotConstructed = errors.New(
	"PostMessageCommand must be created via NewPostMessageCommand constructor",
)

// PostMessageCommand appends an entry to an order's chat thread.
type PostMessageCommand struct {
	orderID    string
	senderType message.SenderType
	content    string
	recipients []string
	media      *message.Media
	guard      guard.ConstructorGuard
}

// NewPostMessageCommand validates the order id and sender type. Empty media
// fields mean no attachment.
func NewPostMessageCommand(
	orderID string,
	senderType string,
	content string,
	recipients []string,
	mediaID string,
	mediaType string,
) (PostMessageCommand, error) {
	id, idErr := requireOrderID(orderID)
	st, senderErr := message.ParseSenderType(senderType)
	if err := errors.Join(idErr, senderErr); err != nil {
		return PostMessageCommand{}, err
	}

	var media *message.Media
	if mediaID = strings.TrimSpace(mediaID); mediaID != "" {
		media = &message.Media{ID: mediaID, Type: strings.TrimSpace(mediaType)}
	}

	return PostMessageCommand{
		orderID:    id,
		senderType: st,
		content:    strings.TrimSpace(content),
		recipients: recipients,
		media:      media,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PostMessageCommand) Validate() error {
	return c.guard.Validate(ErrPostMessageCommandIsNotConstructed)
}

// PostMessageCommandHandler stores a chat message.
type PostMessageCommandHandler struct {
	uowFactory MessageUoWFactory
}

func NewPostMessageCommandHandler(uowFactory MessageUoWFactory) PostMessageCommandHandler {
	return PostMessageCommandHandler{uowFactory: uowFactory}
}

func (h PostMessageCommandHandler) Handle(ctx context.Context, cmd PostMessageCommand) (*message.Message, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	msg, err := message.NewMessage(cmd.orderID, cmd.senderType, cmd.content, cmd.recipients, cmd.media)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MessageRepository().Add(ctx, msg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return msg, nil
}
