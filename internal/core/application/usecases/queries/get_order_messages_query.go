package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetOrderMessagesQueryIsNotConstructed = errors.New(
		"GetOrderMessagesQuery must be created via NewGetOrderMessagesQuery constructor",
	)
)

// MessageView is one chat log entry.
type MessageView struct {
	ID         kernel.UUID
	OrderID    string
	Content    string
	SenderType string
	Recipients []string
	MediaID    *string
	MediaType  *string
	CreatedAt  time.Time
}

// GetOrderMessagesQuery reads the chat log of an order, oldest first.
type GetOrderMessagesQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderMessagesQuery(orderID string) (GetOrderMessagesQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderMessagesQuery{}, errs.NewValueIsRequiredError("order id")
	}

	return GetOrderMessagesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMessagesQueryIsNotConstructed)
}

func (q GetOrderMessagesQuery) OrderID() string {
	return q.orderID
}

type GetOrderMessagesQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderMessagesQueryHandler(db *gorm.DB) GetOrderMessagesQueryHandler {
	return GetOrderMessagesQueryHandler{db: db}
}

// Handle returns an empty list for an order without messages, including an
// order that does not exist.
func (h GetOrderMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMessagesQuery,
) ([]MessageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			content,
			sender_type,
			recipients,
			media_id,
			media_type,
			created_at
		FROM messages
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]MessageView, 0)
	for rows.Next() {
		var view MessageView
		var id uuid.UUID
		var recipients []byte
		var mediaID, mediaType sql.NullString

		err = rows.Scan(
			&id,
			&view.OrderID,
			&view.Content,
			&view.SenderType,
			&recipients,
			&mediaID,
			&mediaType,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		messageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = messageID

		view.Recipients = make([]string, 0)
		if len(recipients) > 0 {
			if err = json.Unmarshal(recipients, &view.Recipients); err != nil {
				return nil, err
			}
		}
		if mediaID.Valid {
			view.MediaID = &mediaID.String
		}
		if mediaType.Valid {
			view.MediaType = &mediaType.String
		}

		messages = append(messages, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
