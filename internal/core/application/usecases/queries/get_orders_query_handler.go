package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads the order list.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders sorted by creation time, newest first. Orders created
// in the same instant are ordered by id.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := selectOrders
	args := make([]any, 0, 1)
	if status, ok := query.Status(); ok {
		sql += " WHERE o.status = ?"
		args = append(args, status.String())
	}
	sql += " ORDER BY o.created_at DESC, o.order_id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
