package queries

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists orders newest first, optionally filtered by status.
//
// Example:
//
//	query, err := NewGetOrdersQuery("accepted")
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the query. An empty status lists every order.
func NewGetOrdersQuery(status string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	status = strings.TrimSpace(status)
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	q.status = parsed
	q.hasStatus = true

	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the filter, if any.
func (q GetOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}
