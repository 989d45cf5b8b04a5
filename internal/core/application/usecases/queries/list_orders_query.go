package queries

import (
	"errors"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// Paging defaults and bounds for order listings.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListOrdersQuery retrieves a page of orders, newest first. Customers see
// only their own orders; admins see everyone's. An optional status narrows
// the listing.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	status   *order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders. Page numbers
// start at 1; out-of-bounds paging values are normalized to the defaults
// rather than rejected.
func NewListOrdersQuery(
	actor kernel.Actor,
	status *order.Status,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setActor(actor); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := query.setStatus(status); err != nil {
		return ListOrdersQuery{}, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	query.page = page
	query.pageSize = pageSize

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns who is listing orders.
func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the normalized page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListOrdersQuery) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	q.actor = actor
	return nil
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// ListOrdersQueryResponse is one page of the order listing.
type ListOrdersQueryResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	Total    int64           `json:"total"`
}
