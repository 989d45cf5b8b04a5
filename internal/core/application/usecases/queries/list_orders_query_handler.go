package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads pages of orders straight from the database,
// newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Non-admin actors are always scoped to their
// own orders regardless of what the request asked for.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)

	actor := query.Actor()
	if !actor.IsAdmin() {
		where += " AND user_id = ?"
		args = append(args, actor.UserID().String())
	}

	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			user_id,
			restaurant_id,
			items,
			total_amount,
			status,
			payment_status,
			payment_method,
			pickup_time,
			pickup_type,
			prep_time_minutes,
			actual_pickup_time,
			notes,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.PageSize())
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:   orders,
		Page:     query.Page(),
		PageSize: query.PageSize(),
		Total:    total,
	}, nil
}
