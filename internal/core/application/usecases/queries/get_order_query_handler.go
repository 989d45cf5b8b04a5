package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"eatery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID, actor)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle loads the order and enforces the read authorization: customers see
// only their own orders, admins see everything.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return OrderResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && resp.UserID != actor.UserID().String() {
		return OrderResponse{}, errs.NewForbiddenError("get order")
	}

	return resp, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp             OrderResponse
		itemsRaw         []byte
		actualPickupTime sql.NullTime
	)

	err := row.Scan(
		&resp.ID,
		&resp.Number,
		&resp.UserID,
		&resp.RestaurantID,
		&itemsRaw,
		&resp.TotalAmount,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.PaymentMethod,
		&resp.PickupTime,
		&resp.PickupType,
		&resp.PrepTimeMinutes,
		&actualPickupTime,
		&resp.Notes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&resp.Version,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = json.Unmarshal(itemsRaw, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	if actualPickupTime.Valid {
		t := actualPickupTime.Time.UTC()
		resp.ActualPickupTime = &t
	}
	resp.PickupTime = resp.PickupTime.UTC()
	resp.CreatedAt = resp.CreatedAt.UTC()
	resp.UpdatedAt = resp.UpdatedAt.UTC()

	return resp, nil
}
