// Package http exposes the ordering use cases over a REST API.
//
// Every endpoint that acts on behalf of a user reads the caller's identity
// from the X-User-Id and X-User-Role headers, which the API gateway sets
// after authenticating the request. The payment endpoint is the exception:
// it is called by the payment provider and carries no user identity.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/application/usecases/queries"
	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/domain/services"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	recordPaymentHandler commands.RecordPaymentCommandHandler
	addReviewHandler     commands.AddReviewCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listOrdersHandler          queries.ListOrdersQueryHandler
	getRestaurantRatingHandler queries.GetRestaurantRatingQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getRestaurantRatingHandler queries.GetRestaurantRatingQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		advanceOrderHandler:        advanceOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		recordPaymentHandler:       recordPaymentHandler,
		addReviewHandler:           addReviewHandler,
		getOrderHandler:            getOrderHandler,
		listOrdersHandler:          listOrdersHandler,
		getRestaurantRatingHandler: getRestaurantRatingHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/payment", s.RecordPayment)

	api.POST("/restaurants/:id/reviews", s.AddReview)
	api.GET("/restaurants/:id/rating", s.GetRestaurantRating)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemOptionRequest is one paid modifier on an order line.
type ItemOptionRequest struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ItemRequest is one order line as submitted by the client.
type ItemRequest struct {
	MenuItemID string              `json:"menuItemId"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  int64               `json:"unitPrice"`
	Options    []ItemOptionRequest `json:"options,omitempty"`
	Notes      string              `json:"notes,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	RestaurantID    string        `json:"restaurantId"`
	Items           []ItemRequest `json:"items"`
	PaymentMethod   string        `json:"paymentMethod"`
	PickupTime      time.Time     `json:"pickupTime"`
	PickupType      string        `json:"pickupType"`
	PrepTimeMinutes int           `json:"prepTimeMinutes"`
	DiscountPct     int           `json:"discountPct"`
	TipPct          int           `json:"tipPct"`
	Customer        GeoPoint      `json:"customerLocation"`
	Restaurant      GeoPoint      `json:"restaurantLocation"`
	Notes           string        `json:"notes,omitempty"`
}

// GeoPoint is a latitude and longitude pair.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateOrderResponse returns the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AdvanceOrderRequest is the body of POST /api/v1/orders/:id/advance.
type AdvanceOrderRequest struct {
	Target string `json:"target"`
}

// RecordPaymentRequest is the body of POST /api/v1/orders/:id/payment.
type RecordPaymentRequest struct {
	Outcome string `json:"outcome"`
}

// AddReviewRequest is the body of POST /api/v1/restaurants/:id/reviews.
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// AddReviewResponse returns the restaurant's average including the new review.
type AddReviewResponse struct {
	ID            string  `json:"id"`
	AverageRating float64 `json:"averageRating"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if !actor.CanPlaceOrders() {
		return commandError(ctx, errs.NewForbiddenError("create order"))
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, err)
	}

	pickupType, err := order.PickupTypeFromString(req.PickupType)
	if err != nil {
		return badRequest(ctx, err)
	}

	customerLoc, err := kernel.NewCoordinates(req.Customer.Latitude, req.Customer.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}
	restaurantLoc, err := kernel.NewCoordinates(req.Restaurant.Latitude, req.Restaurant.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(line.MenuItemID)
		if itemErr != nil {
			return badRequest(ctx, itemErr)
		}

		options := make([]commands.ItemOptionInput, 0, len(line.Options))
		for _, option := range line.Options {
			options = append(options, commands.ItemOptionInput{
				Name:  option.Name,
				Price: option.Price,
			})
		}

		items = append(items, commands.ItemInput{
			MenuItemID: menuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Options:    options,
			Notes:      line.Notes,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor.UserID(),
		restaurantID,
		items,
		paymentMethod,
		req.PickupTime,
		pickupType,
		req.PrepTimeMinutes,
		req.DiscountPct,
		req.TipPct,
		customerLoc,
		restaurantLoc,
		req.Notes,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order one
// step forward through its lifecycle.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AdvanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actor, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/orders/:id/payment - applies a payment
// outcome reported by the payment provider. No user headers are read here,
// the provider authenticates at the gateway level.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	outcome, err := order.PaymentStatusFromString(req.Outcome)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, outcome)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /api/v1/orders - lists orders newest first.
// Supports status, page and pageSize query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return badRequest(ctx, statusErr)
		}
		status = &parsed
	}

	page := intQueryParam(ctx, "page")
	pageSize := intQueryParam(ctx, "pageSize")

	query, err := queries.NewListOrdersQuery(actor, status, page, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddReview handles POST /api/v1/restaurants/:id/reviews - stores a review
// and returns the restaurant's recomputed average rating.
func (s *Server) AddReview(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(reviewID, restaurantID, actor.UserID(), req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, err)
	}

	average, err := s.addReviewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddReviewResponse{
		ID:            reviewID.String(),
		AverageRating: average,
	})
}

// GetRestaurantRating handles GET /api/v1/restaurants/:id/rating.
func (s *Server) GetRestaurantRating(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetRestaurantRatingQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	response, err := s.getRestaurantRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromHeaders builds the acting user from the gateway-set identity headers.
func actorFromHeaders(ctx echo.Context) (kernel.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get("X-User-Id"))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("X-User-Id", err)
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsInvalidErrorWithCause("X-User-Role", err)
	}

	return kernel.NewActor(userID, role)
}

// intQueryParam parses an integer query parameter, returning zero when the
// parameter is absent or malformed. Queries normalize zero to their defaults.
func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// commandError maps use case failures to HTTP status codes.
func commandError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, commands.ErrOutOfDeliveryRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, commands.ErrOrderNumberExhausted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidDiscount),
		errors.Is(err, services.ErrNegativeTotal):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
