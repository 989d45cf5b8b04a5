package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eatery/internal/core/application/usecases/commands"
	"eatery/internal/core/domain/model/order"
	"eatery/internal/core/domain/services"
	"eatery/internal/core/ports"
	"eatery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCommandError_StatusMapping(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"not found maps to 404": {
			err:  errs.NewObjectNotFoundError("orderId", "missing"),
			code: http.StatusNotFound,
		},
		"forbidden maps to 403": {
			err:  errs.NewForbiddenError("cancel order"),
			code: http.StatusForbidden,
		},
		"invalid transition maps to 422": {
			err:  order.ErrInvalidTransition,
			code: http.StatusUnprocessableEntity,
		},
		"out of delivery range maps to 422": {
			err:  commands.ErrOutOfDeliveryRange,
			code: http.StatusUnprocessableEntity,
		},
		"concurrent modification maps to 409": {
			err:  ports.ErrConcurrentModification,
			code: http.StatusConflict,
		},
		"order number exhaustion maps to 409": {
			err:  commands.ErrOrderNumberExhausted,
			code: http.StatusConflict,
		},
		"invalid value maps to 400": {
			err:  errs.NewValueIsInvalidError("paymentMethod"),
			code: http.StatusBadRequest,
		},
		"out of range value maps to 400": {
			err:  errs.NewValueIsOutOfRangeError("tipPct", 150, 0, 100),
			code: http.StatusBadRequest,
		},
		"empty order maps to 400": {
			err:  services.ErrEmptyOrder,
			code: http.StatusBadRequest,
		},
		"invalid discount maps to 400": {
			err:  services.ErrInvalidDiscount,
			code: http.StatusBadRequest,
		},
		"negative total maps to 400": {
			err:  services.ErrNegativeTotal,
			code: http.StatusBadRequest,
		},
		"unknown error maps to 500": {
			err:  echo.ErrInternalServerError,
			code: http.StatusInternalServerError,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx, rec := newTestContext(t)

			require.NoError(t, commandError(ctx, tc.err))
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
