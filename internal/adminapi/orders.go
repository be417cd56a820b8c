package adminapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/backoffice"
	"github.com/upgradeats/upgradeats/internal/webserver"
)

func registerOrderRoutes() {
	webserver.ApiGET("/orders/:id", orderDetail)
	webserver.ApiPOST("/orders/:id/accept", acceptOrder)
	webserver.ApiPOST("/orders/:id/reject", rejectOrder)
}

func orderDetail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID", nil)
	}
	for _, o := range console.Store().Current().Orders {
		if o.ID == id {
			return ok(c, o)
		}
	}
	return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
}

func acceptOrder(c echo.Context) error {
	return transitionOrder(c, console.AcceptOrder)
}

func rejectOrder(c echo.Context) error {
	return transitionOrder(c, console.RejectOrder)
}

func transitionOrder(c echo.Context, apply func(ctx context.Context, id int64) error) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID", nil)
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	err = apply(ctx, id)
	switch {
	case errors.Is(err, backoffice.ErrOrderNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	case errors.Is(err, backoffice.ErrInvalidTransition):
		return fail(c, http.StatusConflict, "INVALID_TRANSITION", "Order status is final", err.Error())
	case err != nil:
		return fail(c, http.StatusBadGateway, "UPDATE_FAILED", "Gagal update status", notification())
	}

	return ok(c, map[string]interface{}{"id": id, "notification": notification()})
}
