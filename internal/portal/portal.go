// Package portal is the public storefront API: catalog reads, feedback
// submission and the checkout flow that hands the customer off to WhatsApp.
package portal

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
	"github.com/upgradeats/upgradeats/internal/money"
	"github.com/upgradeats/upgradeats/internal/webserver"
	"github.com/upgradeats/upgradeats/internal/whatsapp"
)

const gatewayTimeout = 5 * time.Second

var (
	gw      gateway.Gateway
	handoff *whatsapp.Handoff
)

// Init wires the storefront handlers and registers the public routes.
func Init(g gateway.Gateway, h *whatsapp.Handoff) {
	gw = g
	handoff = h

	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/:id", getProduct)
	webserver.PubGET("/team", listTeam)
	webserver.PubGET("/features", listFeatures)
	webserver.PubPOST("/feedbacks", createFeedback)
	webserver.PubPOST("/checkout", checkout)
}

func callCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), gatewayTimeout)
}

func listProducts(c echo.Context) error {
	ctx, cancel := callCtx(c)
	defer cancel()

	products, err := gw.Products(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, products)
}

// getProduct answers 404 for an id that does not resolve instead of leaving
// the client spinning.
func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	p, err := gw.ProductByID(ctx, id)
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func listTeam(c echo.Context) error {
	ctx, cancel := callCtx(c)
	defer cancel()

	team, err := gw.TeamMembers(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, team)
}

func listFeatures(c echo.Context) error {
	ctx, cancel := callCtx(c)
	defer cancel()

	features, err := gw.Features(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	// Unknown icon keys fall back before they ever reach a client.
	for i := range features {
		features[i].Icon = string(domain.NormalizeIcon(features[i].Icon))
	}
	return c.JSON(http.StatusOK, features)
}

type feedbackPayload struct {
	Message string `json:"message" validate:"required,min=1"`
}

func createFeedback(c echo.Context) error {
	var payload feedbackPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	fb := domain.Feedback{Message: strings.TrimSpace(payload.Message)}
	if err := gw.Insert(ctx, fb.TableName(), &fb); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusCreated, fb)
}

type checkoutPayload struct {
	ProductID    int64  `json:"product_id" validate:"required,gt=0"`
	CustomerName string `json:"customer_name" validate:"required,min=1"`
	Qty          int    `json:"qty" validate:"required,gte=1"`
}

type checkoutResponse struct {
	Order        domain.Order `json:"order"`
	WhatsappLink string       `json:"whatsapp_link"`
}

// checkout persists the order with status forced to Pending and returns the
// pre-filled WhatsApp link. The handoff carries no delivery confirmation; the
// order stays Pending whether or not the customer finishes the chat.
func checkout(c echo.Context) error {
	var payload checkoutPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	product, err := gw.ProductByID(ctx, payload.ProductID)
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	total := money.Parse(product.Price) * int64(payload.Qty)
	order := domain.Order{
		CustomerName: strings.TrimSpace(payload.CustomerName),
		ProductName:  product.Name,
		Qty:          payload.Qty,
		TotalPrice:   money.Format(total),
		Status:       domain.OrderPending,
	}
	if err := gw.Insert(ctx, order.TableName(), &order); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	return c.JSON(http.StatusCreated, checkoutResponse{
		Order:        order,
		WhatsappLink: handoff.OrderLink(order.CustomerName, order.ProductName, order.Qty, order.TotalPrice),
	})
}
