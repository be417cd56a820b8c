// Package adminapi exposes the back-office console over HTTP. Handlers stay
// thin: state and semantics live in the backoffice package, persistence in
// the gateway.
package adminapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/upgradeats/upgradeats/internal/backoffice"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

const gatewayTimeout = 5 * time.Second

var (
	console *backoffice.Console
	gw      gateway.Gateway
)

// Init wires the handlers to the console and registers all admin routes.
func Init(c *backoffice.Console, g gateway.Gateway) {
	console = c
	gw = g
	registerAuthRoutes()
	registerConsoleRoutes()
	registerOrderRoutes()
	registerExportRoutes()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":     0,
		"data":     rows,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func callCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), gatewayTimeout)
}

// notification appends the active console notification to a response body so
// the client can render its transient toast.
func notification() interface{} {
	if n := console.Notifier().Current(); n != nil {
		return n
	}
	return nil
}
