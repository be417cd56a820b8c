package adminapi

import (
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/upgradeats/upgradeats/internal/webserver"
)

type orderExportRow struct {
	ID           int64  `csv:"id"`
	CustomerName string `csv:"customer_name"`
	ProductName  string `csv:"product_name"`
	Qty          int    `csv:"qty"`
	TotalPrice   string `csv:"total_price"`
	Status       string `csv:"status"`
	CreatedAt    string `csv:"created_at"`
}

func registerExportRoutes() {
	webserver.ApiGET("/export/orders.csv", exportOrders)
}

// exportOrders streams the cached orders as CSV. Export reads the snapshot,
// not the gateway, so it always matches what the console shows.
func exportOrders(c echo.Context) error {
	orders := console.Store().Current().Orders
	rows := make([]orderExportRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderExportRow{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			ProductName:  o.ProductName,
			Qty:          o.Qty,
			TotalPrice:   o.TotalPrice,
			Status:       string(o.Status),
			CreatedAt:    o.CreatedAt.Format(time.RFC3339),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(&rows, c.Response())
}
