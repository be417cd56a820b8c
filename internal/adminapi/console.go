package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/upgradeats/upgradeats/internal/backoffice"
	"github.com/upgradeats/upgradeats/internal/webserver"
)

func registerConsoleRoutes() {
	webserver.ApiGET("/dashboard", dashboard)
	webserver.ApiGET("/list", listCollection)
	webserver.ApiPOST("/select/:id", toggleSelect)
	webserver.ApiPOST("/submit/:tab", submitForm)
	webserver.ApiDELETE("/:tab/:id", deleteRow)
	webserver.ApiPOST("/bulk-delete", bulkDelete)
	webserver.ApiPOST("/refresh", refresh)
}

func dashboard(c echo.Context) error {
	snap := console.Store().Current()
	return ok(c, map[string]interface{}{
		"stats":        snap.Stats,
		"version":      snap.Version,
		"notification": notification(),
	})
}

func listCollection(c echo.Context) error {
	tab := strings.TrimSpace(c.QueryParam("tab"))
	if tab != "" && !backoffice.ValidTab(tab) {
		return fail(c, http.StatusBadRequest, "INVALID_TAB", "Unknown collection tab", tab)
	}
	page := 0
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	res := console.List(tab, strings.TrimSpace(c.QueryParam("q")), page)
	return paged(c, res, int64(res.Total), res.Page, backoffice.DefaultPageSize)
}

func toggleSelect(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid record ID", nil)
	}
	return ok(c, console.ToggleSelect(id))
}

func submitForm(c echo.Context) error {
	tab := c.Param("tab")
	if !backoffice.ValidTab(tab) {
		return fail(c, http.StatusBadRequest, "INVALID_TAB", "Unknown collection tab", tab)
	}

	form := map[string]interface{}{}
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse form", err.Error())
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	if err := console.Submit(ctx, tab, form); err != nil {
		return fail(c, http.StatusBadGateway, "SUBMIT_FAILED", err.Error(), notification())
	}
	return ok(c, map[string]interface{}{
		"saved":        true,
		"notification": notification(),
	})
}

func deleteRow(c echo.Context) error {
	tab := c.Param("tab")
	if !backoffice.ValidTab(tab) {
		return fail(c, http.StatusBadRequest, "INVALID_TAB", "Unknown collection tab", tab)
	}
	id, err := paramID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid record ID", nil)
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	err = console.Delete(ctx, tab, id, c.QueryParam("confirm") == "true")
	switch {
	case errors.Is(err, backoffice.ErrNotConfirmed):
		return fail(c, http.StatusConflict, "CONFIRM_REQUIRED", "Hapus data ini selamanya?", nil)
	case errors.Is(err, backoffice.ErrOrdersImmutable):
		return fail(c, http.StatusForbidden, "ORDERS_IMMUTABLE", "Orders cannot be deleted", nil)
	case err != nil:
		return fail(c, http.StatusBadGateway, "DELETE_FAILED", err.Error(), notification())
	}
	return ok(c, map[string]interface{}{"id": id, "notification": notification()})
}

type bulkDeletePayload struct {
	Confirm bool `json:"confirm"`
}

func bulkDelete(c echo.Context) error {
	var payload bulkDeletePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse request", err.Error())
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	err := console.BulkDeleteSelected(ctx, payload.Confirm)
	switch {
	case errors.Is(err, backoffice.ErrNotConfirmed):
		return fail(c, http.StatusConflict, "CONFIRM_REQUIRED", "Hapus item yang dipilih?", nil)
	case errors.Is(err, backoffice.ErrOrdersImmutable):
		return fail(c, http.StatusForbidden, "ORDERS_IMMUTABLE", "Orders cannot be deleted", nil)
	case err != nil:
		return fail(c, http.StatusBadGateway, "DELETE_FAILED", err.Error(), notification())
	}
	return ok(c, map[string]interface{}{"notification": notification()})
}

func refresh(c echo.Context) error {
	ctx, cancel := callCtx(c)
	defer cancel()

	snap, err := console.Refresh(ctx)
	if err != nil {
		return fail(c, http.StatusBadGateway, "REFRESH_FAILED", err.Error(), notification())
	}
	return ok(c, map[string]interface{}{"version": snap.Version, "stats": snap.Stats})
}
