package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/upgradeats/upgradeats/internal/domain"
	"github.com/upgradeats/upgradeats/internal/gateway"
	"github.com/upgradeats/upgradeats/internal/webserver"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func registerAuthRoutes() {
	// Login sits outside the guarded group: no session exists yet.
	webserver.FreePOST("/admin/login", login)
	webserver.ApiPOST("/logout", logout)
	webserver.ApiGET("/session", currentSession)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Email dan password wajib diisi", nil)
	}

	ctx, cancel := callCtx(c)
	defer cancel()

	opr, err := gw.SignIn(ctx, payload.Email, payload.Password)
	switch {
	case errors.Is(err, gateway.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email atau password salah.", nil)
	case err != nil:
		zap.L().Error("login failed", zap.Error(err))
		return fail(c, http.StatusBadGateway, "CONNECTION_ERROR", "Terjadi kesalahan koneksi.", nil)
	}

	if err := webserver.StartSession(c, opr); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to start session", err.Error())
	}

	_ = gw.WriteOprLog(ctx, &domain.SysOprLog{
		OprName:   opr.Email,
		OprIp:     c.RealIP(),
		OptAction: "login",
		OptDesc:   "operator signed in",
		OptTime:   time.Now(),
	})

	return ok(c, opr)
}

func logout(c echo.Context) error {
	if err := webserver.EndSession(c); err != nil {
		return fail(c, http.StatusInternalServerError, "SESSION_ERROR", "Failed to end session", err.Error())
	}
	return ok(c, nil)
}

func currentSession(c echo.Context) error {
	return ok(c, webserver.CurrentOperator(c))
}
