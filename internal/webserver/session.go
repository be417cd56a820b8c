package webserver

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/upgradeats/upgradeats/internal/domain"
)

const (
	sessionKeyEmail = "email"
	operatorCtxKey  = "operator"
)

// sessionGuard resolves the operator session before any admin handler runs.
// No session, or any error while resolving one, is treated identically: the
// request is turned away to the login route and no further work happens.
func (s *WebServer) sessionGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "session required")
		}
		email, _ := sess.Values[sessionKeyEmail].(string)
		if email == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "session required")
		}
		opr, err := s.gw.OperatorByEmail(c.Request().Context(), email)
		if err != nil {
			zap.L().Debug("session resolution failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusUnauthorized, "session required")
		}
		c.Set(operatorCtxKey, opr)
		return next(c)
	}
}

// StartSession stores the signed-in operator in the cookie session.
func StartSession(c echo.Context, opr *domain.SysOpr) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}
	sess.Values[sessionKeyEmail] = opr.Email
	return sess.Save(c.Request(), c.Response())
}

// EndSession drops the cookie session.
func EndSession(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	return sess.Save(c.Request(), c.Response())
}

// CurrentOperator returns the operator resolved by the session guard.
func CurrentOperator(c echo.Context) *domain.SysOpr {
	opr, _ := c.Get(operatorCtxKey).(*domain.SysOpr)
	return opr
}
