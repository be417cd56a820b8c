// Package webserver owns the echo instance: sessions, serialization, request
// logging and the route-registration helpers the API packages use.
package webserver

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/upgradeats/upgradeats/config"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

const SessionName = "upgradeats_session"

var server *WebServer

type WebServer struct {
	root *echo.Echo
	api  *echo.Group
	pub  *echo.Group
	cfg  *config.AppConfig
	gw   gateway.Gateway
}

type jsoniterSerializer struct{}

func (jsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsoniter.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := jsoniter.NewDecoder(c.Request().Body).Decode(i)
	if err != nil && err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

type payloadValidator struct {
	validate *validator.Validate
}

func (v *payloadValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Init builds the global web server. The /admin/api group runs behind the
// session guard; /api is the public storefront surface.
func Init(cfg *config.AppConfig, gw gateway.Gateway) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = jsoniterSerializer{}
	e.Validator = &payloadValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 15 * time.Second}))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.Web.Secret))))
	e.Use(zapLogger())

	server = &WebServer{
		root: e,
		pub:  e.Group("/api"),
		cfg:  cfg,
		gw:   gw,
	}
	server.api = e.Group("/admin/api")
	server.api.Use(server.sessionGuard)
	return server
}

func zapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}

// Listen starts the server on the configured address.
func (s *WebServer) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))
	return s.root.Start(addr)
}

func (s *WebServer) Echo() *echo.Echo { return s.root }

func (s *WebServer) Config() *config.AppConfig { return s.cfg }

// Route registration helpers, admin side (session-guarded).
func ApiGET(path string, h echo.HandlerFunc)    { server.api.GET(path, h) }
func ApiPOST(path string, h echo.HandlerFunc)   { server.api.POST(path, h) }
func ApiPUT(path string, h echo.HandlerFunc)    { server.api.PUT(path, h) }
func ApiDELETE(path string, h echo.HandlerFunc) { server.api.DELETE(path, h) }

// Route registration helpers, public storefront side.
func PubGET(path string, h echo.HandlerFunc)  { server.pub.GET(path, h) }
func PubPOST(path string, h echo.HandlerFunc) { server.pub.POST(path, h) }

// FreeGET registers an unguarded route outside both groups (login lives
// here: the guard must not run before a session exists).
func FreeGET(path string, h echo.HandlerFunc)  { server.root.GET(path, h) }
func FreePOST(path string, h echo.HandlerFunc) { server.root.POST(path, h) }
