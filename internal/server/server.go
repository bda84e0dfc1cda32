package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Routable は /xxx をechoに登録できるハンドラ。
type Routable interface {
	RegisterRoutes(e *echo.Echo)
}

// New はミドルウェアを積んだechoアプリを組み立てる。
// CORSはどのオリジンからも許可（フロントの配信元を制限しないモックAPI）。
func New(logger zerolog.Logger, handlers ...Routable) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	for _, h := range handlers {
		h.RegisterRoutes(e)
	}

	return e
}

// Start はサーバを起動する。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
