package server

import (
	"fmt"
	"net/http"
	"time"

	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/config"
	"ella-rises-admin/core/controller"
	"ella-rises-admin/core/database"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/auth"
	"ella-rises-admin/modules/dashboard"
	"ella-rises-admin/modules/donation"
	"ella-rises-admin/modules/event"
	"ella-rises-admin/modules/milestone"
	"ella-rises-admin/modules/participant"
	"ella-rises-admin/modules/profile"
	"ella-rises-admin/modules/survey"
	"ella-rises-admin/modules/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run wires config, database, cache, middleware and every feature module,
// then serves until the process exits.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.IsDevelopment())

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.Migrate("migrations"); err != nil {
		return err
	}

	store, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(requestLogger())

	mw := middleware.NewMiddleware(store)
	e.Use(mw.LoadSession())

	auth.Init(e, db, store, mw)
	participant.Init(e, db, mw)
	event.Init(e, db, mw)
	survey.Init(e, db, mw)
	milestone.Init(e, db, mw)
	donation.Init(e, db, mw)
	user.Init(e, db, store, mw)
	profile.Init(e, db, store, mw)
	dashboard.Init(e, db, mw)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "addr", addr, "env", cfg.Server.Env)
	return e.Start(addr)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				"id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}

// errorHandler is the topmost handler; every request that errors out of a
// route still yields a rendered response.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong!"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		if status == http.StatusNotFound {
			message = "The page you are looking for does not exist."
		} else if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	logger.Error("Server:ErrorHandler", "status", status, "error", err)

	code := coreerrors.ErrInternalServer
	if status == http.StatusNotFound {
		code = coreerrors.ErrNotFound
	}
	resp := controller.NewErrorResponse(code, message)
	if cfg, ok := config.GetSafe(); ok && cfg.IsDevelopment() {
		resp.Details = err.Error()
	}
	_ = c.JSON(status, resp)
}
