package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"learnhub/internal/auth"
	"learnhub/internal/config"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/handler"
	"learnhub/internal/model"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	WebSocket *handler.WebSocketHandler
	Classes   *handler.ClassHandler

	Categories    *handler.ResourceHandler[model.Category]
	Courses       *handler.ResourceHandler[model.Course]
	Books         *handler.ResourceHandler[model.Book]
	EBooks        *handler.ResourceHandler[model.EBook]
	Topics        *handler.ResourceHandler[model.Topic]
	Sections      *handler.ResourceHandler[model.Section]
	SubTopics     *handler.ResourceHandler[model.SubTopic]
	Class         *handler.ResourceHandler[model.Class]
	Addresses     *handler.ResourceHandler[model.Address]
	Orders        *handler.ResourceHandler[model.Order]
	Subscriptions *handler.ResourceHandler[model.Subscription]
	Coupons       *handler.ResourceHandler[model.Coupon]
	Notifications *handler.ResourceHandler[model.Notification]
	Banners       *handler.ResourceHandler[model.Banner]
	SeoURLs       *handler.ResourceHandler[model.SeoURL]
	Series        *handler.ResourceHandler[model.Series]
	Instructions  *handler.ResourceHandler[model.Instruction]
	Questions     *handler.ResourceHandler[model.Question]
	Users         *handler.ResourceHandler[model.User]
}

// Register wires middleware and routes.
func Register(e *echo.Echo, cfg *config.Config, validator echo.Validator, authn *auth.Authenticator, h Handlers) {
	e.HideBanner = true
	e.Validator = validator
	e.HTTPErrorHandler = apperrors.NewHTTPErrorHandler(cfg.IsProduction())

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if !cfg.Supabase.Enabled() {
		e.Static(cfg.Upload.PublicPrefix, cfg.Upload.Dir)
	}

	api := e.Group("/api")
	authed := authn.Middleware(auth.LookupHeader)

	public := []echo.MiddlewareFunc(nil)
	signedIn := []echo.MiddlewareFunc{authed}
	editors := []echo.MiddlewareFunc{authed, auth.RequireRoles(model.RoleAdmin, model.RoleDataEntry)}
	admins := []echo.MiddlewareFunc{authed, auth.RequireRoles(model.RoleAdmin)}
	superadmins := []echo.MiddlewareFunc{authed, auth.RequireRoles(model.RoleSuperAdmin)}

	// Auth routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout, authed)
	api.GET("/auth/me", h.Auth.Me, authed)
	api.PUT("/auth/change-password", h.Auth.ChangePassword, authed)

	// Notifications are pushed to signed-in dashboards; browsers cannot set headers on upgrade.
	api.GET("/ws", h.WebSocket.Connect, authn.Middleware(auth.LookupQuery))

	// Catalog and content: public reads, editor writes
	h.Categories.Register(api.Group("/categories"), public, editors)
	h.Courses.Register(api.Group("/courses"), public, editors)
	h.Books.Register(api.Group("/books"), public, editors)
	h.EBooks.Register(api.Group("/ebooks"), public, editors)
	h.Topics.Register(api.Group("/topics"), public, editors)
	h.Sections.Register(api.Group("/sections"), public, editors)
	h.SubTopics.Register(api.Group("/subtopics"), public, editors)
	h.Banners.Register(api.Group("/banners"), public, editors)
	h.SeoURLs.Register(api.Group("/seo-urls"), public, editors)
	h.Series.Register(api.Group("/series"), public, editors)
	h.Instructions.Register(api.Group("/instructions"), public, editors)
	h.Questions.Register(api.Group("/questions"), signedIn, editors)

	classes := api.Group("/classes")
	classes.GET("/live/course/:courseId", h.Classes.Live)
	h.Class.Register(classes, public, editors)

	// Commerce: admin only
	orders := api.Group("/orders")
	orders.GET("/user/:userId", h.Orders.ListBy("userId", "user_id"), admins...)
	h.Orders.Register(orders, admins, admins)

	addresses := api.Group("/addresses")
	addresses.GET("/user/:userId", h.Addresses.ListBy("userId", "user_id"), admins...)
	h.Addresses.Register(addresses, admins, admins)

	subscriptions := api.Group("/subscriptions")
	subscriptions.GET("/user/:userId", h.Subscriptions.ListBy("userId", "user_id"), admins...)
	h.Subscriptions.Register(subscriptions, admins, admins)

	h.Coupons.Register(api.Group("/coupons"), admins, admins)
	h.Notifications.Register(api.Group("/notifications"), admins, admins)

	// Dashboard users: superadmin only
	h.Users.Register(api.Group("/users"), superadmins, superadmins)
}
