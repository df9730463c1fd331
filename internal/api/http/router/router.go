package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/api/http/handler"
	"github.com/dentalperfections/dental_backend/internal/api/http/middleware"
	"github.com/dentalperfections/dental_backend/internal/service/appointment"
	"github.com/dentalperfections/dental_backend/internal/service/auth"
	"github.com/dentalperfections/dental_backend/internal/service/blog"
	"github.com/dentalperfections/dental_backend/internal/service/faq"
	"github.com/dentalperfections/dental_backend/internal/service/patient"
	"github.com/dentalperfections/dental_backend/internal/service/review"
	"github.com/dentalperfections/dental_backend/internal/service/user"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	UserSvc        user.Service
	AuthSvc        auth.Service
	PatientSvc     patient.Service
	AppointmentSvc appointment.Service
	ReviewSvc      review.Service
	BlogSvc        blog.Service
	FaqSvc         faq.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	identify := middleware.Identify(r.p.AuthSvc, r.p.Cfg.Authentication.StaffSessionCookie)
	requireAuth := middleware.RequireAuth()
	loginLimiter := middleware.NewLoginLimiter(r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc, r.p.Cfg)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	reviewH := handler.NewReviewHandler(r.p.ReviewSvc)
	blogH := handler.NewBlogHandler(r.p.BlogSvc)
	faqH := handler.NewFaqHandler(r.p.FaqSvc)

	api := app.Group("/api/v1", identify)

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, requireAuth, loginLimiter)
	r.registerUserRoutes(api, userH, requireAuth, requirePerm)
	r.registerPatientRoutes(api, patientH, requireAuth, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, requirePerm)
	r.registerReviewRoutes(api, reviewH, requirePerm)
	r.registerBlogRoutes(api, blogH, requirePerm)
	r.registerFaqRoutes(api, faqH, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Metrics.Enabled {
		path := r.p.Cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
