package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dentalperfections/dental_backend/config"
	"github.com/dentalperfections/dental_backend/internal/repo"
	"github.com/dentalperfections/dental_backend/internal/service/appointment"
	"github.com/dentalperfections/dental_backend/internal/service/auth"
	"github.com/dentalperfections/dental_backend/internal/service/blog"
	"github.com/dentalperfections/dental_backend/internal/service/faq"
	"github.com/dentalperfections/dental_backend/internal/service/patient"
	"github.com/dentalperfections/dental_backend/internal/service/review"
	"github.com/dentalperfections/dental_backend/internal/service/user"
	"github.com/dentalperfections/dental_backend/pkg/authorize"
	"github.com/dentalperfections/dental_backend/pkg/email"
	pasetotoken "github.com/dentalperfections/dental_backend/pkg/paseto"
	"github.com/dentalperfections/dental_backend/pkg/staffsession"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideReviewService,
		ProvideBlogService,
		ProvideFaqService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization, logger *slog.Logger) user.Service {
	return user.New(db, authz, logger)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	sessions *staffsession.Store,
	users user.Service,
	mail *email.Client,
	cfg *config.Config,
	logger *slog.Logger,
) auth.Service {
	return auth.New(db, rdb, paseto, sessions, users, mail, cfg, logger)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideAppointmentService(db *repo.Client, mail *email.Client, logger *slog.Logger) appointment.Service {
	return appointment.New(db, mail, logger)
}

func ProvideReviewService(db *repo.Client, users user.Service) review.Service {
	return review.New(db, users)
}

func ProvideBlogService(db *repo.Client) blog.Service {
	return blog.New(db)
}

func ProvideFaqService(db *repo.Client) faq.Service {
	return faq.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
