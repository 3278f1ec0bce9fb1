// Package app assembles the registry: configuration, database, services and
// the gin router. One App is built at startup and every handler receives its
// dependencies from it.
package app

import (
	"context"
	"net/http"
	"time"

	"gin-giftregistry/controllers"
	"gin-giftregistry/infra"
	"gin-giftregistry/middlewares"
	"gin-giftregistry/preview"
	"gin-giftregistry/repositories"
	"gin-giftregistry/services"
	"gin-giftregistry/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type App struct {
	Config *infra.Config
	DB     *gorm.DB
	Log    *logrus.Logger

	AuthService services.IAuthService
	GiftService services.IGiftService
}

type Option func(*options)

type options struct {
	previews   services.PreviewFetcher
	bcryptCost int
}

// WithPreviewFetcher replaces the HTTP preview fetcher.
func WithPreviewFetcher(f services.PreviewFetcher) Option {
	return func(o *options) { o.previews = f }
}

func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

func New(cfg *infra.Config, db *gorm.DB, log *logrus.Logger, opts ...Option) *App {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.previews == nil {
		o.previews = preview.NewFetcher(cfg.PreviewTimeout)
	}

	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	authService := services.NewAuthService(authRepository, tokenRepository, services.AuthSettings{
		SecretKey:  cfg.SecretKey,
		SessionTTL: cfg.SessionTTL,
		AdminEmail: cfg.AdminEmail,
		BcryptCost: o.bcryptCost,
	})

	giftRepository := repositories.NewGiftRepository(db)
	claimRepository := repositories.NewClaimRepository(db)
	giftService := services.NewGiftService(giftRepository, claimRepository, o.previews)

	return &App{
		Config:      cfg,
		DB:          db,
		Log:         log,
		AuthService: authService,
		GiftService: giftService,
	}
}

// Bootstrap migrates the schema and seeds the admin account.
func (a *App) Bootstrap() error {
	if err := infra.Migrate(a.DB); err != nil {
		return err
	}
	created, err := a.AuthService.EnsureAdmin(a.Config.AdminPassword)
	if err != nil {
		return err
	}
	if created {
		a.Log.WithField("email", a.Config.AdminEmail).Info("Seeded admin account")
	}
	return nil
}

func (a *App) Router() *gin.Engine {
	cookies := controllers.Cookies{Secure: a.Config.IsProd()}
	authController := controllers.NewAuthController(a.AuthService, cookies, a.Log)
	giftController := controllers.NewGiftController(a.GiftService, cookies, a.Log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(a.Log))
	if len(a.Config.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     a.Config.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.Default())
	}
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guestRouter := r.Group("", middlewares.GuestOnly(a.AuthService))
	guestRouter.GET("/register", authController.ShowRegister)
	guestRouter.POST("/register", authController.Register)
	guestRouter.GET("/login", authController.ShowLogin)
	guestRouter.POST("/login", authController.Login)

	authRouter := r.Group("", middlewares.AuthMiddleware(a.AuthService))
	authRouter.GET("/logout", authController.Logout)
	authRouter.GET("/", giftController.Index)
	authRouter.GET("/add", giftController.ShowAdd)
	authRouter.POST("/add", giftController.Add)
	authRouter.POST("/claim/:id", giftController.Claim)

	return r
}

// RunSessionJanitor purges expired logged-out sessions every interval until
// ctx is cancelled.
func (a *App) RunSessionJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := a.AuthService.CleanExpiredSessions()
			if err != nil {
				a.Log.WithError(err).Warn("Failed to clean expired sessions")
				continue
			}
			if removed > 0 {
				a.Log.WithField("removed", removed).Debug("Cleaned expired sessions")
			}
		}
	}
}
