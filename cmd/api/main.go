package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanbridge/internal/adapter/http"
	"loanbridge/internal/adapter/middleware"
	"loanbridge/internal/adapter/repository/mysql"
	"loanbridge/internal/config"
	"loanbridge/internal/domain/user"
	"loanbridge/internal/infrastructure/cache"
	"loanbridge/internal/infrastructure/db"
	authuc "loanbridge/internal/usecase/auth"
	loanuc "loanbridge/internal/usecase/loan"
	reportuc "loanbridge/internal/usecase/report"
	useruc "loanbridge/internal/usecase/user"
	"loanbridge/pkg/logging"
	"loanbridge/pkg/token"
)

func main() {
	cfg := config.Load()
	log := logging.New("loanbridge", cfg.AppEnv)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	users := mysql.NewUserRepository(gormDB)
	loans := mysql.NewLoanRepository(gormDB)
	credits := mysql.NewCreditRepository(gormDB)
	tx := mysql.NewGormUoW(gormDB)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	authH := httpadp.NewAuthHandler(authuc.NewUsecase(users, tokens), log)
	userH := httpadp.NewUserHandler(useruc.NewUsecase(users), log)
	loanH := httpadp.NewLoanHandler(loanuc.NewUsecase(tx, loans, users), log)
	reportH := httpadp.NewReportHandler(reportuc.NewUsecase(loans, users, credits), log)
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.RequestID(), echomw.Logger(), echomw.Recover())

	auth := middleware.Auth(tokens)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	api.GET("/users/profile", userH.Profile, auth)
	api.PUT("/users/profile", userH.UpdateProfile, auth)
	api.GET("/users", userH.ListUsers, auth, middleware.RequireRoles(user.RoleAdmin))
	api.POST("/users", userH.CreateUser, auth, middleware.RequireRoles(user.RoleAdmin))
	api.PUT("/users/:user_id", userH.UpdateUser, auth, middleware.RequireRoles(user.RoleAdmin))
	api.DELETE("/users/:user_id", userH.DeleteUser, auth, middleware.RequireRoles(user.RoleAdmin))
	api.GET("/lenders", userH.ListLenders, auth)

	api.POST("/loans", loanH.Apply, auth, middleware.RequireRoles(user.RoleBorrower))
	api.GET("/loans", loanH.ListPending, auth, middleware.RequireRoles(user.RoleLender))
	api.GET("/loans/history", loanH.History, auth)
	api.PUT("/loans/:loan_id/approve", loanH.Approve, auth, middleware.RequireRoles(user.RoleLender))
	api.PUT("/loans/:loan_id/reject", loanH.Reject, auth, middleware.RequireRoles(user.RoleLender))
	api.POST("/loans/:loan_id/pay", loanH.Pay, auth, middleware.RequireRoles(user.RoleBorrower), idemp)

	api.GET("/credit-history", reportH.CreditHistory, auth, middleware.RequireRoles(user.RoleBorrower))
	api.GET("/reports/borrowers", reportH.BorrowerReport, auth, middleware.RequireRoles(user.RoleAdmin, user.RoleLender))
	api.GET("/reports/lenders", reportH.LenderReport, auth, middleware.RequireRoles(user.RoleAdmin))
	api.GET("/borrowers/:borrower_id/details", reportH.BorrowerDetails, auth, middleware.RequireRoles(user.RoleAdmin, user.RoleLender))
	api.GET("/dashboard/stats", reportH.Dashboard, auth)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
