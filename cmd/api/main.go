package main

import (
	"log"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "sellsi-admin-backend/internal/adapter/http"
	"sellsi-admin-backend/internal/adapter/middleware"
	"sellsi-admin-backend/internal/adapter/repository/mysql"
	"sellsi-admin-backend/internal/config"
	"sellsi-admin-backend/internal/infrastructure/cache"
	"sellsi-admin-backend/internal/infrastructure/db"
	"sellsi-admin-backend/internal/infrastructure/storage"
	"sellsi-admin-backend/internal/logger"
	ucadmin "sellsi-admin-backend/internal/usecase/adminacct"
	ucflag "sellsi-admin-backend/internal/usecase/featureflag"
	ucfin "sellsi-admin-backend/internal/usecase/financing"
	ucpay "sellsi-admin-backend/internal/usecase/payment"
	ucstats "sellsi-admin-backend/internal/usecase/stats"
	uctr "sellsi-admin-backend/internal/usecase/transfer"
	ucuser "sellsi-admin-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect", zap.Error(err))
	}

	proofs := storage.NewClient(cfg.StorageBaseURL)

	finRepo := mysql.NewFinancingRepository(gdb)
	payRepo := mysql.NewPaymentRepository(gdb)
	trRepo := mysql.NewTransferRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	acctRepo := mysql.NewAccountRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	flagRepo := mysql.NewFlagRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	secret := []byte(cfg.JWTSecret)
	handlers := httpadp.Handlers{
		Base:      httpadp.NewHandler(),
		Admins:    httpadp.NewAdminHandler(ucadmin.NewUsecase(acctRepo, tx, zlog, secret, cfg.SessionTTL)),
		Financing: httpadp.NewFinancingHandler(ucfin.NewUsecase(finRepo, tx, zlog)),
		Payments:  httpadp.NewPaymentHandler(ucpay.NewUsecase(payRepo, tx, zlog), proofs),
		Transfers: httpadp.NewTransferHandler(uctr.NewUsecase(trRepo, tx, zlog), proofs),
		Users:     httpadp.NewUserHandler(ucuser.NewUsecase(userRepo, tx, zlog)),
		Flags:     httpadp.NewFlagHandler(ucflag.NewUsecase(flagRepo, auditRepo, zlog)),
		Stats:     httpadp.NewStatsHandler(ucstats.NewUsecase(finRepo, payRepo, trRepo, userRepo)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	httpadp.Register(e, handlers, httpadp.SessionMiddleware(secret), idemp)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
