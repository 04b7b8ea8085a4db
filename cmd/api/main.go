package main

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraPayment "storefront/internal/infra/payment"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/metrics"
	"storefront/internal/payment"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envが無くても動く
	_ = godotenv.Load()

	cfg := config.Load()

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout"}
	if cfg.GoEnv == "dev" {
		logCfg = zap.NewDevelopmentConfig()
	}
	log, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	//カタログが空なら初期データを入れる
	if err := db.Seed(gormDB); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	m := metrics.New()

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//決済プロバイダ。キー未設定ならnilのまま（checkoutは400を返す）
	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = infraPayment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	} else {
		log.Warn("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, m)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, gateway, cfg.FrontendURL, log, m)
	recUC := usecase.NewRecommendationUsecase(productRepo)

	//Handler生成
	h := server.Handlers{
		Products:        handler.NewProductHandler(productUC),
		Orders:          handler.NewOrderHandler(orderUC),
		Recommendations: handler.NewRecommendationHandler(recUC),
		Payments:        handler.NewPaymentHandler(checkoutUC),
	}

	e := server.New(log, m, cfg.AdminToken, h)

	addr := ":" + cfg.Port
	log.Info("api starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
