package main

import (
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	cfg := config.Load()
	if cfg.GoEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	//DB接続（DATABASE_URLが無ければインメモリSQLite）
	gormDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.CartItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// 固定カタログのシード（両テーブルをリセットして7商品を入れる）
	if err := db.Seed(gormDB); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seeded product catalog")

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := usecase.NewRandomOrderIDGenerator()
	clock := &usecase.SystemClock{}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, idGen, clock, log.Logger)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)

	//Server起動
	addr := ":" + cfg.Port
	e := server.New(log.Logger, productH, cartH, checkoutH)

	log.Info().Str("addr", addr).Msg("starting api server")
	if err := server.Start(e, addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
