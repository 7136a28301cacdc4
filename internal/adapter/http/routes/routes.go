package routes

import (
	"context"
	"log"
	"strconv"

	_ "fleet_bill_verifier/docs"
	"fleet_bill_verifier/internal/adapter/http/handlers"
	"fleet_bill_verifier/internal/adapter/http/middleware"
	"fleet_bill_verifier/internal/adapter/persistence/repository"
	"fleet_bill_verifier/internal/infrastructure/config"
	"fleet_bill_verifier/internal/infrastructure/database"
	"fleet_bill_verifier/internal/infrastructure/marketdata"
	"fleet_bill_verifier/internal/usecase"
	"fleet_bill_verifier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	router := newRouter(cfg, buildMarketPriceProvider(context.Background(), cfg))

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func newRouter(cfg config.Config, provider interfaces.IMarketPriceProvider) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	invoiceUseCase := usecase.NewInvoiceEvaluationUseCase(provider, cfg.LookupTimeout)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, cfg.DefaultMarginPct)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInvoiceRoutes(v1, invoiceHandler)
	return router
}

// buildMarketPriceProvider returns nil when no price source is configured; evaluation
// then answers 503 instead of rejecting every line.
func buildMarketPriceProvider(ctx context.Context, cfg config.Config) interfaces.IMarketPriceProvider {
	var provider interfaces.IMarketPriceProvider
	if cfg.MarketPriceMock {
		fixtures, err := marketdata.NewFixtureProvider(cfg.MarketFixturesPath)
		if err != nil {
			log.Printf("[market][routes] fixture provider not configured: %v", err)
			return nil
		}
		provider = fixtures
	} else {
		serp, err := marketdata.NewSerpAPIProvider(marketdata.SerpAPIConfig{
			APIKey:   cfg.SerpAPIKey,
			BaseURL:  cfg.SerpAPIBaseURL,
			Language: cfg.ShoppingLang,
			Country:  cfg.ShoppingCountry,
			RPS:      cfg.LookupRPS,
		})
		if err != nil {
			log.Printf("[market][routes] SerpAPI provider not configured: %v", err)
			return nil
		}
		provider = serp
	}

	if cfg.MarketCacheTTL <= 0 {
		return provider
	}

	var store interfaces.IMarketQuoteRepository
	if cfg.MarketQuotesTable != "" {
		ddb, err := database.NewDynamoDBClient(ctx, database.DynamoDBSettingsFromEnv())
		if err != nil {
			log.Printf("[market][routes] quote store disabled: %v", err)
		} else {
			store = repository.NewMarketQuoteDynamoRepository(ddb, cfg.MarketQuotesTable)
		}
	}
	return marketdata.NewCachedProvider(provider, store, cfg.MarketCacheTTL)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
}
