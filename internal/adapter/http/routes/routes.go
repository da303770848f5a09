package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "printdesk/docs"
	"printdesk/internal/adapter/http/handlers"
	"printdesk/internal/infrastructure/catalog"
	"printdesk/internal/infrastructure/config"
	"printdesk/internal/infrastructure/logger"
	"printdesk/internal/infrastructure/payments"
	"printdesk/internal/usecase"
	"printdesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Pricing        *handlers.PricingHandler
	Order          *handlers.OrderHandler
	Column         *handlers.ColumnHandler
	Quote          *handlers.QuoteHandler
	Invoice        *handlers.InvoiceHandler
	InvoicePayment *handlers.InvoicePaymentHandler
	Coupon         *handlers.CouponHandler
	Bundle         *handlers.BundleHandler
}

// Run wires storage, locking, the catalog and payments from cfg and serves until
// the listener fails.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx := context.Background()

	repos, err := newRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}

	locker, err := newLocker(cfg, log)
	if err != nil {
		return err
	}

	products, err := catalog.Load(cfg.Storage.CatalogFile, log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("[payment][bootstrap] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	h := Handlers{
		Pricing: handlers.NewPricingHandler(usecase.NewPricingUseCase(products, log)),
		Order:   handlers.NewOrderHandler(usecase.NewOrderUseCase(repos.orders, repos.columns, locker, log), log),
		Column:  handlers.NewColumnHandler(usecase.NewColumnUseCase(repos.columns, log)),
		Quote:   handlers.NewQuoteHandler(usecase.NewQuoteUseCase(repos.quotes, repos.invoices, locker, log)),
		Invoice: handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(repos.invoices, repos.orders, repos.columns, locker, log), log),
		InvoicePayment: handlers.NewInvoicePaymentHandler(
			usecase.NewInvoicePaymentUseCase(repos.payments, repos.invoices, gateway, usecase.PaymentSettings{
				Mock:            cfg.Payments.MockEnabled(),
				AccessToken:     cfg.Payments.AccessToken,
				TestPayerEmail:  cfg.Payments.TestPayerEmail,
				TestPayerUserID: cfg.Payments.TestPayerUserID,
			}, log),
			cfg.Payments.MockEnabled(),
			log,
		),
		Coupon: handlers.NewCouponHandler(usecase.NewCouponUseCase(repos.coupons, log)),
		Bundle: handlers.NewBundleHandler(usecase.NewBundleUseCase(repos.bundles, products, log)),
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := NewRouter(h, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("[server] listening", zap.String("addr", addr), zap.String("storage", cfg.Storage.Driver), zap.String("lock", cfg.Lock.Driver))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the application: %w", err)
	}
	return nil
}

func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Pricing)
	addProductionRoutes(v1, h.Order, h.Column)
	addBillingRoutes(v1, h.Quote, h.Invoice, h.InvoicePayment, h.Coupon)
	addMarketingRoutes(v1, h.Bundle)
	return router
}

// Ping godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
