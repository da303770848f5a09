package routes

import (
	"context"
	"fmt"

	"printdesk/internal/adapter/persistence/repository"
	"printdesk/internal/infrastructure/config"
	"printdesk/internal/infrastructure/database"
	"printdesk/internal/infrastructure/lock"
	"printdesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type repositories struct {
	orders   interfaces.IOrderRepository
	columns  interfaces.IWorkflowColumnRepository
	quotes   interfaces.IQuoteRepository
	invoices interfaces.IInvoiceRepository
	payments interfaces.IInvoicePaymentRepository
	coupons  interfaces.ICouponRepository
	bundles  interfaces.IBundleRepository
}

func newRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		t := cfg.DynamoDB
		log.Info("[storage][bootstrap] using dynamodb",
			zap.String("region", t.Region),
			zap.String("endpoint", t.Endpoint))
		return repositories{
			orders:   repository.NewOrderDynamoRepository(ddb, t.OrdersTable),
			columns:  repository.NewColumnDynamoRepository(ddb, t.ColumnsTable),
			quotes:   repository.NewQuoteDynamoRepository(ddb, t.QuotesTable),
			invoices: repository.NewInvoiceDynamoRepository(ddb, t.InvoicesTable),
			payments: repository.NewInvoicePaymentDynamoRepository(ddb, t.PaymentsTable),
			coupons:  repository.NewCouponDynamoRepository(ddb, t.CouponsTable),
			bundles:  repository.NewBundleDynamoRepository(ddb, t.BundlesTable),
		}, nil
	default:
		store, err := repository.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return repositories{}, err
		}
		log.Info("[storage][bootstrap] using json files", zap.String("dir", cfg.Storage.DataDir))
		return repositories{
			orders:   repository.NewOrderFileRepository(store),
			columns:  repository.NewColumnFileRepository(store),
			quotes:   repository.NewQuoteFileRepository(store),
			invoices: repository.NewInvoiceFileRepository(store),
			payments: repository.NewInvoicePaymentFileRepository(store),
			coupons:  repository.NewCouponFileRepository(store),
			bundles:  repository.NewBundleFileRepository(store),
		}, nil
	}
}

func newLocker(cfg *config.Config, log *zap.Logger) (interfaces.ILocker, error) {
	if cfg.Lock.Driver != config.LockRedis {
		return lock.NewMemoryLocker(), nil
	}
	client, err := lock.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info("[lock][bootstrap] using redis", zap.String("addr", cfg.Redis.Addr))
	return lock.NewRedisLocker(client, cfg.Lock, log), nil
}
