package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "orders/internal/adapters/in/http"
	dynamoorderrepo "orders/internal/adapters/out/dynamo/orderrepo"
	memoryorderrepo "orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/health"
	"orders/internal/jobs"
	"orders/internal/metrics"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// OrderStore is the repository surface the composition root wires: the
// repository port plus the reachability probe used by the health check.
type OrderStore interface {
	ports.OrderRepository
	jobs.StorePinger
}

// CompositionRoot wires adapters and use cases according to the configuration.
type CompositionRoot struct {
	orderStore   OrderStore
	orderMetrics *metrics.OrderMetrics
	logger       *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured store driver.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (CompositionRoot, error) {
	store, err := newOrderStore(ctx, config)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderStore:   store,
		orderMetrics: metrics.NewOrderMetrics(),
		logger:       logger,
	}, nil
}

func newOrderStore(ctx context.Context, config Config) (OrderStore, error) {
	switch config.StoreDriver {
	case StoreDriverMemory:
		return memoryorderrepo.NewInMemoryOrderRepository(), nil
	case StoreDriverDynamo:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}

		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if config.DynamoEndpoint != "" {
				o.BaseEndpoint = &config.DynamoEndpoint
			}
		})
		return dynamoorderrepo.NewDynamoOrderRepository(client, config.DynamoTable), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", config.StoreDriver)
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	return commands.NewRegisterOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetRegisteredOrdersQueryHandler() queries.GetRegisteredOrdersQueryHandler {
	return queries.NewGetRegisteredOrdersQueryHandler(c.orderStore)
}

// CreateHTTPServer wires the inbound HTTP adapter over the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetRegisteredOrdersQueryHandler(),
		c.orderMetrics,
		c.logger,
	)
}

// CreateStoreProbeJob wires the periodic store reachability probe.
func (c *CompositionRoot) CreateStoreProbeJob() *jobs.StoreProbeJob {
	return jobs.NewStoreProbeJob(c.orderStore, c.logger)
}

// CreateHealthHandler wires the health endpoint over the store probe.
func (c *CompositionRoot) CreateHealthHandler(probeJob *jobs.StoreProbeJob) *health.Handler {
	handler := health.NewHandler()
	handler.RegisterChecker("store", health.NewSimpleChecker("store", probeJob.LastResult))
	return handler
}
