package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoOrderRepository implements ports.OrderRepository against a single
// DynamoDB table. Every method is one store call; there is no transaction
// spanning calls, and transport failures are surfaced as store-unavailable
// errors distinct from not-found and version-conflict.
type DynamoOrderRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoOrderRepository creates a repository bound to the given table.
func NewDynamoOrderRepository(client *dynamodb.Client, table string) *DynamoOrderRepository {
	return &DynamoOrderRepository{
		client: client,
		table:  table,
	}
}

// Add writes a new order unconditionally. The aggregate is transitioned to
// Registered immediately before the write, so the persisted status is always
// Registered, and the stored version starts at 1.
func (r *DynamoOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.Register(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1

	item, err := attributevalue.MarshalMap(dto)
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("put", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("put", err)
	}

	return nil
}

// Update rewrites an existing order with a compare-and-swap: the item must
// exist and its version attribute must equal the version the aggregate was
// loaded with. On success the stored version is the loaded version plus one.
//
// A failed condition is disambiguated with a follow-up read: an absent item
// means the target vanished (not-found), a present item means a concurrent
// writer advanced the version (version-conflict).
func (r *DynamoOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expectedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = expectedVersion + 1

	item, err := attributevalue.MarshalMap(dto)
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("update", err)
	}

	condition := expression.And(
		expression.AttributeExists(expression.Name(attrOrderID)),
		expression.Name(attrVersion).Equal(expression.Value(expectedVersion)),
	)
	expr, err := expression.NewBuilder().WithCondition(condition).Build()
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("update", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.table),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err == nil {
		return nil
	}

	var conditionFailed *types.ConditionalCheckFailedException
	if !errors.As(err, &conditionFailed) {
		return errs.NewStoreUnavailableErrorWithCause("update", err)
	}

	id := aggregate.ID().String()
	if _, getErr := r.Get(ctx, aggregate.ID()); getErr != nil {
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("orderId", id, err)
		}
		return getErr
	}

	return errs.NewVersionConflictErrorWithCause(id, expectedVersion, err)
}

// Get performs a point lookup by partition key.
func (r *DynamoOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			attrOrderID: &types.AttributeValueMemberS{Value: id.String()},
		},
	})
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("get", err)
	}
	if len(out.Item) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	var dto OrderDTO
	if err = attributevalue.UnmarshalMap(out.Item, &dto); err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("get", err)
	}

	return toDomain(dto)
}

// GetAllRegistered runs a single-page scan with the given limit and a
// status filter. DynamoDB applies Limit to the items examined before the
// filter expression, so the result may hold fewer matches than limit even
// when more registered items exist. That examine-then-filter behavior is
// the endpoint's contract, not something to compensate for here.
func (r *DynamoOrderRepository) GetAllRegistered(ctx context.Context, limit int) ([]*order.Order, error) {
	filter := expression.Name(attrStatus).Equal(expression.Value(order.Registered.String()))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("scan", err)
	}

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		Limit:                     aws.Int32(int32(limit)), //nolint:gosec //limit is a small fixed constant
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("scan", err)
	}

	var dtos []OrderDTO
	if err = attributevalue.UnmarshalListOfMaps(out.Items, &dtos); err != nil {
		return nil, errs.NewStoreUnavailableErrorWithCause("scan", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// Ping checks that the table is reachable and answers metadata requests.
// Used by the background store probe feeding the health endpoint.
func (r *DynamoOrderRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return errs.NewStoreUnavailableErrorWithCause("describe-table", err)
	}
	return nil
}

var _ ports.OrderRepository = (*DynamoOrderRepository)(nil)
