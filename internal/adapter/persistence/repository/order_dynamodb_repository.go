package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	PizzaID         string   `dynamodbav:"pizzaId"`
	Quantity        int      `dynamodbav:"quantity"`
	ExtraToppingIDs []string `dynamodbav:"extraToppingIds,omitempty"`
}

type orderItem struct {
	ID                    string          `dynamodbav:"id"`
	UserID                string          `dynamodbav:"userId"`
	CreatedAt             string          `dynamodbav:"createdAt"`
	Items                 []orderLineItem `dynamodbav:"items"`
	EstimatedCompletionAt string          `dynamodbav:"estimatedCompletionAt"`
	TotalPrice            string          `dynamodbav:"totalPrice"`
	Status                string          `dynamodbav:"status"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Ids are uuid v4 assigned here at Create time; the timestamp-derived ids of
// earlier revisions collide under concurrent creation.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()

	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

// UpdateStatusByID flips status from `from` to `to` as a conditional update,
// so a concurrent transition fails the condition instead of being
// overwritten. Absent order and failed precondition both come back as a zero
// Order.
func (r *OrderDynamoRepository) UpdateStatusByID(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, orderLineItem{
			PizzaID:         it.PizzaID,
			Quantity:        it.Quantity,
			ExtraToppingIDs: it.ExtraToppingIDs,
		})
	}
	return orderItem{
		ID:                    o.ID,
		UserID:                o.UserID,
		CreatedAt:             o.CreatedAt.UTC().Format(time.RFC3339Nano),
		Items:                 lines,
		EstimatedCompletionAt: o.EstimatedCompletionAt.UTC().Format(time.RFC3339Nano),
		TotalPrice:            floatToString(o.TotalPrice),
		Status:                string(o.Status),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	estimatedAt, _ := time.Parse(time.RFC3339Nano, it.EstimatedCompletionAt)
	total, _ := strconv.ParseFloat(it.TotalPrice, 64)

	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		lines = append(lines, entities.OrderItem{
			PizzaID:         li.PizzaID,
			Quantity:        li.Quantity,
			ExtraToppingIDs: li.ExtraToppingIDs,
		})
	}
	return entities.Order{
		ID:                    it.ID,
		UserID:                it.UserID,
		CreatedAt:             createdAt,
		Items:                 lines,
		EstimatedCompletionAt: estimatedAt,
		TotalPrice:            total,
		Status:                entities.OrderStatus(it.Status),
	}
}
