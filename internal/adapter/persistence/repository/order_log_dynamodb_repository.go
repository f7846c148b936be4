package repository

import (
	"context"
	"encoding/json"

	"mealweek/internal/domain/entities"
	"mealweek/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultOrderLogsTableName = "order_logs"

// Item sets are stored as raw JSON documents: the log is an audit artifact
// read back whole, never queried by item fields.
type orderLogItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"order_id"`
	PreviousItems string `dynamodbav:"previous_items"`
	NewItems      string `dynamodbav:"new_items"`
	PreviousTotal string `dynamodbav:"previous_total"`
	NewTotal      string `dynamodbav:"new_total"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// OrderLogDynamoRepository persists the append-only amendment trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: order_id (string)

type OrderLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderLogRepository = (*OrderLogDynamoRepository)(nil)

func NewOrderLogDynamoRepository(ddb *dynamodb.Client) *OrderLogDynamoRepository {
	return &OrderLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_LOGS_TABLE", defaultOrderLogsTableName),
	}
}

func (r *OrderLogDynamoRepository) Append(ctx context.Context, l entities.OrderLog) (entities.OrderLog, error) {
	prev, err := json.Marshal(l.PreviousItems)
	if err != nil {
		return entities.OrderLog{}, err
	}
	next, err := json.Marshal(l.NewItems)
	if err != nil {
		return entities.OrderLog{}, err
	}

	av, err := attributevalue.MarshalMap(orderLogItem{
		ID:            l.ID,
		OrderID:       l.OrderID,
		PreviousItems: string(prev),
		NewItems:      string(next),
		PreviousTotal: floatToString(l.PreviousTotal),
		NewTotal:      floatToString(l.NewTotal),
		CreatedAt:     formatTime(l.CreatedAt),
	})
	if err != nil {
		return entities.OrderLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OrderLog{}, err
	}
	return l, nil
}
