package repository

import (
	"context"
	"errors"
	"time"

	"mealweek/internal/domain/entities"
	"mealweek/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	MenuItemID string `dynamodbav:"menu_item_id"`
	Name       string `dynamodbav:"name"`
	Category   string `dynamodbav:"category"`
	Quantity   int    `dynamodbav:"quantity"`
	WeekHalf   string `dynamodbav:"week_half"`
	UnitPrice  string `dynamodbav:"unit_price"`
	TotalPrice string `dynamodbav:"total_price"`
}

type allergenChargeItem struct {
	MenuItemID       string   `dynamodbav:"menu_item_id"`
	MealName         string   `dynamodbav:"meal_name"`
	MatchedAllergens []string `dynamodbav:"matched_allergens,omitempty"`
	Charge           string   `dynamodbav:"charge"`
}

type orderRecord struct {
	CustomerWeek          string               `dynamodbav:"customer_week"`
	ID                    string               `dynamodbav:"id"`
	OrderNumber           string               `dynamodbav:"order_number"`
	CustomerID            string               `dynamodbav:"customer_id"`
	Status                string               `dynamodbav:"status"`
	WeekOf                string               `dynamodbav:"week_of"`
	IsCreditUsed          bool                 `dynamodbav:"is_credit_used"`
	OrderItems            []orderLineItem      `dynamodbav:"order_items"`
	AllergenCharges       []allergenChargeItem `dynamodbav:"allergen_charges,omitempty"`
	TotalAllergenCharges  string               `dynamodbav:"total_allergen_charges"`
	Subtotal              string               `dynamodbav:"subtotal"`
	SubtotalWithAllergens string               `dynamodbav:"subtotal_with_allergens"`
	TaxAmount             string               `dynamodbav:"tax_amount"`
	TotalAmount           string               `dynamodbav:"total_amount"`
	WeekHalf              string               `dynamodbav:"week_half"`
	CreatedAt             string               `dynamodbav:"created_at"`
	UpdatedAt             string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: customer_week (string, "<customer_id>#<week_of>")
//
// We purposely use the (customer, week) composite as PK to guarantee one
// non-cancelled order per customer per billing week. Creation is a
// conditional put; losing the condition surfaces as ErrDuplicateOrderWeek so
// the coordinator can fall back to the amend path.

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

func customerWeekKey(customerID string, weekOf time.Time) string {
	return customerID + "#" + weekOf.UTC().Format(dateLayout)
}

func (r *OrderDynamoRepository) GetActiveByCustomerWeek(ctx context.Context, customerID string, weekOf time.Time) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_week": &types.AttributeValueMemberS{Value: customerWeekKey(customerID, weekOf)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	if rec.Status == string(entities.OrderStatusCancelled) {
		return entities.Order{}, nil
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	// A cancelled order may be replaced; anything else on this key wins.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#cw) OR #status = :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#cw":     "customer_week",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelled)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrDuplicateOrderWeek
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) UpdateItems(ctx context.Context, o entities.Order) (entities.Order, error) {
	itemsAV, err := attributevalue.Marshal(toOrderLines(o.OrderItems))
	if err != nil {
		return entities.Order{}, err
	}
	chargesAV, err := attributevalue.Marshal(toAllergenChargeItems(o.AllergenCharges))
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_week": &types.AttributeValueMemberS{Value: customerWeekKey(o.CustomerID, o.WeekOf)},
		},
		ConditionExpression: aws.String("attribute_exists(#cw)"),
		UpdateExpression: aws.String("SET #items = :items, #charges = :charges, " +
			"total_allergen_charges = :tac, subtotal = :sub, subtotal_with_allergens = :swa, " +
			"tax_amount = :tax, total_amount = :total, week_half = :wh, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#cw":      "customer_week",
			"#items":   "order_items",
			"#charges": "allergen_charges",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":items":      itemsAV,
			":charges":    chargesAV,
			":tac":        &types.AttributeValueMemberS{Value: floatToString(o.TotalAllergenCharges)},
			":sub":        &types.AttributeValueMemberS{Value: floatToString(o.Subtotal)},
			":swa":        &types.AttributeValueMemberS{Value: floatToString(o.SubtotalWithAllergens)},
			":tax":        &types.AttributeValueMemberS{Value: floatToString(o.TaxAmount)},
			":total":      &types.AttributeValueMemberS{Value: floatToString(o.TotalAmount)},
			":wh":         &types.AttributeValueMemberS{Value: string(o.WeekHalf)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(o.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderLines(items []entities.OrderItem) []orderLineItem {
	out := make([]orderLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, orderLineItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Category:   it.Category,
			Quantity:   it.Quantity,
			WeekHalf:   string(it.WeekHalf),
			UnitPrice:  floatToString(it.UnitPrice),
			TotalPrice: floatToString(it.TotalPrice),
		})
	}
	return out
}

func fromOrderLines(items []orderLineItem) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Category:   it.Category,
			Quantity:   it.Quantity,
			WeekHalf:   entities.WeekHalf(it.WeekHalf),
			UnitPrice:  stringToFloat(it.UnitPrice),
			TotalPrice: stringToFloat(it.TotalPrice),
		})
	}
	return out
}

func toAllergenChargeItems(charges []entities.AllergenCharge) []allergenChargeItem {
	out := make([]allergenChargeItem, 0, len(charges))
	for _, c := range charges {
		out = append(out, allergenChargeItem{
			MenuItemID:       c.MenuItemID,
			MealName:         c.MealName,
			MatchedAllergens: c.MatchedAllergens,
			Charge:           floatToString(c.Charge),
		})
	}
	return out
}

func fromAllergenChargeItems(charges []allergenChargeItem) []entities.AllergenCharge {
	out := make([]entities.AllergenCharge, 0, len(charges))
	for _, c := range charges {
		out = append(out, entities.AllergenCharge{
			MenuItemID:       c.MenuItemID,
			MealName:         c.MealName,
			MatchedAllergens: c.MatchedAllergens,
			Charge:           stringToFloat(c.Charge),
		})
	}
	return out
}

func toOrderRecord(o entities.Order) orderRecord {
	return orderRecord{
		CustomerWeek:          customerWeekKey(o.CustomerID, o.WeekOf),
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		CustomerID:            o.CustomerID,
		Status:                string(o.Status),
		WeekOf:                o.WeekOf.UTC().Format(dateLayout),
		IsCreditUsed:          o.IsCreditUsed,
		OrderItems:            toOrderLines(o.OrderItems),
		AllergenCharges:       toAllergenChargeItems(o.AllergenCharges),
		TotalAllergenCharges:  floatToString(o.TotalAllergenCharges),
		Subtotal:              floatToString(o.Subtotal),
		SubtotalWithAllergens: floatToString(o.SubtotalWithAllergens),
		TaxAmount:             floatToString(o.TaxAmount),
		TotalAmount:           floatToString(o.TotalAmount),
		WeekHalf:              string(o.WeekHalf),
		CreatedAt:             formatTime(o.CreatedAt),
		UpdatedAt:             formatTime(o.UpdatedAt),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	weekOf, _ := time.Parse(dateLayout, rec.WeekOf)
	return entities.Order{
		ID:                    rec.ID,
		OrderNumber:           rec.OrderNumber,
		CustomerID:            rec.CustomerID,
		Status:                entities.OrderStatus(rec.Status),
		WeekOf:                weekOf,
		IsCreditUsed:          rec.IsCreditUsed,
		OrderItems:            fromOrderLines(rec.OrderItems),
		AllergenCharges:       fromAllergenChargeItems(rec.AllergenCharges),
		TotalAllergenCharges:  stringToFloat(rec.TotalAllergenCharges),
		Subtotal:              stringToFloat(rec.Subtotal),
		SubtotalWithAllergens: stringToFloat(rec.SubtotalWithAllergens),
		TaxAmount:             stringToFloat(rec.TaxAmount),
		TotalAmount:           stringToFloat(rec.TotalAmount),
		WeekHalf:              entities.WeekHalf(rec.WeekHalf),
		CreatedAt:             parseTime(rec.CreatedAt),
		UpdatedAt:             parseTime(rec.UpdatedAt),
	}
}
