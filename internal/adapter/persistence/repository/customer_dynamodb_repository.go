package repository

import (
	"context"
	"errors"
	"strconv"

	"mealweek/internal/domain/entities"
	"mealweek/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customerEmailIndex        = "email-index"
)

type tierItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"tier_name"`
	SinglePrice string `dynamodbav:"single_price"`
}

// Plan shape is stored loosely typed, like money fields; the validated
// PlanConfig is built once in fromCustomerItem via ResolvePlanConfig.
type customerItem struct {
	ID               string    `dynamodbav:"id"`
	FirstName        string    `dynamodbav:"first_name"`
	LastName         string    `dynamodbav:"last_name"`
	Email            string    `dynamodbav:"email"`
	Phone            string    `dynamodbav:"phone"`
	Tier             *tierItem `dynamodbav:"tier,omitempty"`
	Frequency        string    `dynamodbav:"subscription_frequency"`
	PlanCredits      int       `dynamodbav:"plan_credits"`
	DaysPerWeek      string    `dynamodbav:"days_per_week"`
	MealsPerDay      string    `dynamodbav:"meals_per_day"`
	IncludeBreakfast bool      `dynamodbav:"include_breakfast"`
	Allergies        []string  `dynamodbav:"allergies,omitempty"`
	CreatedAt        string    `dynamodbav:"created_at"`
	UpdatedAt        string    `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email (string)
//
// The credit capability is implemented as single conditional UpdateItem
// calls so concurrent submissions cannot double-consume or double-grant.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customerEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) TryConsumeCredit(ctx context.Context, customerID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #credits > :zero"),
		UpdateExpression:    aws.String("SET #credits = #credits - :one"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#credits": "plan_credits",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *CustomerDynamoRepository) GrantCredits(ctx context.Context, customerID string, n int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #credits :n"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#credits": "plan_credits",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberN{Value: strconv.Itoa(n)},
		},
	})
	return err
}

func toCustomerItem(c entities.Customer) customerItem {
	it := customerItem{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Frequency:        string(c.SubscriptionFrequency),
		PlanCredits:      c.PlanCredits,
		DaysPerWeek:      strconv.Itoa(c.Plan.DaysPerWeek),
		MealsPerDay:      strconv.Itoa(c.Plan.MealsPerDay),
		IncludeBreakfast: c.Plan.IncludeBreakfast,
		Allergies:        c.Allergies,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
	if c.Tier != nil {
		it.Tier = &tierItem{
			ID:          c.Tier.ID,
			Name:        c.Tier.Name,
			SinglePrice: floatToString(c.Tier.SinglePrice),
		}
	}
	return it
}

func fromCustomerItem(it customerItem) entities.Customer {
	c := entities.Customer{
		ID:                    it.ID,
		FirstName:             it.FirstName,
		LastName:              it.LastName,
		Email:                 it.Email,
		Phone:                 it.Phone,
		SubscriptionFrequency: entities.SubscriptionFrequency(it.Frequency),
		PlanCredits:           it.PlanCredits,
		Plan:                  entities.ResolvePlanConfig(it.DaysPerWeek, it.MealsPerDay, it.IncludeBreakfast),
		Allergies:             it.Allergies,
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
	if it.Tier != nil {
		c.Tier = &entities.Tier{
			ID:          it.Tier.ID,
			Name:        it.Tier.Name,
			SinglePrice: stringToFloat(it.Tier.SinglePrice),
		}
	}
	return c
}
