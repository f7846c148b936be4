package entities

import (
	"strconv"
	"time"
)

// SubscriptionFrequency represents how a customer is billed for meal plans.

type SubscriptionFrequency string

const (
	FrequencyWeekly   SubscriptionFrequency = "weekly"
	FrequencyMonthly  SubscriptionFrequency = "monthly"
	FrequencyALaCarte SubscriptionFrequency = "a_la_carte"
	FrequencyNone     SubscriptionFrequency = "none"
)

// Customer is the subscriber record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Domain notes:
//   - PlanCredits is mutated only through the credit capability on the
//     customer repository (consume one / grant a block), never by direct
//     read-modify-write in application code.
//   - Tier may be absent; pricing treats a missing tier as a zero base cost.

type Customer struct {
	ID                    string                `json:"id"`
	FirstName             string                `json:"first_name"`
	LastName              string                `json:"last_name"`
	Email                 string                `json:"email"`
	Phone                 string                `json:"phone"`
	Tier                  *Tier                 `json:"tier,omitempty"`
	SubscriptionFrequency SubscriptionFrequency `json:"subscription_frequency"`
	PlanCredits           int                   `json:"plan_credits"`
	Plan                  PlanConfig            `json:"plan"`
	Allergies             []string              `json:"allergies"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

const (
	DefaultDaysPerWeek = 5
	DefaultMealsPerDay = 2
)

// PlanConfig is the validated plan shape used by pricing. It is produced once
// at the system boundary; pricing code never parses raw fields.
type PlanConfig struct {
	DaysPerWeek      int  `json:"days_per_week"`
	MealsPerDay      int  `json:"meals_per_day"`
	IncludeBreakfast bool `json:"include_breakfast"`
}

// ResolvePlanConfig builds a PlanConfig from the loosely-typed plan fields
// stored on customer records. Empty or unparseable values fall back to the
// defaults (5 days, 2 meals/day).
func ResolvePlanConfig(daysPerWeek, mealsPerDay string, includeBreakfast bool) PlanConfig {
	return PlanConfig{
		DaysPerWeek:      parsePositiveInt(daysPerWeek, DefaultDaysPerWeek),
		MealsPerDay:      parsePositiveInt(mealsPerDay, DefaultMealsPerDay),
		IncludeBreakfast: includeBreakfast,
	}
}

func parsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
