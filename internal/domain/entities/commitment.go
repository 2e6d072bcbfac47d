package entities

import (
	"maps"
	"slices"
	"time"
)

// CommitmentStatus represents the lifecycle of a recurring donation agreement.
//
// Domain notes:
//   - Commitments are created in bulk by the generator and never deleted.
//   - STOPPED and REFUNDED are only reached through the stop/refund actions.

type CommitmentStatus string

const (
	CommitmentStatusActive   CommitmentStatus = "ACTIVE"
	CommitmentStatusCanceled CommitmentStatus = "CANCELED"
	CommitmentStatusStopped  CommitmentStatus = "STOPPED"
	CommitmentStatusRefunded CommitmentStatus = "REFUNDED"
)

// FilterableStatuses are the statuses accepted by the list status filter.
var FilterableStatuses = []CommitmentStatus{
	CommitmentStatusActive,
	CommitmentStatusCanceled,
	CommitmentStatusStopped,
}

func (s CommitmentStatus) IsFilterable() bool {
	for _, st := range FilterableStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type Frequency string

const (
	FrequencyMonth Frequency = "MONTH"
)

// CustomFields maps a custom field name to its value.
type CustomFields map[string]string

// Schedule is the recurring cadence of a commitment.
type Schedule struct {
	ID                   string           `json:"id" dynamodbav:"id"`
	NextPaymentTimestamp time.Time        `json:"nextPaymentTimestamp" dynamodbav:"next_payment_timestamp"`
	RecurringAmount      int64            `json:"recurringAmount" dynamodbav:"recurring_amount"`
	Frequency            Frequency        `json:"frequency" dynamodbav:"frequency"`
	Status               CommitmentStatus `json:"status" dynamodbav:"status"`
}

// Installment is one payment under a commitment. TransactionID points into
// the transactions collection; the installment does not own the transaction.
type Installment struct {
	TransactionID string    `json:"transactionId" dynamodbav:"transaction_id"`
	Date          time.Time `json:"date" dynamodbav:"date"`
	Status        string    `json:"status" dynamodbav:"status"`
	Amount        int64     `json:"amount" dynamodbav:"amount"`
	Currency      string    `json:"currency" dynamodbav:"currency"`
}

// PaymentMethod is a snapshot of the instrument used by the donor.
type PaymentMethod struct {
	Origin                 string `json:"origin" dynamodbav:"origin"`
	OriginName             string `json:"originName" dynamodbav:"origin_name"`
	PaymentGateway         string `json:"paymentGateway" dynamodbav:"payment_gateway"`
	PaymentGatewayNickname string `json:"paymentGatewayNickname" dynamodbav:"payment_gateway_nickname"`
	Card                   string `json:"card" dynamodbav:"card"`
	LastFour               string `json:"lastFour" dynamodbav:"last_four"`
	Expiration             string `json:"expiration" dynamodbav:"expiration"`
}

// Commitment is a recurring donation agreement.
//
// Storage model:
//   - JSON file: array of commitments, order preserved.
//   - DynamoDB: PK id, one attribute per dynamodbav tag plus its position.
//
// Monetary representation:
//   - AmountPaidToDate, PledgeAmount and schedule amounts are in the smallest
//     currency unit.
//   - Schedules[0] is the current schedule.
type Commitment struct {
	ID                string           `json:"id" dynamodbav:"id" validate:"required"`
	OrganizationID    int64            `json:"organizationId" dynamodbav:"organization_id"`
	CreationTimestamp time.Time        `json:"creationTimestamp" dynamodbav:"creation_timestamp"`
	StartedTimestamp  time.Time        `json:"startedTimestamp" dynamodbav:"started_timestamp"`
	FirstName         string           `json:"firstName" dynamodbav:"first_name"`
	LastName          string           `json:"lastName" dynamodbav:"last_name"`
	Email             string           `json:"email" dynamodbav:"email"`
	AmountPaidToDate  int64            `json:"amountPaidToDate" dynamodbav:"amount_paid_to_date"`
	PledgeAmount      *int64           `json:"pledgeAmount" dynamodbav:"pledge_amount"`
	Currency          string           `json:"currency" dynamodbav:"currency"`
	Status            CommitmentStatus `json:"status" dynamodbav:"status" validate:"required,oneof=ACTIVE CANCELED STOPPED REFUNDED"`
	PaymentMethod     PaymentMethod    `json:"paymentMethod" dynamodbav:"payment_method"`
	Schedules         []Schedule       `json:"schedules" dynamodbav:"schedules"`
	Installments      []Installment    `json:"installments" dynamodbav:"installments"`
	CustomFields      CustomFields     `json:"customFields" dynamodbav:"custom_fields"`
}

func (c Commitment) GetID() string {
	return c.ID
}

// CurrentSchedule returns the schedule consulted by the dashboard.
func (c Commitment) CurrentSchedule() (Schedule, bool) {
	if len(c.Schedules) == 0 {
		return Schedule{}, false
	}
	return c.Schedules[0], true
}

// Clone returns a copy of c that shares no slices, maps or pointers with it.
func (c Commitment) Clone() Commitment {
	out := c
	out.Schedules = slices.Clone(c.Schedules)
	out.Installments = slices.Clone(c.Installments)
	out.CustomFields = maps.Clone(c.CustomFields)
	if c.PledgeAmount != nil {
		pledge := *c.PledgeAmount
		out.PledgeAmount = &pledge
	}
	return out
}
