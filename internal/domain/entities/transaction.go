package entities

import "time"

const (
	TransactionStatusCaptured = "CAPTURED"
	TransactionTypePayment    = "PAYMENT"
	PaymentTypeCard           = "CARD"
)

type TransactionMetadata struct {
	OriginType        string `json:"originType" dynamodbav:"origin_type"`
	OriginID          string `json:"originId" dynamodbav:"origin_id"`
	OriginDisplayName string `json:"originDisplayName" dynamodbav:"origin_display_name"`
}

type CardData struct {
	Last4           string `json:"last4" dynamodbav:"last4"`
	Brand           string `json:"brand" dynamodbav:"brand"`
	ExpirationYear  string `json:"expirationYear" dynamodbav:"expiration_year"`
	ExpirationMonth string `json:"expirationMonth" dynamodbav:"expiration_month"`
}

// Transaction is a gateway-level payment record.
//
// OriginalTransactionID links a refund to the payment it reverses and
// CommitmentID links a payment to its commitment when it was recurring.
type Transaction struct {
	ID                    string              `json:"id" dynamodbav:"id" validate:"required"`
	FirstName             string              `json:"firstName" dynamodbav:"first_name"`
	LastName              string              `json:"lastName" dynamodbav:"last_name"`
	Email                 string              `json:"email" dynamodbav:"email"`
	Metadata              TransactionMetadata `json:"metadata" dynamodbav:"metadata"`
	Type                  string              `json:"type" dynamodbav:"type"`
	OriginalTransactionID string              `json:"originalTransactionId" dynamodbav:"original_transaction_id"`
	CommitmentID          *string             `json:"commitmentId" dynamodbav:"commitment_id"`
	GatewayID             string              `json:"gatewayId" dynamodbav:"gateway_id"`
	Amount                int64               `json:"amount" dynamodbav:"amount"`
	AmountRefunded        int64               `json:"amountRefunded" dynamodbav:"amount_refunded"`
	CurrencyCode          string              `json:"currencyCode" dynamodbav:"currency_code"`
	Status                string              `json:"status" dynamodbav:"status" validate:"required"`
	PaymentType           string              `json:"paymentType" dynamodbav:"payment_type"`
	MostRecentReceiptID   string              `json:"mostRecentReceiptId" dynamodbav:"most_recent_receipt_id"`
	Timestamp             time.Time           `json:"timestamp" dynamodbav:"timestamp"`
	CreatedAt             time.Time           `json:"createdAt" dynamodbav:"created_at"`
	AuthorizedAt          time.Time           `json:"authorizedAt" dynamodbav:"authorized_at"`
	CardData              CardData            `json:"cardData" dynamodbav:"card_data"`
}

func (t Transaction) GetID() string {
	return t.ID
}

func (t Transaction) BelongsTo(commitmentID string) bool {
	return t.CommitmentID != nil && *t.CommitmentID == commitmentID
}

func (t Transaction) Clone() Transaction {
	out := t
	if t.CommitmentID != nil {
		id := *t.CommitmentID
		out.CommitmentID = &id
	}
	return out
}
