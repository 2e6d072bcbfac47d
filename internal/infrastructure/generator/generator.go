package generator

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/interfaces"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	defaultOrganizationID = 12363
	defaultCurrency       = "USD"
	installmentSucceeded  = "SUCCEEDED"
	cardBrand             = "VISA"
	paymentGateway        = "SFDO Test"
	paymentGatewayNick    = "SFDO"
	originTypeGivingPage  = "GIVING_PAGE"
	billingCycle          = 30 * 24 * time.Hour
	maxCustomFields       = 10
)

// Generator produces demo commitments with their transactions.
//
// Distribution:
//   - 85% ACTIVE, the rest split evenly between CANCELED and STOPPED
//   - recurring amount 1000 + n*1000 for n in [0, 250)
//   - 1 to 10 monthly installments already paid, one transaction each
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time
}

var _ interfaces.IDataGenerator = (*Generator)(nil)

// New returns a generator. A zero seed draws a random one.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed), now: time.Now}
}

func (g *Generator) Generate(count int) ([]entities.Commitment, []entities.Transaction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	commitments := make([]entities.Commitment, 0, count)
	var transactions []entities.Transaction
	for i := 0; i < count; i++ {
		c, txs := g.commitment()
		commitments = append(commitments, c)
		transactions = append(transactions, txs...)
	}
	if transactions == nil {
		transactions = []entities.Transaction{}
	}
	return commitments, transactions
}

func (g *Generator) commitment() (entities.Commitment, []entities.Transaction) {
	f := g.faker
	now := g.now().UTC()

	id := uuid.NewString()
	status := g.status()
	amount := int64(1000 + f.IntRange(0, 249)*1000)
	months := f.IntRange(1, 10)
	nextPayment := now.Add(billingCycle)
	window := now.Add(-time.Duration(months) * billingCycle)

	firstName := f.FirstName()
	lastName := f.LastName()
	email := fmt.Sprintf("%s.%s@%s", firstName, lastName, f.DomainName())

	installments := make([]entities.Installment, 0, months)
	transactions := make([]entities.Transaction, 0, months)
	for i := 0; i < months; i++ {
		date := nextPayment.Add(-time.Duration(i+1) * billingCycle)
		tx := g.transaction(id, firstName, lastName, email, amount, date)
		transactions = append(transactions, tx)
		installments = append(installments, entities.Installment{
			TransactionID: tx.ID,
			Date:          date,
			Status:        installmentSucceeded,
			Amount:        amount,
			Currency:      defaultCurrency,
		})
	}

	return entities.Commitment{
		ID:                id,
		OrganizationID:    defaultOrganizationID,
		CreationTimestamp: f.DateRange(window, now).UTC(),
		StartedTimestamp:  f.DateRange(window, now).UTC(),
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		AmountPaidToDate:  amount * int64(months),
		Currency:          defaultCurrency,
		Status:            status,
		PaymentMethod:     g.paymentMethod(),
		Schedules: []entities.Schedule{{
			ID:                   uuid.NewString(),
			NextPaymentTimestamp: nextPayment,
			RecurringAmount:      amount,
			Frequency:            entities.FrequencyMonth,
			Status:               status,
		}},
		Installments: installments,
		CustomFields: g.customFields(),
	}, transactions
}

func (g *Generator) status() entities.CommitmentStatus {
	if g.faker.Float64() > 0.15 {
		return entities.CommitmentStatusActive
	}
	if g.faker.Float64() > 0.5 {
		return entities.CommitmentStatusCanceled
	}
	return entities.CommitmentStatusStopped
}

func (g *Generator) transaction(commitmentID, firstName, lastName, email string, amount int64, date time.Time) entities.Transaction {
	id := uuid.NewString()
	cid := commitmentID
	return entities.Transaction{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Metadata: entities.TransactionMetadata{
			OriginType:        originTypeGivingPage,
			OriginID:          uuid.NewString(),
			OriginDisplayName: "Giving Page",
		},
		Type:                  entities.TransactionTypePayment,
		OriginalTransactionID: id,
		CommitmentID:          &cid,
		GatewayID:             uuid.NewString(),
		Amount:                amount,
		CurrencyCode:          defaultCurrency,
		Status:                entities.TransactionStatusCaptured,
		PaymentType:           entities.PaymentTypeCard,
		MostRecentReceiptID:   uuid.NewString(),
		Timestamp:             date,
		CreatedAt:             date,
		AuthorizedAt:          date,
		CardData: entities.CardData{
			Last4:           g.lastFour(),
			Brand:           cardBrand,
			ExpirationYear:  "2023",
			ExpirationMonth: "04",
		},
	}
}

func (g *Generator) paymentMethod() entities.PaymentMethod {
	return entities.PaymentMethod{
		Origin:                 g.faker.AchAccount(),
		OriginName:             g.faker.Company() + " Giving Page",
		PaymentGateway:         paymentGateway,
		PaymentGatewayNickname: paymentGatewayNick,
		Card:                   cardBrand,
		LastFour:               g.lastFour(),
		Expiration:             "01/21",
	}
}

// customFields stops at the first failed coin flip, so most commitments get
// zero to two fields.
func (g *Generator) customFields() entities.CustomFields {
	fields := entities.CustomFields{}
	for i := 0; i < maxCustomFields; i++ {
		if g.faker.Float64() < 0.5 {
			break
		}
		fields[strings.TrimSpace(g.faker.Company())] = g.faker.UUID()
	}
	return fields
}

func (g *Generator) lastFour() string {
	return strconv.Itoa(g.faker.IntRange(1000, 9999))
}
