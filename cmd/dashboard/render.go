package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/pkg/client"

	"github.com/shopspring/decimal"
)

// Amounts are stored in thousandths of the currency unit.
const amountExponent = -3

const dateLayout = "01/02/2006"

// fixCasing turns "ACTIVE" into "Active".
func fixCasing(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func formatAmount(amount int64, currency string) string {
	value := decimal.New(amount, amountExponent).StringFixed(2)
	if currency == "" {
		return "$" + value
	}
	return "$" + value + " " + currency
}

type row struct {
	donor       string
	email       string
	total       string
	nextDate    string
	nextPayment string
	status      string
}

func toRow(c entities.Commitment) row {
	r := row{
		donor:  strings.TrimSpace(c.FirstName + " " + c.LastName),
		email:  c.Email,
		total:  formatAmount(c.AmountPaidToDate, c.Currency),
		status: fixCasing(string(c.Status)),
	}
	if schedule, ok := c.CurrentSchedule(); ok {
		r.nextDate = schedule.NextPaymentTimestamp.Format(dateLayout)
		r.nextPayment = fmt.Sprintf("%s / %s", formatAmount(schedule.RecurringAmount, c.Currency), schedule.Frequency)
	}
	return r
}

func renderPage(w io.Writer, page client.CommitmentPage) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Donor\tTotal Giving\tNext Installment\tStatus")
	for _, c := range page.Commitments {
		r := toRow(c)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.donor, r.total, r.nextDate, r.status)
		fmt.Fprintf(tw, "%s\t\t%s\t\n", r.email, r.nextPayment)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	source := "api"
	if page.FromCache {
		source = "cache"
	}
	_, err := fmt.Fprintf(w, "\n%s of %d commitments (%s)\n", pageRange(page), page.Pagination.TotalCount, source)
	return err
}

func pageRange(page client.CommitmentPage) string {
	if len(page.Commitments) == 0 {
		return "0"
	}
	start := 0
	if page.Pagination.PageStart != nil {
		start = *page.Pagination.PageStart
	}
	return fmt.Sprintf("%d-%d", start+1, start+len(page.Commitments))
}

func renderCommitment(w io.Writer, c entities.Commitment, txs []entities.Transaction) error {
	r := toRow(c)
	fmt.Fprintf(w, "%s <%s>\n", r.donor, r.email)
	fmt.Fprintf(w, "  id:            %s\n", c.ID)
	fmt.Fprintf(w, "  status:        %s\n", fixCasing(string(c.Status)))
	fmt.Fprintf(w, "  total giving:  %s\n", r.total)
	if r.nextDate != "" {
		fmt.Fprintf(w, "  next payment:  %s on %s\n", r.nextPayment, r.nextDate)
	}
	if len(txs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\n  Transaction\tDate\tAmount\tStatus")
	for _, tx := range txs {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", tx.ID, tx.CreatedAt.Format(dateLayout), formatAmount(tx.Amount, tx.CurrencyCode), fixCasing(tx.Status))
	}
	return tw.Flush()
}
