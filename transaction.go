package finbook

import (
	"fmt"
	"slices"
	"strings"
)

// TransactionType tells income from expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want income or expense", s)
	}
}

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

const (
	Cash          PaymentMethod = "cash"
	CreditCard    PaymentMethod = "credit_card"
	DebitCard     PaymentMethod = "debit_card"
	BankTransfer  PaymentMethod = "bank_transfer"
	DigitalWallet PaymentMethod = "digital_wallet"
	OtherPayment  PaymentMethod = "other"
)

// ParsePaymentMethod parses a string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash":
		return Cash, nil
	case "credit_card", "credit-card", "credit":
		return CreditCard, nil
	case "debit_card", "debit-card", "debit":
		return DebitCard, nil
	case "bank_transfer", "bank-transfer", "transfer":
		return BankTransfer, nil
	case "digital_wallet", "digital-wallet", "wallet":
		return DigitalWallet, nil
	case "other":
		return OtherPayment, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", s)
	}
}

// Defaults applied by Transaction.Validate when the field is left empty.
const (
	DefaultCategory = "general"
	DefaultAccount  = "default"
)

// Transaction is a dated, categorized monetary record. It is immutable once
// appended to a book; the only lifecycle operation besides creation is delete.
type Transaction struct {
	ID          ID
	Date        Date
	Type        TransactionType
	Amount      Money
	Description string
	Category    string
	Account     string
	Payment     PaymentMethod
	Tags        []string
	Notes       string
}

// NewTransaction creates a transaction with a fresh identifier. Empty
// category, account and payment are resolved to defaults by Validate.
func NewTransaction(day Date, t TransactionType, amount Money, description string) Transaction {
	return Transaction{
		ID:          NewID(),
		Date:        day,
		Type:        t,
		Amount:      amount,
		Description: description,
	}
}

// WithDetails returns a copy of the transaction with the optional fields set.
func (t Transaction) WithDetails(category, account string, payment PaymentMethod, tags []string, notes string) Transaction {
	t.Category = category
	t.Account = account
	t.Payment = payment
	t.Tags = tags
	t.Notes = notes
	return t
}

// Validate checks the transaction for correctness and applies quick fixes
// (zero date resolves to today, empty labels resolve to defaults, tags are
// deduplicated). It returns the validated, potentially modified, transaction.
func (t Transaction) Validate() (Transaction, error) {
	if t.ID == "" {
		t.ID = NewID()
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.Type != Income && t.Type != Expense {
		return t, fmt.Errorf("transaction type must be income or expense, got %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if strings.TrimSpace(t.Description) == "" {
		return t, fmt.Errorf("transaction description is missing")
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.Account == "" {
		t.Account = DefaultAccount
	}
	if t.Payment == "" {
		t.Payment = Cash
	}
	// Tags form a set: normalize and drop duplicates, keeping first-seen order.
	tags := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		// ";" separates tags in the CSV form, so it cannot appear inside one.
		if strings.Contains(tag, ";") {
			return t, fmt.Errorf("tag %q must not contain a semicolon", tag)
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = nil
	}
	t.Tags = tags
	return t, nil
}

// HasTag reports whether the transaction carries the given tag.
func (t Transaction) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Signed returns the amount with the sign of its effect on the balance:
// positive for income, negative for expense.
func (t Transaction) Signed() Money {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordTransaction)
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.EmbedFrom(t.Amount)
	w.Append("description", t.Description)
	w.Append("category", t.Category)
	w.Append("account", t.Account)
	w.Append("payment", t.Payment)
	w.Optional("tags", t.Tags)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// Filter predicates, composable with Book.Transactions.

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by type.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByAccount returns a predicate that filters transactions by account.
func ByAccount(account string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Account == account }
}

// ByTag returns a predicate that filters transactions carrying a tag.
func ByTag(tag string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.HasTag(tag) }
}

// ByText returns a predicate matching a case-insensitive substring of the
// description or the notes.
func ByText(text string) func(Transaction) bool {
	text = strings.ToLower(text)
	return func(tx Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Description), text) ||
			strings.Contains(strings.ToLower(tx.Notes), text)
	}
}

// ByAmountRange returns a predicate keeping transactions whose amount is
// within [min, max]. A zero bound is ignored.
func ByAmountRange(min, max Money) func(Transaction) bool {
	return func(tx Transaction) bool {
		if !min.IsZero() && tx.Amount.LessThan(min) {
			return false
		}
		if !max.IsZero() && tx.Amount.GreaterThan(max) {
			return false
		}
		return true
	}
}

// InRange returns a predicate keeping transactions dated within r.
// The zero range keeps everything.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.IsZero() || r.Contains(tx.Date) }
}
