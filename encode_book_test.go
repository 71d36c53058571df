package finbook

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleBook = `{"record":"book","currency":"EUR"}
{"record":"transaction","id":"aaaaaaaa-0000-0000-0000-000000000001","date":"2025-01-05","type":"income","currency":"EUR","amount":2500,"description":"salary","category":"salary","account":"default","payment":"bank_transfer"}
{"record":"transaction","id":"aaaaaaaa-0000-0000-0000-000000000002","date":"2025-01-10","type":"expense","currency":"EUR","amount":120.5,"description":"groceries","category":"food","account":"default","payment":"cash","tags":["weekly"]}
{"record":"budget","id":"bbbbbbbb-0000-0000-0000-000000000001","name":"january","period":"monthly","year":2025,"month":1,"categories":[{"category":"food","currency":"EUR","amount":400}]}
{"record":"investment","id":"cccccccc-0000-0000-0000-000000000001","name":"World ETF","type":"fund","initialCurrency":"EUR","initialAmount":5000,"shares":42,"purchaseDate":"2024-06-01","currentCurrency":"EUR","currentAmount":5400,"valuedOn":"2025-01-01"}
`

func TestDecodeBook(t *testing.T) {
	book, err := DecodeBook(strings.NewReader(sampleBook))
	if err != nil {
		t.Fatal(err)
	}

	if book.Currency() != "EUR" {
		t.Errorf("Currency = %q, want EUR", book.Currency())
	}

	var transactions []Transaction
	for _, tx := range book.Transactions() {
		transactions = append(transactions, tx)
	}
	if len(transactions) != 2 {
		t.Fatalf("decoded %d transactions, want 2", len(transactions))
	}
	tx := transactions[1]
	if !tx.Amount.Equal(M(120.5, "EUR")) || tx.Category != "food" || !tx.HasTag("weekly") {
		t.Errorf("decoded transaction = %+v", tx)
	}

	budget, err := book.FindBudget("bbbbbbbb")
	if err != nil {
		t.Fatal(err)
	}
	if budget.Period != Monthly || budget.Year != 2025 || budget.Month != time.January {
		t.Errorf("decoded budget scope = %s", budget.ScopeString())
	}
	alloc, ok := budget.Allocation("food")
	if !ok || !alloc.Amount.Equal(M(400, "EUR")) {
		t.Errorf("decoded allocation = %+v", alloc)
	}

	inv, err := book.FindInvestment("cccccccc")
	if err != nil {
		t.Fatal(err)
	}
	if inv.Type != Fund || !inv.Initial.Equal(M(5000, "EUR")) || !inv.Current.Equal(M(5400, "EUR")) {
		t.Errorf("decoded investment = %+v", inv)
	}
	if !inv.Shares.Equal(Q(42)) {
		t.Errorf("decoded shares = %s, want 42", inv.Shares)
	}
	if inv.ValuedOn != NewDate(2025, time.January, 1) {
		t.Errorf("decoded valuedOn = %s", inv.ValuedOn)
	}
}

func TestDecodeBookRejectsUnknownRecord(t *testing.T) {
	if _, err := DecodeBook(strings.NewReader(`{"record":"mystery"}` + "\n")); err == nil {
		t.Error("an unknown record kind must be rejected")
	}
}

// TestEncodeDecodeRoundTrip checks that a book survives its canonical form.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	original, err := DecodeBook(strings.NewReader(sampleBook))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeBook(&buf, original); err != nil {
		t.Fatal(err)
	}

	// The canonical form is stable: encoding the decoded output yields the
	// same bytes again.
	decoded, err := DecodeBook(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var buf2 bytes.Buffer
	if err := EncodeBook(&buf2, decoded); err != nil {
		t.Fatal(err)
	}
	if buf.String() != buf2.String() {
		t.Errorf("canonical form is not stable:\nfirst:\n%s\nsecond:\n%s", buf.String(), buf2.String())
	}

	// The header line comes first, then transactions in chronological order.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("encoded %d lines, want 5", len(lines))
	}
	if !strings.Contains(lines[0], `"record":"book"`) {
		t.Errorf("first line must be the book header, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"date":"2025-01-05"`) {
		t.Errorf("second line must be the earliest transaction, got %s", lines[1])
	}
}

func TestEncodeTransactionFieldOrder(t *testing.T) {
	tx := Transaction{
		ID:          "aaaaaaaa-0000-0000-0000-000000000001",
		Date:        NewDate(2025, time.January, 5),
		Type:        Expense,
		Amount:      M(12.5, "EUR"),
		Description: "lunch",
		Category:    "food",
		Account:     "default",
		Payment:     Cash,
	}
	data, err := tx.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"record":"transaction","id":"aaaaaaaa-0000-0000-0000-000000000001","date":"2025-01-05","type":"expense","currency":"EUR","amount":12.5,"description":"lunch","category":"food","account":"default","payment":"cash"}`
	if string(data) != want {
		t.Errorf("MarshalJSON:\n got %s\nwant %s", data, want)
	}
}

func TestEncodeInvestmentPrefixedFields(t *testing.T) {
	inv := Investment{
		ID:           "cccccccc-0000-0000-0000-000000000001",
		Name:         "World ETF",
		Type:         Fund,
		Initial:      M(5000, "EUR"),
		PurchaseDate: NewDate(2024, time.June, 1),
		Current:      M(5400, "EUR"),
		ValuedOn:     NewDate(2025, time.January, 1),
	}
	data, err := inv.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"initialCurrency":"EUR"`, `"initialAmount":5000`, `"currentAmount":5400`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("MarshalJSON misses %s in %s", field, data)
		}
	}
}
