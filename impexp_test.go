package finbook

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestImportCSV(t *testing.T) {
	book := NewBook()
	book.SetCurrency("EUR")

	// Columns in arbitrary order, id and currency omitted.
	csv := `date,description,amount,type,category,tags
2025-01-05,salary,2500,income,salary,
2025-01-10,groceries,120.50,expense,food,weekly;bio
`
	count, err := ImportCSV(strings.NewReader(csv), book)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("imported %d transactions, want 2", count)
	}

	var transactions []Transaction
	for _, tx := range book.Transactions() {
		transactions = append(transactions, tx)
	}
	tx := transactions[1]
	if tx.ID == "" {
		t.Error("imported rows must get a fresh id")
	}
	if !tx.Amount.Equal(M(120.50, "EUR")) {
		t.Errorf("amount = %s, want 120.50 in the book currency", tx.Amount)
	}
	if !tx.HasTag("weekly") || !tx.HasTag("bio") {
		t.Errorf("tags = %v", tx.Tags)
	}
}

func TestImportCSVRejects(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"missing column", "date,type,amount\n"},
		{"bad date", "date,type,amount,description\nnot-a-date,expense,10,x\n"},
		{"bad type", "date,type,amount,description\n2025-01-05,transfer,10,x\n"},
		{"bad amount", "date,type,amount,description\n2025-01-05,expense,ten,x\n"},
		{"bad payment", "date,type,amount,description,payment\n2025-01-05,expense,10,x,gold\n"},
		{"foreign currency", "date,type,amount,currency,description\n2025-01-05,expense,10,USD,x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportCSV(strings.NewReader(tt.csv), NewBook()); err == nil {
				t.Errorf("ImportCSV accepted %q", tt.csv)
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	book := newTestBook(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, book, InRange(MonthRange(2025, time.January))); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 { // header + 3 january transactions
		t.Fatalf("exported %d lines, want 4:\n%s", len(lines), buf.String())
	}
	if lines[0] != strings.Join(csvHeader, ",") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2025-01-05") || !strings.Contains(lines[1], "salary") {
		t.Errorf("first row = %q", lines[1])
	}
}

// TestExportImportRoundTrip re-imports an export into a fresh book.
func TestExportImportRoundTrip(t *testing.T) {
	book := newTestBook(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, book); err != nil {
		t.Fatal(err)
	}

	fresh := NewBook()
	fresh.SetCurrency("EUR")
	count, err := ImportCSV(&buf, fresh)
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Fatalf("re-imported %d transactions, want 4", count)
	}

	// Ids survive the round trip, so prefix lookups still work.
	tx, err := fresh.FindTransaction("bbbbbbbb")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Description != "fuel" || !tx.Amount.Equal(M(60, "EUR")) {
		t.Errorf("round-tripped transaction = %+v", tx)
	}
}
