package finbook

import (
	"testing"
)

func TestQuery(t *testing.T) {
	book := newTestBook(t)

	// All categories of the food transactions.
	result, err := Query(book, `$.transactions[?(@.category=="food")].amount`)
	if err != nil {
		t.Fatal(err)
	}
	amounts, ok := result.([]interface{})
	if !ok {
		t.Fatalf("result is a %T, want a slice", result)
	}
	if len(amounts) != 2 {
		t.Errorf("matched %d amounts, want 2", len(amounts))
	}

	// Top-level fields are reachable too.
	result, err = Query(book, `$.currency`)
	if err != nil {
		t.Fatal(err)
	}
	if result != "EUR" {
		t.Errorf("currency = %v, want EUR", result)
	}
}

func TestQueryRejectsBadPath(t *testing.T) {
	if _, err := Query(newTestBook(t), `$[`); err == nil {
		t.Error("an invalid JSONPath expression must be rejected")
	}
}

func TestDocumentShape(t *testing.T) {
	doc, err := Document(newTestBook(t))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("document is a %T, want a map", doc)
	}
	for _, key := range []string{"name", "currency", "transactions", "budgets", "investments"} {
		if _, ok := m[key]; !ok {
			t.Errorf("document misses the %q key", key)
		}
	}
	if transactions := m["transactions"].([]any); len(transactions) != 4 {
		t.Errorf("document carries %d transactions, want 4", len(transactions))
	}
}
