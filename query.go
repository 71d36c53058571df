package finbook

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Document renders the whole book as a generic JSON document, suitable for
// path queries: top-level "name" and "currency", plus "transactions",
// "budgets" and "investments" arrays in their canonical field order.
func Document(book *Book) (any, error) {
	doc := map[string]any{
		"name":     book.Name(),
		"currency": book.Currency(),
	}

	transactions := make([]any, 0, len(book.transactions))
	for _, tx := range book.transactions {
		obj, err := toObject(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID.Short(), err)
		}
		transactions = append(transactions, obj)
	}
	doc["transactions"] = transactions

	budgets := make([]any, 0, len(book.budgets))
	for _, budget := range book.budgets {
		obj, err := toObject(budget)
		if err != nil {
			return nil, fmt.Errorf("budget %s: %w", budget.ID.Short(), err)
		}
		budgets = append(budgets, obj)
	}
	doc["budgets"] = budgets

	investments := make([]any, 0, len(book.investments))
	for _, inv := range book.investments {
		obj, err := toObject(inv)
		if err != nil {
			return nil, fmt.Errorf("investment %s: %w", inv.ID.Short(), err)
		}
		investments = append(investments, obj)
	}
	doc["investments"] = investments

	return doc, nil
}

// toObject round-trips a record through its canonical JSON form into a
// generic value.
func toObject(record json.Marshaler) (any, error) {
	data, err := record.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Query evaluates a JSONPath expression against the book's document, e.g.
// $.transactions[?(@.category=="groceries")].amount
func Query(book *Book, path string) (any, error) {
	doc, err := Document(book)
	if err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate query %q: %w", path, err)
	}
	return result, nil
}
