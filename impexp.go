package finbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// csvHeader is the canonical column order for transaction CSV files.
var csvHeader = []string{
	"id", "date", "type", "amount", "currency",
	"description", "category", "account", "payment", "tags", "notes",
}

// ExportCSV writes the book's transactions accepted by the filters to w as
// CSV, one row per transaction in chronological order.
func ExportCSV(w io.Writer, book *Book, filters ...func(Transaction) bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}
	for _, tx := range book.Transactions(filters...) {
		row := []string{
			string(tx.ID),
			tx.Date.String(),
			string(tx.Type),
			tx.Amount.Decimal().String(),
			tx.Amount.Currency(),
			tx.Description,
			tx.Category,
			tx.Account,
			string(tx.Payment),
			strings.Join(tx.Tags, ";"),
			tx.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write transaction %s: %w", tx.ID.Short(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads transactions from a CSV stream and appends them to the
// book. The first row must be a header naming a subset of the canonical
// columns, in any order. Rows without an id get a fresh one; rows without a
// currency use the book's reporting currency. It returns the number of
// transactions imported.
func ImportCSV(r io.Reader, book *Book) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, missing cells read as empty

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("could not read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "type", "amount", "description"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("csv header is missing the %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	count := 0
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("csv row %d: %w", line, err)
		}

		date, err := ParseDate(field(row, "date"))
		if err != nil {
			return count, fmt.Errorf("csv row %d: %w", line, err)
		}
		typ, err := ParseTransactionType(field(row, "type"))
		if err != nil {
			return count, fmt.Errorf("csv row %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(field(row, "amount"))
		if err != nil {
			return count, fmt.Errorf("csv row %d: invalid amount: %w", line, err)
		}
		currency := field(row, "currency")
		if currency == "" {
			currency = book.Currency()
		}

		tx := Transaction{
			ID:          ID(field(row, "id")),
			Date:        date,
			Type:        typ,
			Amount:      M(amount, currency),
			Description: field(row, "description"),
			Category:    field(row, "category"),
			Account:     field(row, "account"),
		}
		if payment := field(row, "payment"); payment != "" {
			tx.Payment, err = ParsePaymentMethod(payment)
			if err != nil {
				return count, fmt.Errorf("csv row %d: %w", line, err)
			}
		}
		if tags := field(row, "tags"); tags != "" {
			tx.Tags = strings.Split(tags, ";")
		}
		tx.Notes = field(row, "notes")

		if _, err := book.AppendTransaction(tx); err != nil {
			return count, fmt.Errorf("csv row %d: %w", line, err)
		}
		count++
	}
	return count, nil
}
