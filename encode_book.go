package finbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record discriminator values, the first field of every JSONL line.
const (
	recordBook        = "book" // optional header line carrying book-level settings
	recordTransaction = "transaction"
	recordBudget      = "budget"
	recordInvestment  = "investment"
)

// amountRec is a specialized struct to read an amount in two fields.
type amountRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRec) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeBook decodes records from a stream of JSONL data, one JSON object per
// line, and returns the populated Book.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordBook:
			var temp struct {
				Currency string `json:"currency"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			book.currency = temp.Currency

		case recordTransaction:
			var temp struct {
				amountRec
				ID          ID              `json:"id"`
				Date        Date            `json:"date"`
				Type        TransactionType `json:"type"`
				Description string          `json:"description"`
				Category    string          `json:"category"`
				Account     string          `json:"account"`
				Payment     PaymentMethod   `json:"payment"`
				Tags        []string        `json:"tags"`
				Notes       string          `json:"notes"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			book.transactions = append(book.transactions, Transaction{
				ID:          temp.ID,
				Date:        temp.Date,
				Type:        temp.Type,
				Amount:      temp.Money(),
				Description: temp.Description,
				Category:    temp.Category,
				Account:     temp.Account,
				Payment:     temp.Payment,
				Tags:        temp.Tags,
				Notes:       temp.Notes,
			})

		case recordBudget:
			var temp struct {
				ID          ID     `json:"id"`
				Name        string `json:"name"`
				Period      string `json:"period"`
				Year        int    `json:"year"`
				Month       int    `json:"month"`
				Description string `json:"description"`
				Categories  []struct {
					amountRec
					Category    string `json:"category"`
					Description string `json:"description"`
				} `json:"categories"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			period, err := ParseBudgetPeriod(temp.Period)
			if err != nil {
				return nil, fmt.Errorf("budget %q: %w", temp.ID.Short(), err)
			}
			budget := Budget{
				ID:          temp.ID,
				Name:        temp.Name,
				Period:      period,
				Year:        temp.Year,
				Month:       time.Month(temp.Month),
				Description: temp.Description,
			}
			for _, c := range temp.Categories {
				budget.Categories = append(budget.Categories, BudgetCategory{
					Category:    c.Category,
					Amount:      c.Money(),
					Description: c.Description,
				})
			}
			book.budgets = append(book.budgets, budget)

		case recordInvestment:
			var temp struct {
				ID               ID              `json:"id"`
				Name             string          `json:"name"`
				Type             InvestmentType  `json:"type"`
				InitialAmount    decimal.Decimal `json:"initialAmount"`
				InitialCurrency  string          `json:"initialCurrency"`
				Shares           Quantity        `json:"shares"`
				PurchaseAmount   decimal.Decimal `json:"purchaseAmount"`
				PurchaseCurrency string          `json:"purchaseCurrency"`
				PurchaseDate     Date            `json:"purchaseDate"`
				CurrentAmount    decimal.Decimal `json:"currentAmount"`
				CurrentCurrency  string          `json:"currentCurrency"`
				ValuedOn         Date            `json:"valuedOn"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			inv := Investment{
				ID:           temp.ID,
				Name:         temp.Name,
				Type:         temp.Type,
				Initial:      M(temp.InitialAmount, temp.InitialCurrency),
				Shares:       temp.Shares,
				PurchaseDate: temp.PurchaseDate,
				Current:      M(temp.CurrentAmount, temp.CurrentCurrency),
				ValuedOn:     temp.ValuedOn,
			}
			if !temp.PurchaseAmount.IsZero() {
				inv.PurchasePrice = M(temp.PurchaseAmount, temp.PurchaseCurrency)
			}
			book.investments = append(book.investments, inv)

		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	book.stableSort()
	book.sortBudgets()
	book.sortInvestments()
	return book, nil
}

// EncodeRecord marshals a single record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRecord(w io.Writer, record json.Marshaler) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := record.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeBook persists a book to an io.Writer in canonical JSONL form: the
// book header first (when a currency was declared), then transactions in
// chronological order, then budgets, then investments.
func EncodeBook(w io.Writer, book *Book) error {
	decimal.MarshalJSONWithoutQuotes = true

	book.stableSort()
	book.sortBudgets()
	book.sortInvestments()

	if book.currency != "" {
		var h jsonObjectWriter
		h.Append("record", recordBook)
		h.Append("currency", book.currency)
		if err := EncodeRecord(w, &h); err != nil {
			return err
		}
	}
	for _, tx := range book.transactions {
		if err := EncodeRecord(w, tx); err != nil {
			return err
		}
	}
	for _, budget := range book.budgets {
		if err := EncodeRecord(w, budget); err != nil {
			return err
		}
	}
	for _, inv := range book.investments {
		if err := EncodeRecord(w, inv); err != nil {
			return err
		}
	}
	return nil
}
