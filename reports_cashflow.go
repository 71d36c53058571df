package finbook

// CashFlowBucket is the activity of a single period bucket plus the running
// balance after that bucket.
type CashFlowBucket struct {
	Range   Range
	Income  Money
	Expense Money
	Net     Money
	Balance Money // running balance after this bucket
	Count   int
}

// CashFlow tracks income and expenses over sequential period buckets with a
// running balance.
type CashFlow struct {
	Range        Range
	Granularity  Period
	Buckets      []CashFlowBucket
	TotalIncome  Money
	TotalExpense Money
	FinalBalance Money
}

// NewCashFlow buckets the book's transactions over the range at the given
// granularity. Boundary buckets are clipped to the range, and empty buckets
// are kept so the timeline stays continuous.
func NewCashFlow(book *Book, r Range, granularity Period) *CashFlow {
	cur := book.Currency()
	flow := &CashFlow{
		Range:        r,
		Granularity:  granularity,
		TotalIncome:  M(0, cur),
		TotalExpense: M(0, cur),
	}

	balance := M(0, cur)
	for bucketRange := range r.Periods(granularity) {
		bucket := CashFlowBucket{
			Range:   bucketRange,
			Income:  M(0, cur),
			Expense: M(0, cur),
		}
		for _, tx := range book.Transactions(InRange(bucketRange)) {
			bucket.Count++
			switch tx.Type {
			case Income:
				bucket.Income = bucket.Income.Add(tx.Amount)
			case Expense:
				bucket.Expense = bucket.Expense.Add(tx.Amount)
			}
		}
		bucket.Net = bucket.Income.Sub(bucket.Expense)
		balance = balance.Add(bucket.Net)
		bucket.Balance = balance

		flow.Buckets = append(flow.Buckets, bucket)
		flow.TotalIncome = flow.TotalIncome.Add(bucket.Income)
		flow.TotalExpense = flow.TotalExpense.Add(bucket.Expense)
	}
	flow.FinalBalance = balance
	return flow
}

// BookRange returns the range covered by the book's transactions, used when
// the caller asked for a cash flow without explicit dates. An empty book
// yields the current month.
func BookRange(book *Book) Range {
	from, to := book.OldestTransactionDate(), book.NewestTransactionDate()
	if from.IsZero() {
		today := Today()
		return MonthRange(today.Year(), today.Month())
	}
	return NewRange(from, to)
}
