// Package finbook implements a personal-finance record book.
//
// A Book stores three kinds of records: dated, categorized transactions
// (income and expenses), period-scoped budgets with per-category
// allocations, and manually valued investment positions. On top of the
// book, the reports_* files compute period rollups, budget-vs-actual
// analysis, cash-flow views and portfolio valuation.
//
// The book is persisted as a JSONL file, one record per line, in a
// canonical field order so that files diff and merge cleanly.
package finbook
