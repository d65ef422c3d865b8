package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

type RecordType string

const (
	RecordIncome  RecordType = "income"
	RecordExpense RecordType = "expense"
)

func (t RecordType) Valid() bool {
	return t == RecordIncome || t == RecordExpense
}

// IncomeRecord is one earning or spending entry. Date is an ISO-8601 string.
type IncomeRecord struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Source   string          `json:"source"`
	Amount   decimal.Decimal `json:"amount"`
	Type     RecordType      `json:"type"`
	Category string          `json:"category"`
}

func (r IncomeRecord) EntityID() string { return r.ID }

// IncomeSummary is derived from a record set on every request and never stored.
type IncomeSummary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// Summarize totals income and expense amounts; savings = income - expenses.
func Summarize(records []IncomeRecord) IncomeSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, r := range records {
		switch r.Type {
		case RecordIncome:
			income = income.Add(r.Amount)
		case RecordExpense:
			expenses = expenses.Add(r.Amount)
		}
	}
	return IncomeSummary{Income: income, Expenses: expenses, Savings: income.Sub(expenses)}
}

// SortByDateDesc orders records newest first. ISO-8601 dates compare
// lexically; equal dates keep their relative order.
func SortByDateDesc(records []IncomeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
