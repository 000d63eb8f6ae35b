package domain

import (
	"github.com/shopspring/decimal"
)

// RevenueSummary splits money coming in by source. Income stays independent
// of sales revenue; Total adds all three.
type RevenueSummary struct {
	Orders decimal.Decimal `json:"orders"`
	Sales  decimal.Decimal `json:"sales"`
	Income decimal.Decimal `json:"income"`
	Total  decimal.Decimal `json:"total"`
}

// ExpenseSummary splits money going out. Wages is gross labor cost
// (totalWage, not pending), Salary is the monthly employee salary bill.
type ExpenseSummary struct {
	Wages  decimal.Decimal `json:"wages"`
	Salary decimal.Decimal `json:"salary"`
	Other  decimal.Decimal `json:"other"`
	Total  decimal.Decimal `json:"total"`
}

// AmountQuantity pairs a summed quantity with its summed amount.
type AmountQuantity struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// SalesBreakdown groups recomputed sale line items by item type.
type SalesBreakdown struct {
	ByItemType map[SaleItemType]AmountQuantity `json:"byItemType"`
}

// MonthSummary is one calendar month of aggregated activity. A month with no
// activity is a valid all-zero summary, not an omitted entry.
type MonthSummary struct {
	Month   int             `json:"month"`
	Revenue RevenueSummary  `json:"revenue"`
	Expense ExpenseSummary  `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
	Sales   SalesBreakdown  `json:"sales"`
}

// YearSummary is the ordered twelve months of a year plus the same aggregate
// fields computed over the full year.
type YearSummary struct {
	Year   int            `json:"year"`
	Months []MonthSummary `json:"months"`
}

// TodaySummary covers the single day the dashboard was asked for.
type TodaySummary struct {
	TotalOrder int `json:"totalOrder"` // orders opened before today and not yet closed
	PaddyTaken int `json:"paddyTaken"` // bags received today
	NewOrder   int `json:"newOrder"`   // orders created today
	Output     int `json:"output"`     // open orders including today's
}

// PaddyProcessed counts bags across the order book.
type PaddyProcessed struct {
	TotalBags int `json:"totalBags"`
	PaidBags  int `json:"paidBags"`
}

// OrderStatusCount tallies orders sitting in one pipeline stage.
type OrderStatusCount struct {
	TotalBags int `json:"totalBags"`
	Count     int `json:"count"`
}

// OrderStatusSummary reports the four in-flight pipeline stages.
type OrderStatusSummary struct {
	InitialStocking    OrderStatusCount `json:"initialStocking"`
	BoilingCompleted   OrderStatusCount `json:"boilingCompleted"`
	SplittingCompleted OrderStatusCount `json:"splittingCompleted"`
	PackedReady        OrderStatusCount `json:"packedReady"`
}

// StockSnapshot is the current availability per item type, passed through
// untouched by aggregation.
type StockSnapshot struct {
	Available map[string]decimal.Decimal `json:"available"`
}

// DashboardSummary is the full dashboard payload for one client as of a date.
// Top-level revenue/expense/profit cover the calendar year of the requested
// date.
type DashboardSummary struct {
	Revenue        RevenueSummary     `json:"revenue"`
	Expense        ExpenseSummary     `json:"expense"`
	Profit         decimal.Decimal    `json:"profit"`
	Today          TodaySummary       `json:"todaySummary"`
	PaddyProcessed PaddyProcessed     `json:"paddyProcessed"`
	Sales          SalesBreakdown     `json:"sales"`
	Stock          StockSnapshot      `json:"stock"`
	OrderStatuses  OrderStatusSummary `json:"orderStatuses"`
	Yearly         YearSummary        `json:"yearly"`
}
