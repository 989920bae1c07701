package analytics

import "errors"

// ErrNilExpenses is returned when an aggregator is handed a nil record
// set. A failed fetch must stay distinguishable from "no expenses", so
// the aggregators never turn a missing list into empty totals.
var ErrNilExpenses = errors.New("expenses list is nil")
