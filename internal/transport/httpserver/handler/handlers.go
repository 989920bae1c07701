package handler

import (
	analyticsdomain "finance-flow/internal/domain/analytics"
	expensesdomain "finance-flow/internal/domain/expenses"
	"finance-flow/pkg/logger"
)

type Handlers struct {
	Expenses  *expensesdomain.Service
	Analytics *analyticsdomain.Service
	log       logger.Logger
}

func New(expenses *expensesdomain.Service, analytics *analyticsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Expenses:  expenses,
		Analytics: analytics,
		log:       log,
	}
}
