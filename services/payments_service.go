package services

import (
	"context"

	"wayforpay/entity"
	"wayforpay/params"
)

type Payments interface {
	PurchaseForm(ctx context.Context, fields []params.Field) (string, error)
	PurchaseURL(ctx context.Context, fields []params.Field) (string, error)
	Query(ctx context.Context, t entity.TransactionType, fields []params.Field) (map[string]interface{}, error)
	Journal(ctx context.Context, orderReference string) ([]*entity.JournalRecord, error)
}
