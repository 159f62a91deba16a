package mapper

import (
	"gorm.io/datatypes"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:              t.Id,
		UserId:          t.UserId,
		ProductId:       t.ProductId,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          entity.TransactionStatus(t.Status),
		PaidAt:          t.PaidAt,
		PaymentMethod:   t.PaymentMethod,
		PaymentProvider: t.PaymentProvider,
		Metadata:        map[string]interface{}(t.Metadata),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:              t.Id,
		UserId:          t.UserId,
		ProductId:       t.ProductId,
		Amount:          t.Amount,
		Currency:        t.Currency,
		Status:          string(t.Status),
		PaidAt:          t.PaidAt,
		PaymentMethod:   t.PaymentMethod,
		PaymentProvider: t.PaymentProvider,
		Metadata:        datatypes.JSONMap(t.Metadata),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
