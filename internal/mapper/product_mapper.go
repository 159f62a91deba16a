package mapper

import (
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/model"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}
	items := make([]entity.ProductItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, *m.ItemToEntity(it))
	}
	return &entity.Product{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
		IsActive:     p.IsActive,
		Items:        items,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}
	items := make([]*model.ProductItem, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, m.ItemToModel(&p.Items[i]))
	}
	return &model.Product{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
		IsActive:     p.IsActive,
		Items:        items,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProductMapper) ItemToEntity(it *model.ProductItem) *entity.ProductItem {
	if it == nil {
		return nil
	}
	return &entity.ProductItem{
		Id:          it.Id,
		ProductId:   it.ProductId,
		ClassItemId: it.ClassItemId,
		QuotaType:   entity.QuotaType(it.QuotaType),
		QuotaPoolId: it.QuotaPoolId,
		QuotaLimit:  it.QuotaLimit,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (m *ProductMapper) ItemToModel(it *entity.ProductItem) *model.ProductItem {
	if it == nil {
		return nil
	}
	return &model.ProductItem{
		Id:          it.Id,
		ProductId:   it.ProductId,
		ClassItemId: it.ClassItemId,
		QuotaType:   string(it.QuotaType),
		QuotaPoolId: it.QuotaPoolId,
		QuotaLimit:  it.QuotaLimit,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func (m *ProductMapper) PoolToEntity(p *model.QuotaPool) *entity.QuotaPool {
	if p == nil {
		return nil
	}
	return &entity.QuotaPool{
		Id:        p.Id,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *ProductMapper) PoolToModel(p *entity.QuotaPool) *model.QuotaPool {
	if p == nil {
		return nil
	}
	return &model.QuotaPool{
		Id:        p.Id,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
