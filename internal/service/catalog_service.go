package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
)

type ICatalogService interface {
	GetProducts(ctx context.Context) ([]*dto.ProductResponse, error)
	GetProduct(ctx context.Context, productId uuid.UUID) (*dto.ProductResponse, error)
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)

	GetClassItems(ctx context.Context) ([]*dto.ClassItemResponse, error)
	CreateClassItem(ctx context.Context, req *dto.CreateClassItemRequest) (*dto.ClassItemResponse, error)
	GetSessions(ctx context.Context, from, to time.Time) ([]*dto.ClassSessionResponse, error)
	CreateSession(ctx context.Context, req *dto.CreateClassSessionRequest) (*dto.ClassSessionResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
	}
}

func (s *catalogService) GetProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	products, err := uow.ProductRepository().FindAll(ctx,
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "price", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		r := toProductResponse(p)
		res = append(res, &r)
	}
	return res, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productId uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: productId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NotFound("product")
	}

	items, err := uow.ProductRepository().FindItemsByProduct(ctx, product.Id)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		product.Items = append(product.Items, *item)
	}

	res := toProductResponse(product)
	return &res, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	product := &entity.Product{
		Id:           uuid.New(),
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     req.Currency,
		DurationDays: req.DurationDays,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	for _, reqItem := range req.Items {
		item := &entity.ProductItem{
			Id:          uuid.New(),
			ProductId:   product.Id,
			ClassItemId: reqItem.ClassItemId,
			QuotaType:   entity.QuotaType(reqItem.QuotaType),
			QuotaPoolId: reqItem.QuotaPoolId,
			QuotaLimit:  reqItem.QuotaLimit,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uow.ProductRepository().CreateItem(ctx, item); err != nil {
			return nil, err
		}
		product.Items = append(product.Items, *item)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toProductResponse(product)
	return &res, nil
}

func (s *catalogService) GetClassItems(ctx context.Context) ([]*dto.ClassItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.BookingRepository().FindAllClassItems(ctx,
		specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ClassItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, &dto.ClassItemResponse{
			Id:          item.Id,
			Name:        item.Name,
			Description: item.Description,
		})
	}
	return res, nil
}

func (s *catalogService) CreateClassItem(ctx context.Context, req *dto.CreateClassItemRequest) (*dto.ClassItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	item := &entity.ClassItem{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.BookingRepository().CreateClassItem(ctx, item); err != nil {
		return nil, err
	}

	return &dto.ClassItemResponse{
		Id:          item.Id,
		Name:        item.Name,
		Description: item.Description,
	}, nil
}

func (s *catalogService) GetSessions(ctx context.Context, from, to time.Time) ([]*dto.ClassSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.BookingRepository().FindAllSessions(ctx,
		specification.SessionsBetween{From: from, To: to},
		specification.OrderBy{Field: "starts_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ClassSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		booked, err := uow.BookingRepository().CountForSession(ctx, session.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, &dto.ClassSessionResponse{
			Id:          session.Id,
			ClassItemId: session.ClassItemId,
			StartsAt:    session.StartsAt,
			EndsAt:      session.EndsAt,
			Capacity:    session.Capacity,
			Booked:      int(booked),
		})
	}
	return res, nil
}

func (s *catalogService) CreateSession(ctx context.Context, req *dto.CreateClassSessionRequest) (*dto.ClassSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.BookingRepository().FindOneClassItem(ctx, specification.ByID{ID: req.ClassItemId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("class item")
	}

	now := time.Now()
	session := &entity.ClassSession{
		Id:          uuid.New(),
		ClassItemId: req.ClassItemId,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Capacity:    req.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.BookingRepository().CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &dto.ClassSessionResponse{
		Id:          session.Id,
		ClassItemId: session.ClassItemId,
		StartsAt:    session.StartsAt,
		EndsAt:      session.EndsAt,
		Capacity:    session.Capacity,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	res := dto.ProductResponse{
		Id:           p.Id,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
	}
	for _, item := range p.Items {
		res.Items = append(res.Items, dto.ProductItemResponse{
			Id:          item.Id,
			ClassItemId: item.ClassItemId,
			QuotaType:   string(item.QuotaType),
			QuotaPoolId: item.QuotaPoolId,
			QuotaLimit:  item.QuotaLimit,
		})
	}
	return res
}
