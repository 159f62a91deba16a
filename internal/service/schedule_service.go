package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/dto"
	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/pkg/apperror"
	"github.com/martinsuhendra/manta-sub002/internal/repository/memory"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
	"github.com/martinsuhendra/manta-sub002/internal/repository/unitofwork"
	"github.com/martinsuhendra/manta-sub002/pkg/store"
)

type IScheduleService interface {
	CreateTemplate(ctx context.Context, req *dto.SessionTemplateRequest) (*dto.SessionTemplateResponse, error)
	GetTemplates(ctx context.Context) ([]*dto.SessionTemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string) error
	GenerateSessions(ctx context.Context, req *dto.GenerateSessionsRequest) ([]*dto.ClassSessionResponse, error)
}

// scheduleService manages session templates. Templates are held in process
// memory and materialize into persistent class sessions on demand.
type scheduleService struct {
	uowFactory unitofwork.RepositoryFactory
	templates  *memory.TemplateRepository
}

func NewScheduleService(uowFactory unitofwork.RepositoryFactory, templates *memory.TemplateRepository) IScheduleService {
	return &scheduleService{
		uowFactory: uowFactory,
		templates:  templates,
	}
}

func (s *scheduleService) CreateTemplate(ctx context.Context, req *dto.SessionTemplateRequest) (*dto.SessionTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.BookingRepository().FindOneClassItem(ctx, specification.ByID{ID: req.ClassItemId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("class item")
	}

	template := &store.SessionTemplate{
		ID:          uuid.New().String(),
		Name:        req.Name,
		ClassItemId: req.ClassItemId,
		TeacherId:   req.TeacherId,
		Weekday:     req.Weekday,
		StartHour:   req.StartHour,
		StartMinute: req.StartMinute,
		DurationMin: req.DurationMin,
		Capacity:    req.Capacity,
	}
	s.templates.Save(template)

	res := toTemplateResponse(template)
	return &res, nil
}

func (s *scheduleService) GetTemplates(ctx context.Context) ([]*dto.SessionTemplateResponse, error) {
	templates := s.templates.List()

	res := make([]*dto.SessionTemplateResponse, 0, len(templates))
	for _, t := range templates {
		r := toTemplateResponse(t)
		res = append(res, &r)
	}
	return res, nil
}

func (s *scheduleService) DeleteTemplate(ctx context.Context, id string) error {
	if _, found := s.templates.Get(id); !found {
		return apperror.NotFound("session template")
	}
	s.templates.Delete(id)
	return nil
}

// GenerateSessions materializes one class session per matching weekday in
// [from, to] from the template.
func (s *scheduleService) GenerateSessions(ctx context.Context, req *dto.GenerateSessionsRequest) ([]*dto.ClassSessionResponse, error) {
	template, found := s.templates.Get(req.TemplateId)
	if !found {
		return nil, apperror.NotFound("session template")
	}

	from, err := time.Parse(time.DateOnly, req.FromDate)
	if err != nil {
		return nil, apperror.Validation("from_date must be YYYY-MM-DD")
	}
	to, err := time.Parse(time.DateOnly, req.ToDate)
	if err != nil {
		return nil, apperror.Validation("to_date must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, apperror.Validation("to_date must not be before from_date")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var res []*dto.ClassSessionResponse
	now := time.Now()
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if int(day.Weekday()) != template.Weekday {
			continue
		}

		startsAt := time.Date(day.Year(), day.Month(), day.Day(),
			template.StartHour, template.StartMinute, 0, 0, time.Local)
		session := &entity.ClassSession{
			Id:          uuid.New(),
			ClassItemId: template.ClassItemId,
			TeacherId:   template.TeacherId,
			StartsAt:    startsAt,
			EndsAt:      startsAt.Add(time.Duration(template.DurationMin) * time.Minute),
			Capacity:    template.Capacity,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uow.BookingRepository().CreateSession(ctx, session); err != nil {
			return nil, err
		}

		res = append(res, &dto.ClassSessionResponse{
			Id:          session.Id,
			ClassItemId: session.ClassItemId,
			StartsAt:    session.StartsAt,
			EndsAt:      session.EndsAt,
			Capacity:    session.Capacity,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func toTemplateResponse(t *store.SessionTemplate) dto.SessionTemplateResponse {
	return dto.SessionTemplateResponse{
		Id:          t.ID,
		Name:        t.Name,
		ClassItemId: t.ClassItemId,
		TeacherId:   t.TeacherId,
		Weekday:     t.Weekday,
		StartHour:   t.StartHour,
		StartMinute: t.StartMinute,
		DurationMin: t.DurationMin,
		Capacity:    t.Capacity,
	}
}
