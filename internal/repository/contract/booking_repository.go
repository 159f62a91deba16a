package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/martinsuhendra/manta-sub002/internal/entity"
	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Booking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Booking, error)
	CountForSession(ctx context.Context, sessionId uuid.UUID) (int64, error)

	// Class catalog
	CreateClassItem(ctx context.Context, item *entity.ClassItem) error
	FindOneClassItem(ctx context.Context, specs ...specification.Specification) (*entity.ClassItem, error)
	FindAllClassItems(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassItem, error)
	CreateSession(ctx context.Context, session *entity.ClassSession) error
	FindOneSession(ctx context.Context, specs ...specification.Specification) (*entity.ClassSession, error)
	FindAllSessions(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassSession, error)
}
