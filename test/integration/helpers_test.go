package integration

import (
	"time"

	"github.com/martinsuhendra/manta-sub002/internal/repository/specification"

	"github.com/google/uuid"
)

func byID(id uuid.UUID) specification.Specification {
	return specification.ByID{ID: id}
}

func timeNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
