package contract

import (
	"context"

	"echoparse-be/internal/entity"
)

type QueryLogRepository interface {
	Create(ctx context.Context, log *entity.QueryLog) error
}
