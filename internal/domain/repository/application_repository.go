package repository

import (
	"context"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// ApplicationRepository persists inbound applications.
type ApplicationRepository interface {
	List(ctx context.Context, filter dto.ApplicationFilter) ([]*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	Create(ctx context.Context, application *model.Application) error
	UpdateStatus(ctx context.Context, id, status string) (*model.Application, error)
}
