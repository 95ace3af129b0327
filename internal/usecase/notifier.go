package usecase

import (
	"context"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// ApplicationNotifier tells the site owner about a new application.
type ApplicationNotifier interface {
	NotifyNewApplication(ctx context.Context, to string, application *model.Application) error
}

type noopNotifier struct{}

// NewNoopNotifier returns a notifier that sends nothing.
func NewNoopNotifier() ApplicationNotifier {
	return noopNotifier{}
}

func (noopNotifier) NotifyNewApplication(context.Context, string, *model.Application) error {
	return nil
}
