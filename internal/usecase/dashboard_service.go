package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

// Dashboard sources
const (
	SourceServices     = "services"
	SourceJobs         = "jobs"
	SourceApplications = "applications"
	SourceActivity     = "activity"
)

// DashboardService computes admin dashboard statistics.
type DashboardService struct {
	services      repository.ContentRepository[model.Service]
	jobs          repository.ContentRepository[model.JobOpening]
	applications  repository.ApplicationRepository
	activity      repository.ActivityLogRepository
	gate          AccessChecker
	defaultRecent int
	logger        *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	services repository.ContentRepository[model.Service],
	jobs repository.ContentRepository[model.JobOpening],
	applications repository.ApplicationRepository,
	activity repository.ActivityLogRepository,
	gate AccessChecker,
	defaultRecent int,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		services:      services,
		jobs:          jobs,
		applications:  applications,
		activity:      activity,
		gate:          gate,
		defaultRecent: defaultRecent,
		logger:        logger,
	}
}

type dashboardSnapshot struct {
	mu           sync.Mutex
	services     []*model.Service
	jobs         []*model.JobOpening
	applications []*model.Application
	activity     []*model.ActivityLog
	failed       []string
}

func (s *dashboardSnapshot) fail(source string) {
	s.mu.Lock()
	s.failed = append(s.failed, source)
	s.mu.Unlock()
}

// ComputeStats fetches every source concurrently. A failing source counts
// as empty and is listed in DegradedSources; the call itself only fails the
// admin check.
func (s *DashboardService) ComputeStats(ctx context.Context, recent int) (*entity.DashboardStats, error) {
	if _, err := s.gate.RequireAdmin(ctx, "dashboard.stats"); err != nil {
		return nil, err
	}
	recent = clampLimit(recent, s.defaultRecent)

	snap := &dashboardSnapshot{}
	var g errgroup.Group

	g.Go(func() error {
		items, err := s.services.List(ctx, repository.ContentFilter{})
		if err != nil {
			s.sourceFailed(snap, SourceServices, err)
			return nil
		}
		snap.services = items
		return nil
	})
	g.Go(func() error {
		items, err := s.jobs.List(ctx, repository.ContentFilter{})
		if err != nil {
			s.sourceFailed(snap, SourceJobs, err)
			return nil
		}
		snap.jobs = items
		return nil
	})
	g.Go(func() error {
		items, err := s.applications.List(ctx, dto.ApplicationFilter{})
		if err != nil {
			s.sourceFailed(snap, SourceApplications, err)
			return nil
		}
		snap.applications = items
		return nil
	})
	g.Go(func() error {
		items, err := s.activity.Recent(ctx, recent)
		if err != nil {
			s.sourceFailed(snap, SourceActivity, err)
			return nil
		}
		snap.activity = items
		return nil
	})
	_ = g.Wait()

	stats, err := aggregate(snap, recent)
	if err != nil {
		s.logger.Error("Dashboard aggregation failed", zap.Error(err))
		return &entity.DashboardStats{
			RecentActivity:  []*model.ActivityLog{},
			SystemStatus:    entity.SystemDegraded,
			DegradedSources: snap.failed,
		}, nil
	}
	return stats, nil
}

func (s *DashboardService) sourceFailed(snap *dashboardSnapshot, source string, err error) {
	s.logger.Warn("Dashboard source unavailable",
		zap.String("source", source),
		zap.Error(err))
	snap.fail(source)
}

// aggregate turns a panic while counting into a degraded result.
func aggregate(snap *dashboardSnapshot, recent int) (stats *entity.DashboardStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			stats = nil
			err = fmt.Errorf("aggregation panicked: %v", r)
		}
	}()

	stats = &entity.DashboardStats{
		ServiceCount:     len(snap.services),
		JobCount:         len(snap.jobs),
		ApplicationCount: len(snap.applications),
		SystemStatus:     entity.SystemOperational,
	}
	for _, svc := range snap.services {
		if svc.Status == model.StatusPublished {
			stats.PublishedServiceCount++
		}
	}
	for _, job := range snap.jobs {
		if job.Status == model.StatusPublished {
			stats.PublishedJobCount++
		}
	}
	for _, app := range snap.applications {
		if app.Status == model.ApplicationStatusNew {
			stats.NewApplicationCount++
		}
	}

	activity := snap.activity
	if len(activity) > recent {
		activity = activity[:recent]
	}
	stats.RecentActivity = append([]*model.ActivityLog{}, activity...)

	if len(snap.failed) > 0 {
		failed := append([]string{}, snap.failed...)
		sort.Strings(failed)
		stats.DegradedSources = failed
	}
	return stats, nil
}
