package entity

import "github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"

// SystemStatus of the dashboard aggregation.
type SystemStatus string

const (
	SystemOperational SystemStatus = "operational"
	SystemDegraded    SystemStatus = "degraded"
)

// DashboardStats summarises content for the admin dashboard.
type DashboardStats struct {
	ServiceCount          int                  `json:"service_count"`
	PublishedServiceCount int                  `json:"published_service_count"`
	JobCount              int                  `json:"job_count"`
	PublishedJobCount     int                  `json:"published_job_count"`
	ApplicationCount      int                  `json:"application_count"`
	NewApplicationCount   int                  `json:"new_application_count"`
	RecentActivity        []*model.ActivityLog `json:"recent_activity"`
	SystemStatus          SystemStatus         `json:"system_status"`
	// DegradedSources names the sources that failed and were counted as empty.
	DegradedSources []string `json:"degraded_sources,omitempty"`
}
