package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JivitSolutions/JivIT-Solutions/internal/app"
	"github.com/JivitSolutions/JivIT-Solutions/internal/config"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

// newTestRuntime opens an in-memory store shared by every command run in a test.
func newTestRuntime(t *testing.T) (*Runtime, Loader) {
	t.Helper()
	logger := zap.NewNop()

	cfg := &config.Config{
		Service:  config.ServiceConfig{Name: "jivit-cms", Version: "test", Environment: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
	}
	infra, err := app.NewInfrastructure(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(infra.Close)

	rt := &Runtime{
		Config:   cfg,
		Logger:   logger,
		Infra:    infra,
		UseCases: app.NewUseCases(infra.Dependencies(cfg, nil), logger),
	}
	loader := func(context.Context, string) (*Runtime, func(), error) {
		return rt, func() {}, nil
	}
	return rt, loader
}

func run(t *testing.T, load Loader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(load)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const seedYAML = `
settings:
  site_name: JivIT Test
  enable_applications: false
  service_categories:
    - id: cloud
      label: Cloud
      tag: Infra
      description: Cloud work
services:
  - title: Cloud Migration
    category: cloud
    status: published
    benefits: [Lower cost]
  - title: Security Audit
jobs:
  - title: Go Engineer
    type: contract
programs:
  - title: Summer Internship
    status: published
`

func TestSeed(t *testing.T) {
	rt, load := newTestRuntime(t)
	ctx := context.Background()

	_, err := run(t, load, "migrate")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	out, err := run(t, load, "seed", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 settings written")
	assert.Contains(t, out, "service: 2 created")

	out, err = run(t, load, "seed", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "service: 0 created")
	assert.Contains(t, out, "2 already present")

	svc, err := rt.Infra.Repos.Services.GetBySlug(ctx, "cloud-migration")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, svc.Status)
	assert.Equal(t, []string{"Lower cost"}, []string(svc.Benefits))

	job, err := rt.Infra.Repos.JobOpenings.GetBySlug(ctx, "go-engineer")
	require.NoError(t, err)
	assert.Equal(t, model.JobTypeContract, job.Type)
	assert.Equal(t, model.StatusDraft, job.Status)

	site, err := rt.UseCases.Settings.Site(ctx)
	require.NoError(t, err)
	assert.Equal(t, "JivIT Test", site.SiteName)
	assert.False(t, site.EnableApplications)
	require.Len(t, site.ServiceCategories, 1)
	assert.Equal(t, "Infra", site.ServiceCategories[0].Tag)
}

func TestSeed_Errors(t *testing.T) {
	_, load := newTestRuntime(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "not yaml", content: "services: [", want: "failed to parse seed file"},
		{name: "unknown setting", content: "settings:\n  colour: teal\n", want: "failed to import settings"},
		{name: "invalid job", content: "jobs:\n  - title: Go Engineer\n    type: gig\n", want: `failed to seed job_opening "Go Engineer"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := run(t, load, "seed", "--file", path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := run(t, load, "seed")
	assert.Error(t, err)
}

func TestPromote(t *testing.T) {
	rt, load := newTestRuntime(t)
	ctx := context.Background()
	require.NoError(t, rt.Infra.Repos.Profiles.Create(ctx, &entity.Profile{ID: "user-1", Email: "ops@example.com", Role: entity.RoleViewer}))

	subCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	events, err := rt.Infra.Events.Subscribe(subCtx)
	require.NoError(t, err)

	out, err := run(t, load, "promote", "--user", "user-1")
	require.NoError(t, err)
	assert.Contains(t, out, "user-1 is now")

	profile, err := rt.Infra.Repos.Profiles.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)

	event := <-events
	assert.Equal(t, entity.AuthEventRoleChanged, event.Type)
	assert.Equal(t, "user-1", event.UserID)

	_, err = run(t, load, "promote", "--user", "user-1", "--demote")
	require.NoError(t, err)
	profile, err = rt.Infra.Repos.Profiles.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, profile.Role)

	_, err = run(t, load, "promote", "--user", "nobody")
	assert.Error(t, err)
}

func TestSettingsCommands(t *testing.T) {
	_, load := newTestRuntime(t)

	out, err := run(t, load, "settings", "set", "maintenance_mode", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "maintenance_mode = true")

	_, err = run(t, load, "settings", "set", "site_name", "JivIT Labs")
	require.NoError(t, err)

	out, err = run(t, load, "settings", "get", "site_name")
	require.NoError(t, err)
	assert.Equal(t, "\"JivIT Labs\"\n", out)

	out, err = run(t, load, "settings", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "maintenance_mode")
	assert.Contains(t, out, "contact_email")

	_, err = run(t, load, "settings", "get", "colour")
	assert.Error(t, err)

	_, err = run(t, load, "settings", "set", "maintenance_mode", "sometimes")
	assert.Error(t, err)
}

func TestSettingValue(t *testing.T) {
	tests := map[string]string{
		"true":     "true",
		"42":       "42",
		`["a"]`:    `["a"]`,
		"JivIT":    `"JivIT"`,
		`say "hi"`: `"say \"hi\""`,
	}
	for in, want := range tests {
		assert.JSONEq(t, want, string(settingValue(in)), in)
	}
}

func TestStatus(t *testing.T) {
	rt, load := newTestRuntime(t)
	ctx := context.Background()

	_, err := rt.UseCases.Services.Seed(ctx, &model.Service{ContentBase: model.ContentBase{Status: model.StatusPublished}, Title: "Cloud"})
	require.NoError(t, err)
	_, err = rt.UseCases.Jobs.Seed(ctx, &model.JobOpening{Title: "Go Engineer"})
	require.NoError(t, err)

	out, err := run(t, load, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "database (sqlite)")
	assert.Contains(t, out, "redis")
	assert.Regexp(t, `service\s+1 total,\s+1 published`, out)
	assert.Regexp(t, `job_opening\s+1 total,\s+0 published`, out)
	assert.Contains(t, out, "maintenance: off")
}
