package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	"github.com/JivitSolutions/JivIT-Solutions/internal/usecase"
)

// seedFile is the YAML layout accepted by "cmsctl seed".
type seedFile struct {
	Settings map[string]interface{} `yaml:"settings"`
	Services []seedService          `yaml:"services"`
	Jobs     []seedJob              `yaml:"jobs"`
	Programs []seedProgram          `yaml:"programs"`
}

type seedService struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Benefits    []string `yaml:"benefits"`
	Status      string   `yaml:"status"`
}

type seedJob struct {
	Title        string   `yaml:"title"`
	Department   string   `yaml:"department"`
	Location     string   `yaml:"location"`
	Type         string   `yaml:"type"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
	Status       string   `yaml:"status"`
}

type seedProgram struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Status      string `yaml:"status"`
}

type seedResult struct {
	kind    string
	created int
	skipped int
}

func seedCmd(withRuntime runWrapper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load settings and content from a YAML file",
		Long: `Writes the settings in the file and creates every service, job and
program whose slug is not taken yet. Running the same file twice creates
nothing the second time.`,
		Example: "  cmsctl seed --file configs/example/seed.yaml",
		Args:    cobra.NoArgs,
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			data, err := readSeed(file)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cmd.OutOrStdout(), rt, data)
		}),
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed file (YAML)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readSeed(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &data, nil
}

func runSeed(ctx context.Context, out io.Writer, rt *Runtime, data *seedFile) error {
	uc := rt.UseCases

	if len(data.Settings) > 0 {
		values := make(map[string]json.RawMessage, len(data.Settings))
		for key, value := range data.Settings {
			raw, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("setting %s: %w", key, err)
			}
			values[key] = raw
		}
		if err := uc.Settings.Import(ctx, values); err != nil {
			return fmt.Errorf("failed to import settings: %w", err)
		}
		fmt.Fprintf(out, "%s %d settings written\n", okMark, len(values))
	}

	services := make([]*model.Service, len(data.Services))
	for i, s := range data.Services {
		services[i] = &model.Service{
			ContentBase: model.ContentBase{Status: s.Status},
			Title:       s.Title,
			Subtitle:    s.Subtitle,
			Description: s.Description,
			Category:    s.Category,
			Benefits:    s.Benefits,
		}
	}
	jobs := make([]*model.JobOpening, len(data.Jobs))
	for i, j := range data.Jobs {
		jobs[i] = &model.JobOpening{
			ContentBase:  model.ContentBase{Status: j.Status},
			Title:        j.Title,
			Department:   j.Department,
			Location:     j.Location,
			Type:         j.Type,
			Description:  j.Description,
			Requirements: j.Requirements,
		}
	}
	programs := make([]*model.Program, len(data.Programs))
	for i, p := range data.Programs {
		programs[i] = &model.Program{
			ContentBase: model.ContentBase{Status: p.Status},
			Title:       p.Title,
			Subtitle:    p.Subtitle,
			Description: p.Description,
			Category:    p.Category,
		}
	}

	results := make([]seedResult, 0, 3)
	for _, step := range []func() (seedResult, error){
		func() (seedResult, error) { return seedAll(ctx, uc.Services, services) },
		func() (seedResult, error) { return seedAll(ctx, uc.Jobs, jobs) },
		func() (seedResult, error) { return seedAll(ctx, uc.Programs, programs) },
	} {
		result, err := step()
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	for _, r := range results {
		line := fmt.Sprintf("%s %s: %d created", okMark, r.kind, r.created)
		if r.skipped > 0 {
			line += warnText(fmt.Sprintf(", %d already present", r.skipped))
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func seedAll[T any, P model.ContentPtr[T]](ctx context.Context, svc *usecase.ContentService[T, P], items []*T) (seedResult, error) {
	result := seedResult{kind: svc.EntityType()}
	for _, item := range items {
		created, err := svc.Seed(ctx, item)
		if err != nil {
			return result, fmt.Errorf("failed to seed %s %q: %w", result.kind, P(item).GetTitle(), err)
		}
		if created {
			result.created++
		} else {
			result.skipped++
		}
	}
	return result, nil
}
