package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/dto"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
	domainRepo "github.com/JivitSolutions/JivIT-Solutions/internal/domain/repository"
)

func statusCmd(withRuntime runWrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connections and summarise stored content",
		Args:  cobra.NoArgs,
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			return printStatus(cmd.Context(), cmd.OutOrStdout(), rt)
		}),
	}
}

func printStatus(ctx context.Context, out io.Writer, rt *Runtime) error {
	fmt.Fprintf(out, "%s %s (%s)\n\n", boldText(rt.Config.Service.Name), rt.Config.Service.Version, rt.Config.Service.Environment)

	if err := rt.Infra.Ping(ctx); err != nil {
		fmt.Fprintf(out, "%s database: %v\n", failMark, err)
		return fmt.Errorf("database unreachable: %w", err)
	}
	fmt.Fprintf(out, "%s database (%s)\n", okMark, rt.Config.Database.Driver)

	switch {
	case rt.Infra.Redis == nil:
		fmt.Fprintf(out, "  redis: %s\n", warnText("disabled, access cache is per process"))
	default:
		if err := rt.Infra.Redis.Ping(ctx).Err(); err != nil {
			fmt.Fprintf(out, "%s redis: %v\n", failMark, err)
		} else {
			fmt.Fprintf(out, "%s redis\n", okMark)
		}
	}
	fmt.Fprintln(out)

	repos := rt.Infra.Repos
	for _, count := range []func() (string, int, int, error){
		func() (string, int, int, error) { return countContent(ctx, model.EntityService, repos.Services) },
		func() (string, int, int, error) { return countContent(ctx, model.EntityJobOpening, repos.JobOpenings) },
		func() (string, int, int, error) { return countContent(ctx, model.EntityProgram, repos.Programs) },
	} {
		kind, total, published, err := count()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-12s %3d total, %3d published\n", kind, total, published)
	}

	applications, err := repos.Applications.List(ctx, dto.ApplicationFilter{})
	if err != nil {
		return err
	}
	fresh := 0
	for _, a := range applications {
		if a.Status == model.ApplicationStatusNew {
			fresh++
		}
	}
	fmt.Fprintf(out, "  %-12s %3d total, %3d new\n\n", model.EntityApplication, len(applications), fresh)

	site, err := rt.UseCases.Settings.Site(ctx)
	if err != nil {
		return err
	}
	if site.MaintenanceMode {
		fmt.Fprintf(out, "  maintenance: %s\n", warnText("on"))
	} else {
		fmt.Fprintln(out, "  maintenance: off")
	}
	fmt.Fprintf(out, "  applications: %s\n", onOff(site.EnableApplications))
	return nil
}

func countContent[T any, P model.ContentPtr[T]](ctx context.Context, kind string, repo domainRepo.ContentRepository[T]) (string, int, int, error) {
	items, err := repo.List(ctx, domainRepo.ContentFilter{})
	if err != nil {
		return kind, 0, 0, err
	}
	published := 0
	for _, item := range items {
		if P(item).GetStatus() == model.StatusPublished {
			published++
		}
	}
	return kind, len(items), published, nil
}

func onOff(v bool) string {
	if v {
		return "open"
	}
	return warnText("closed")
}
