// Command migrate applies the SQL migrations under migrations/ with the Atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cmd := "apply"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	var cfg config.DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("Failed to read database settings", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cmd, *dir, *bin, cfg); err != nil {
		slog.Error("Migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd, dir, bin string, cfg config.DBConfig) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	url := cfg.BuildDSN()
	switch cmd {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
		if err != nil {
			return err
		}
		slog.Info("Migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return err
		}
		slog.Info("Migration status", "status", res.Status, "current", res.Current, "next", res.Next)
	default:
		return errs.Newf("unknown command %q, use apply or status", cmd)
	}
	return nil
}
