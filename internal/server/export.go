package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tinrooster/cabledb/internal/config"
	"github.com/tinrooster/cabledb/internal/matrix"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// nextCronDuration parses a 5-field cron expression and returns the
// duration until the next fire time. Returns 0 on parse error.
func nextCronDuration(expr string) time.Duration {
	sched, err := cronParser.Parse(expr)
	if err != nil {
		return 0
	}
	next := sched.Next(time.Now())
	d := time.Until(next)
	if d < 0 {
		return 0
	}
	return d
}

// runExportLoop writes the editable matrix to the configured CSV path on
// the configured schedule until ctx is cancelled.
func runExportLoop(ctx context.Context, cfg config.ExportConfig, session *matrix.Session, out io.Writer) {
	d := nextCronDuration(cfg.Schedule)
	if d == 0 {
		fmt.Fprintf(out, "export: invalid schedule %q; scheduled export disabled\n", cfg.Schedule)
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(d):
		}
		if err := exportMatrix(session, cfg.Path); err != nil {
			fmt.Fprintf(out, "export: %v\n", err)
		} else {
			fmt.Fprintf(out, "export: wrote %s\n", cfg.Path)
		}
		d = nextCronDuration(cfg.Schedule)
		if d == 0 {
			d = time.Minute
		}
	}
}

// exportMatrix writes the current editable matrix to path.
func exportMatrix(session *matrix.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := session.Editable().WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}
