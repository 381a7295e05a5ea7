package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullYAML = `
database:
  driver: mysql
  host: 10.0.0.5
  port: 3307
  name: cabledb_prod
  user: cable

server:
  port: 9090

export:
  schedule: "0 6 * * *"
  path: /srv/exports/matrix.csv

notify:
  slack:
    bot_token: xoxb-test
    channel_id: C012345
`

const minimalYAML = `
database:
  driver: sqlite
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Driver != "mysql" {
		t.Errorf("Database.Driver = %q, want mysql", cfg.Database.Driver)
	}
	if cfg.Database.Host != "10.0.0.5" {
		t.Errorf("Database.Host = %q, want 10.0.0.5", cfg.Database.Host)
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("Database.Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Database.Name != "cabledb_prod" {
		t.Errorf("Database.Name = %q, want cabledb_prod", cfg.Database.Name)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Export.Schedule != "0 6 * * *" {
		t.Errorf("Export.Schedule = %q, want 0 6 * * *", cfg.Export.Schedule)
	}
	if cfg.Notify.Slack.BotToken != "xoxb-test" {
		t.Errorf("Notify.Slack.BotToken = %q, want xoxb-test", cfg.Notify.Slack.BotToken)
	}
}

func TestParse_MinimalAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.Path != "cabledb.sqlite" {
		t.Errorf("Database.Path = %q, want cabledb.sqlite", cfg.Database.Path)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Export.Path != "matrix.csv" {
		t.Errorf("Export.Path = %q, want matrix.csv", cfg.Export.Path)
	}
}

func TestParse_RejectsUnknownDriver(t *testing.T) {
	_, err := Parse([]byte("database:\n  driver: postgres\n"))
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if !strings.Contains(err.Error(), "database.driver") {
		t.Errorf("error %q does not mention database.driver", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite default", cfg.Database.Driver)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cabledb.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want sqlite", cfg.Database.Driver)
	}
}
