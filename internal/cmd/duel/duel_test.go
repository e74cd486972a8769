package duel

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("duel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Addr != "" {
		t.Fatalf("expected empty addr, got %q", cfg.Addr)
	}
	if cfg.TicketListWait != 0 {
		t.Fatalf("expected zero ticket list wait, got %s", cfg.TicketListWait)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("duel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9001", "-addr", "127.0.0.1:9999", "-db-path", "/tmp/duel.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected port 9001, got %d", cfg.Port)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/duel.db" {
		t.Fatalf("expected db path override, got %q", cfg.DBPath)
	}
}

func TestParseConfigEnvWaits(t *testing.T) {
	t.Setenv("OPENDUEL_TICKET_LIST_WAIT", "250ms")
	t.Setenv("OPENDUEL_GAME_STATUS_MAX_WAIT", "90s")

	fs := flag.NewFlagSet("duel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.TicketListWait != 250*time.Millisecond {
		t.Fatalf("expected 250ms ticket list wait, got %s", cfg.TicketListWait)
	}
	if cfg.GameStatusMaxWait != 90*time.Second {
		t.Fatalf("expected 90s max wait, got %s", cfg.GameStatusMaxWait)
	}
}
