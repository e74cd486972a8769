// Package duel parses duel command flags and starts the duel server.
package duel

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/openduel/arena/internal/platform/cmd"
	"github.com/openduel/arena/internal/services/duel/app"
	"github.com/openduel/arena/internal/services/duel/server"
)

// Config holds duel command configuration.
type Config struct {
	Port   int    `env:"OPENDUEL_PORT" envDefault:"8080"`
	Addr   string `env:"OPENDUEL_ADDR"`
	DBPath string `env:"OPENDUEL_DB_PATH"`

	TicketListWait        time.Duration `env:"OPENDUEL_TICKET_LIST_WAIT"`
	TicketStatusWait      time.Duration `env:"OPENDUEL_TICKET_STATUS_WAIT"`
	GameStatusUpdateDelay time.Duration `env:"OPENDUEL_GAME_STATUS_UPDATE_DELAY"`
	GameStatusMaxWait     time.Duration `env:"OPENDUEL_GAME_STATUS_MAX_WAIT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The duel server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The duel server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the duel service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDuel, func(context.Context) error {
		return server.Run(ctx, server.Config{
			Port:   cfg.Port,
			Addr:   cfg.Addr,
			DBPath: cfg.DBPath,
			Engine: app.Config{
				TicketListWait:        cfg.TicketListWait,
				TicketStatusWait:      cfg.TicketStatusWait,
				GameStatusUpdateDelay: cfg.GameStatusUpdateDelay,
				GameStatusMaxWait:     cfg.GameStatusMaxWait,
			},
		})
	})
}
