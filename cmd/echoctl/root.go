package main

import (
	"context"
	"os"
	"time"

	"echo-journal/internal/client/echoapi"
	"echo-journal/internal/config"
	"echo-journal/internal/platform/logger"

	"github.com/spf13/cobra"
)

type app struct {
	server  string
	token   string
	timeout time.Duration
	asJSON  bool

	j   journal
	loc *time.Location
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "echoctl",
		Short: "Echo journal from the terminal",
		Long: `echoctl records and browses the events of your day.

Without --server it opens the local store configured by STORAGE_DRIVER
(file by default, under DATA_DIR). With --server it talks to a running
echo-journal API instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.server, "server", os.Getenv("ECHO_SERVER"), "API base URL (default: local store)")
	root.PersistentFlags().StringVar(&a.token, "token", os.Getenv("ECHO_API_TOKEN"), "bearer token for --server")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 10*time.Second, "request/flush timeout")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of a table")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newTodayCmd(a),
		newShowCmd(a),
		newEditCmd(a),
		newRmCmd(a),
		newClearTodayCmd(a),
		newExportCmd(a),
	)
	return root, a
}

func (a *app) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	a.loc = loc

	if a.server != "" {
		c, err := echoapi.New(a.server, a.token, a.timeout)
		if err != nil {
			return err
		}
		a.j = remoteJournal{Client: c}
		return nil
	}

	// En la CLI solo interesan los errores; el resto ensucia la salida.
	log := logger.New(logger.Options{
		Level:  logger.Error,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Writer: os.Stderr,
	})
	j, err := openLocal(ctx, cfg, log)
	if err != nil {
		return err
	}
	a.j = j
	return nil
}

func (a *app) close() error {
	if a.j == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	err := a.j.Close(ctx)
	a.j = nil
	return err
}

func (a *app) ctx(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, a.timeout)
}
