package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h := &server.ProjectionHandler{
				Engine: a.engine(domain.DefaultPolicyRules()),
				Parser: a.parser,
				Logger: a.logger,
			}
			router := server.NewRouter(h, a.logger, a.settings.Engine.Debug)
			return server.Run(ctx, a.settings.Server, router, a.logger)
		},
	}
	cmd.Flags().String("addr", ":8080", "HTTP listen address")
	return cmd
}
