package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/yokitheyo/cut/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve extraction over HTTP",
		Long: `Start an HTTP server exposing extraction:

  POST /cut     {"mode":"fields","list":"1,3","delimiter":",","lines":["a,b,c"]}
  GET  /parse?list=1,3-5
  GET  /health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// requests are always logged
			log.SetOutput(cmd.ErrOrStderr())
			return server.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")

	return cmd
}
