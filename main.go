// @title Freedom Wall API
// @version 1.0
// @description Anonymous message wall with comments, reactions and YouTube attachments.
// @BasePath /

package main

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	_ "github.com/Mayuushi/freedom-wall-music/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wall",
		Short:         "Freedom wall API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().String("port", "3000", "HTTP listen port (env PORT)")
	root.PersistentFlags().String("store", "mongo", "post store: mongo or memory (env STORE)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	})
	root.AddCommand(&cobra.Command{
		Use:   "indexes",
		Short: "Create MongoDB indexes and exit",
		RunE:  runIndexes,
	})
	return root
}
