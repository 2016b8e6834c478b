package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpusim/api"
)

var port int // Overrides the configured listen port

// serveCmd exposes the schedulers over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulator over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}

		app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("listening on %s", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
