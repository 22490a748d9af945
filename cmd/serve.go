package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cfs-sim/cfs-sim/api"
)

var servePort int

// serveCmd exposes the scheduler simulation over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scheduling simulations over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		app := fiber.New()
		api.Register(app)

		logrus.Infof("Listening on :%d", servePort)
		logrus.Fatal(app.Listen(fmt.Sprintf(":%d", servePort)))
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 9095, "HTTP listen port")
	serveCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.AddCommand(serveCmd)
}
