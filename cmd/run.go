package cmd

import (
	"github.com/abhisek/shapes/internal/app"
	"github.com/abhisek/shapes/internal/random"
	"github.com/abhisek/shapes/internal/schedule"
	"github.com/spf13/cobra"
)

// runApp builds the controller and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")

	loop := schedule.NewLoop()
	ctrl := e.newController(loop)

	e.logger.Info("starting tui", "pool", e.cfg.Quiz.DefaultPool, "quiz_length", e.cfg.Quiz.Length)
	return app.Run(app.Options{
		Controller:      ctrl,
		Loop:            loop,
		PreferAllShapes: !e.cfg.Quiz.UseBasicPool(),
		Splash:          !noSplash,
		Rand:            random.Default(),
		Logger:          e.logger,
	})
}
