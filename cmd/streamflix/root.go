package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Waddenn/streamflix/internal/appinfo"
	"github.com/Waddenn/streamflix/internal/tui"
)

func newRootCommand() *cobra.Command {
	var configFlag, apiURLFlag, logLevelFlag string

	ctx := newCommandContext(&configFlag, &apiURLFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "streamflix",
		Short:         "Browse the StreamFlix catalog in the terminal",
		Version:       appinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Catalog API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newMovieCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func runBrowser(ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	client, err := ctx.client()
	if err != nil {
		return err
	}

	logger.Info().
		Str("api", cfg.API.BaseURL).
		Str("version", appinfo.Version).
		Msg("starting browser")

	model := tui.NewModel(cfg, client, logger.Logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("browser exited with error")
		return err
	}
	return nil
}
