package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Adravilag/sagebox-lab/internal/app"
	"github.com/Adravilag/sagebox-lab/internal/config"
	"github.com/Adravilag/sagebox-lab/internal/env"
	"github.com/Adravilag/sagebox-lab/internal/log"
	"github.com/Adravilag/sagebox-lab/internal/version"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	rootCmd.Flags().BoolP("help", "h", false, "Help")

	rootCmd.AddCommand(listCmd, setsCmd, configCmd, schemaCmd)
	for _, tool := range toolCommands() {
		rootCmd.AddCommand(tool)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sagebox-lab",
	Short: "SageBox Lab - Development tools for SageBox UI components",
	Long: heredoc.Doc(`
		SageBox Lab bundles the local tools used while building SageBox UI
		components: an icon manager with a shared icon library, a style editor
		and an event editor. Each tool is served on its own local port.
	`),
	Example: heredoc.Doc(`
		# Start the icon manager on http://localhost:4568
		sagebox-lab icons

		# List the available tools
		sagebox-lab list

		# Import two icons and add them to the project
		sagebox-lab icons import lucide:home mdi:star
		sagebox-lab icons project add lucide:home mdi:star

		# Rebuild the generated module and show what changed
		sagebox-lab icons build --diff

		# Run with debug logging in a specific directory
		sagebox-lab -d -c /path/to/project icons
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the working directory, loads the merged config and
// starts file logging in the library directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd, env.New())
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}
	log.Setup(log.FilePath(cfg.LibraryDir()), cfg.Debug)
	return cfg, nil
}

// setupApp handles the common setup logic for every command that touches
// the icon library.
func setupApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	appInstance, err := app.New(cmd.Context(), cfg)
	if err != nil {
		slog.Error("Failed to create app instance", "error", err)
		return nil, err
	}
	return appInstance, nil
}

func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		err := os.Chdir(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to change directory: %v", err)
		}
		return cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}
