// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"pitvolut/internal/config"
	"pitvolut/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `pitvolut config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pitvolut configuration",
		Long: `Manage pitvolut configuration.

Configuration is stored in:
  - Linux: ~/.config/pitvolut/config.cue
  - macOS: ~/Library/Application Support/pitvolut/config.cue
  - Windows: %APPDATA%\pitvolut\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(app.stderr, issue.ConfigLoadFailedId)
		return err
	}

	keyStyle := TypeStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	if path := configFilePath(); path != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("date_layout"), valueStyle.Render(cfg.DateLayout))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("parser"))
	fmt.Fprintf(app.stdout, "  table_start: %s\n", valueStyle.Render(cfg.Parser.TableStart))
	fmt.Fprintf(app.stdout, "  table_end: %s\n", valueStyle.Render(cfg.Parser.TableEnd))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfigFile(app *App) error {
	path, err := config.CreateDefaultConfig()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("create default configuration").
			WithResource(path).
			WithSuggestion("Check that your config directory is writable").
			Wrap(err).
			BuildError()
	}
	fmt.Fprintln(app.stdout, SuccessStyle.Render("Created "+path))
	return nil
}

func showConfigPath(app *App) error {
	if path := configFilePath(); path != "" {
		fmt.Fprintln(app.stdout, path)
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path := dir + "/" + config.ConfigFileName + "." + config.ConfigFileExt
	fmt.Fprintln(app.stdout, path)
	fmt.Fprintln(app.stderr, SubtitleStyle.Render("(file does not exist yet; run `pitvolut config init`)"))
	return nil
}

// configFilePath returns the path of the config file actually in use, or ""
// when running on built-in defaults.
func configFilePath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.LoadedConfigPath()
}
