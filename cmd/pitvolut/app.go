// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"pitvolut/internal/config"
	"pitvolut/internal/parser"
	"pitvolut/internal/pdf"
	"pitvolut/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: Cobra command handlers receive an App
	// reference and delegate statement processing through it.
	App struct {
		Config    config.Provider
		Extractor pdf.Extractor
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp. Tests can
	// supply stub implementations to isolate specific behavior.
	Dependencies struct {
		Config    config.Provider
		Extractor pdf.Extractor
		Stdout    io.Writer
		Stderr    io.Writer
	}
)

// NewApp builds an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:    deps.Config,
		Extractor: deps.Extractor,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Extractor == nil {
		app.Extractor = pdf.NewExtractor()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// loadConfig resolves the effective configuration, honoring the --config flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// processor builds the statement processor from the effective configuration.
// The config is validated at load time, so the marker patterns compile here.
func (a *App) processor(cfg *config.Config) (*parser.Processor, error) {
	tableStart, err := cfg.Parser.TableStartRegexp()
	if err != nil {
		return nil, err
	}
	tableEnd, err := cfg.Parser.TableEndRegexp()
	if err != nil {
		return nil, err
	}

	p := parser.New(parser.Options{
		TableStart: tableStart,
		TableEnd:   tableEnd,
		DateLayout: cfg.DateLayout,
	})
	return parser.NewProcessor(a.Extractor, p), nil
}

// process runs the full extraction and parsing pipeline for one statement PDF.
func (a *App) process(ctx context.Context, path types.FilesystemPath) (*parser.Result, *config.Config, error) {
	if ok, errs := path.IsValid(); !ok {
		return nil, nil, errs[0]
	}

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	proc, err := a.processor(cfg)
	if err != nil {
		return nil, nil, err
	}

	result, err := proc.Process(ctx, path.String())
	if err != nil {
		return nil, nil, err
	}
	return result, cfg, nil
}
