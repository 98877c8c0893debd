// Package app implements the application layer for ninjify.
package app

import (
	"context"
	"os"

	"go.trai.ch/ninjify/internal/adapters/fs"
	"go.trai.ch/ninjify/internal/core/domain"
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/ninjify/internal/engine/ninja"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options carries one generation request.
type Options struct {
	// GraphFile is the path of the serialized evaluated graph.
	GraphFile string

	// Targets restricts the root list to the named targets. Empty means
	// the goal list recorded in the graph file.
	Targets []string

	// Force regenerates even when the stamp says nothing changed.
	Force bool

	// Config is the generator configuration.
	Config ninja.Config
}

// App represents the main application logic.
type App struct {
	loader ports.GraphLoader
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.GraphLoader, logger ports.Logger) *App {
	return &App{
		loader: loader,
		logger: logger,
	}
}

// Generate runs one generation pass: load the graph, render the ninja
// file and its companions, and record the stamp. An unchanged graph file
// with intact outputs is skipped unless forced.
func (a *App) Generate(ctx context.Context, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fingerprint, err := fs.Fingerprint(opts.GraphFile)
	if err != nil {
		return err
	}

	stamp := fs.NewStamp(opts.Config.StampFile())
	if !opts.Force {
		prev, err := stamp.Read()
		if err != nil {
			return err
		}
		if prev == fingerprint && a.outputsExist(opts.Config) {
			a.logger.Info("ninja file is up to date")
			return nil
		}
	}

	graph, ev, err := a.loader.Load(opts.GraphFile)
	if err != nil {
		return err
	}
	if err := selectTargets(graph, opts.Targets); err != nil {
		return err
	}

	gen := ninja.NewGenerator(opts.Config, ev, a.logger)
	if err := gen.Generate(graph); err != nil {
		return err
	}

	if err := stamp.Write(fingerprint); err != nil {
		return err
	}

	a.logger.Info("wrote " + opts.Config.NinjaFile())
	return nil
}

// Watch regenerates on every change of the graph file until the context
// is canceled. Generation failures are logged and watching continues.
func (a *App) Watch(ctx context.Context, w ports.Watcher, opts Options) error {
	if err := a.Generate(ctx, opts); err != nil {
		a.logger.Error(err)
	}

	if err := w.Start(ctx, []string{opts.GraphFile}); err != nil {
		return err
	}
	defer w.Stop() //nolint:errcheck // Best effort stop on the way out

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for range w.Events() {
			a.logger.Info("graph file changed, regenerating")
			if err := a.Generate(ctx, opts); err != nil {
				a.logger.Error(err)
			}
		}
		return nil
	})
	return g.Wait()
}

// selectTargets replaces the graph's root list with the named targets.
func selectTargets(graph *domain.Graph, targets []string) error {
	if len(targets) == 0 {
		return nil
	}
	roots := make([]*domain.BuildNode, 0, len(targets))
	for _, target := range targets {
		n := graph.Node(domain.NewInternedString(target))
		if n == nil {
			return zerr.With(domain.ErrTargetNotFound, "target", target)
		}
		roots = append(roots, n)
	}
	graph.Roots = roots
	graph.BuildAll = false
	return nil
}

func (a *App) outputsExist(cfg ninja.Config) bool {
	for _, path := range []string{cfg.NinjaFile(), cfg.ScriptFile()} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}
