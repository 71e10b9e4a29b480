package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tonhe/pinggraph/internal/config"
	"github.com/tonhe/pinggraph/internal/engine"
	"github.com/tonhe/pinggraph/internal/logging"
	"github.com/tonhe/pinggraph/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg := config.DefaultConfig()
	cfgPath, pathErr := config.GetConfigPath()
	if pathErr == nil {
		if loaded, loadErr := config.LoadConfig(cfgPath); loadErr == nil {
			cfg = loaded
		} else {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config %s: %v\n", cfgPath, loadErr)
		}
	}

	log := zap.NewNop()
	if dirErr := config.EnsureDirs(); dirErr == nil {
		if logDir, logErr := config.GetLogDir(); logErr == nil {
			if l, lErr := logging.NewLogger(logDir, cfg.LogLevel); lErr == nil {
				log = l
			}
		}
	}
	defer func() {
		err = multierr.Append(err, log.Sync())
	}()

	target := engine.NewTarget(engine.DefaultAddress)
	feed := engine.NewFeed(engine.DefaultFeedBuffer)
	sampler := engine.NewSampler(target, engine.NewAddressResolver(nil), engine.NewICMPProber(cfg.Privileged), feed, log)
	sampler.Apply(engine.PacingFromConfig(cfg), cfg.ProbeTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	model := tui.NewAppModel(cfg, cfgPath, target, feed, sampler, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(gctx))

	log.Info("starting", zap.String("version", tui.Version), zap.String("config", cfgPath))

	g.Go(func() error {
		return sampler.Run(gctx)
	})
	if pathErr == nil {
		g.Go(func() error {
			watchErr := config.Watch(gctx, cfgPath, log, func(c *config.Config) {
				p.Send(tui.ConfigReloadedMsg{Config: c})
			})
			if watchErr != nil {
				log.Warn("config watch disabled", zap.Error(watchErr))
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		if _, runErr := p.Run(); runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
			return runErr
		}
		return nil
	})

	err = g.Wait()
	log.Info("stopped")
	return err
}
