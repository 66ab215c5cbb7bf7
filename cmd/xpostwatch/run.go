package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/xpostwatch/internal/model"
	"github.com/tinytelemetry/xpostwatch/internal/session"
	"github.com/tinytelemetry/xpostwatch/internal/tui"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// run owns one session from start to teardown. The session is stopped on
// every return path.
func run(cfg appConfig, plain bool, logger *zap.Logger) error {
	skin, err := tui.LoadSkin(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		logger.Warn("skin fallback", zap.String("skin", cfg.Skin), zap.Error(err))
		skin = tui.DefaultSkin()
	}

	sess := session.New(session.Options{
		Timings: cfg.timings(),
		Rand:    cfg.rand(),
		Logger:  logger,
	})
	updates := sess.Subscribe()
	sess.Start()
	defer sess.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if plain {
		return printFrame(ctx, os.Stdout, updates, skin, cfg.layout())
	}
	return runTUI(ctx, sess, updates, skin, cfg.layout())
}

func runTUI(ctx context.Context, sess *session.Session, updates <-chan model.DisplayState, skin tui.Skin, layout tui.Layout) error {
	m := tui.NewModel(updates, sess.State(), skin, layout)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("TUI requires a real terminal (try -plain)")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	// Signal arrives: end the session, which closes updates and quits the model.
	g.Go(func() error {
		<-gctx.Done()
		sess.Stop()
		p.Quit()
		return nil
	})

	return g.Wait()
}

// printFrame waits for the initial count and writes a single frame. An
// interrupt before the count arrives writes nothing and is not an error.
func printFrame(ctx context.Context, w io.Writer, updates <-chan model.DisplayState, skin tui.Skin, layout tui.Layout) error {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case st, ok := <-updates:
			if !ok {
				return fmt.Errorf("session ended before the count arrived")
			}
			if st.IsLoading {
				continue
			}
			frame := tui.Frame{
				State:   st,
				History: []int{st.Count},
				Skin:    skin,
				Layout:  layout,
			}
			_, err := fmt.Fprintln(w, tui.Render(frame))
			return err
		}
	}
}
