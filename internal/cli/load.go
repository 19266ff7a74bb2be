// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/z5labs/fallible/config"
	"github.com/z5labs/fallible/internal/try"

	"github.com/Masterminds/semver/v3"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrWatchWithoutFile is returned when --watch is set without --file.
var ErrWatchWithoutFile = errors.New("--watch requires --file")

// Settings is the sample structure populated by the load command.
type Settings struct {
	Name    string         `config:"name"`
	Port    float64        `config:"port"`
	Debug   bool           `config:"debug"`
	Timeout time.Duration  `config:"timeout"`
	Version semver.Version `config:"version"`
}

// WriteTo writes s as YAML.
func (s Settings) WriteTo(w io.Writer) (int64, error) {
	b, err := yaml.Marshal(map[string]any{
		"name":    s.Name,
		"port":    s.Port,
		"debug":   s.Debug,
		"timeout": s.Timeout.String(),
		"version": s.Version.String(),
	})
	if err != nil {
		return 0, err
	}
	n, err := w.Write(append(b, "---\n"...))
	return int64(n), err
}

func (a *app) loadCmd() *cobra.Command {
	var (
		file   string
		prefix string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load settings from a YAML or JSON file and environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			if watch && file == "" {
				return ErrWatchWithoutFile
			}

			ctx := cmd.Context()
			err = a.loadAndPrint(ctx, cmd.OutOrStdout(), file, prefix)
			if err != nil || !watch {
				return err
			}
			return a.watch(ctx, cmd.OutOrStdout(), file, prefix)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "YAML or JSON file applied before the environment")
	flags.StringVar(&prefix, "prefix", "PARSEENV_", "prefix of the environment variables to apply")
	flags.BoolVar(&watch, "watch", false, "reload the settings whenever the file changes")
	return cmd
}

func (a *app) loadAndPrint(ctx context.Context, w io.Writer, file, prefix string) error {
	s, err := a.load(ctx, file, prefix)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func (a *app) load(ctx context.Context, file, prefix string) (Settings, error) {
	ctx, span := a.tracer.Start(ctx, "load")
	defer span.End()

	span.SetAttributes(attribute.String("config.file", file))

	var srcs []config.Source
	if file != "" {
		src, err := config.FromFile(os.DirFS(filepath.Dir(file)), filepath.Base(file))
		if err != nil {
			span.RecordError(err)
			return Settings{}, err
		}
		srcs = append(srcs, src)
	}
	srcs = append(srcs, config.FromEnv(
		config.WithPrefix(prefix),
		config.WithSeparator("__"),
	))

	var s Settings
	m, err := config.Read(srcs...)
	if err != nil {
		span.RecordError(err)
		return s, err
	}

	err = m.Unmarshal(&s)
	if err != nil {
		span.RecordError(err)
		return s, err
	}

	a.log.DebugContext(ctx, "loaded settings", slog.String("file", file))
	return s, nil
}

func (a *app) watch(ctx context.Context, w io.Writer, file, prefix string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// editors often replace the file so watch its directory instead
	err = watcher.Add(filepath.Dir(file))
	if err != nil {
		return errors.Join(err, watcher.Close())
	}

	target := filepath.Clean(file)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return watcher.Close()
	})
	g.Go(func() (err error) {
		defer try.Recover(&err)

		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				err := a.loadAndPrint(gctx, w, file, prefix)
				if err != nil {
					a.log.WarnContext(gctx, "failed to reload settings", slog.String("file", file), slog.Any("error", err))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				a.log.WarnContext(gctx, "file watcher error", slog.Any("error", err))
			case <-gctx.Done():
				return nil
			}
		}
	})
	return g.Wait()
}
