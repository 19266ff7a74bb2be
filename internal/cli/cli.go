// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the parseenv command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/z5labs/fallible/internal/otelslog"
	"github.com/z5labs/fallible/internal/try"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "parseenv"

// Option configures Run.
type Option func(*app)

// Stdout sets where command output is written.
func Stdout(w io.Writer) Option {
	return func(a *app) {
		a.out = w
	}
}

// Stderr sets where logs and traces are written.
func Stderr(w io.Writer) Option {
	return func(a *app) {
		a.errOut = w
	}
}

type app struct {
	out    io.Writer
	errOut io.Writer

	logLevel string
	trace    bool

	log      *slog.Logger
	tracer   trace.Tracer
	shutdown []func(context.Context) error
}

// Run executes the command tree with the given args.
// ctx cancellation stops long running commands such as load --watch.
func Run(ctx context.Context, args []string, opts ...Option) error {
	a := &app{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = otelslog.NewJSON(a.errOut, slog.LevelInfo)
	a.tracer = otel.GetTracerProvider().Tracer(serviceName)

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		attrs := []any{slog.Any("error", err)}

		var perr try.PanicError
		if errors.As(err, &perr) {
			attrs = append(attrs, slog.String("stack", string(perr.Stack)))
		}
		a.log.ErrorContext(ctx, "command failed", attrs...)
	}
	return errors.Join(err, a.close(ctx))
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Convert environment variables between representations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			var lvl slog.Level
			err = lvl.UnmarshalText([]byte(a.logLevel))
			if err != nil {
				return err
			}
			a.log = otelslog.NewJSON(a.errOut, lvl)

			if !a.trace {
				return nil
			}
			return a.initTracing(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "info", "minimum level of logs written to stderr")
	flags.BoolVar(&a.trace, "trace", false, "write OpenTelemetry spans to stderr")

	cmd.AddCommand(
		a.getCmd(),
		a.loadCmd(),
	)
	return cmd
}

func (a *app) initTracing(ctx context.Context) error {
	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(a.errOut),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(
		ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	a.tracer = tp.Tracer(serviceName)
	a.shutdown = append(a.shutdown, tp.Shutdown)
	return nil
}

func (a *app) close(ctx context.Context) error {
	// the command context may already be cancelled
	ctx = context.WithoutCancel(ctx)

	errs := make([]error, 0, len(a.shutdown))
	for _, f := range a.shutdown {
		err := f(ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NotSetError is returned when a requested variable is not set.
type NotSetError struct {
	Name string
}

// Error implements the error interface.
func (e NotSetError) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}
