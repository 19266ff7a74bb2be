// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/z5labs/fallible/env"
	"github.com/z5labs/fallible/internal/try"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func (a *app) getCmd() *cobra.Command {
	var (
		as        string
		precision string
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Convert a single environment variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			kind, err := env.ParseKind(as)
			if err != nil {
				return err
			}

			var p env.Precision
			err = p.UnmarshalText([]byte(precision))
			if err != nil {
				return err
			}

			v, err := a.get(cmd.Context(), env.FromEnv(), args[0], kind, p)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), format(v))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&as, "as", string(env.KindString), "representation to convert the variable into")
	flags.StringVar(&precision, "precision", env.PrecisionInt.String(), "precision used when converting into a number (int or float)")
	return cmd
}

func (a *app) get(ctx context.Context, r env.Reader, name string, kind env.Kind, p env.Precision) (any, error) {
	ctx, span := a.tracer.Start(ctx, "get")
	defer span.End()

	span.SetAttributes(
		attribute.String("env.name", name),
		attribute.String("env.kind", string(kind)),
	)

	var params any
	if kind == env.KindNumber {
		params = env.NumberParams{Precision: p}
	}

	o := r.ParseWith(name, kind, params)
	if v, ok := o.Success(); ok {
		a.log.DebugContext(ctx, "converted variable", slog.String("name", name), slog.String("kind", string(kind)))
		return v, nil
	}

	err, _ := o.Failure()
	if err == nil {
		err = NotSetError{Name: name}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

func format(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Duration:
		return x.String()
	case semver.Version:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
