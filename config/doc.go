// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config loads configuration values from layered sources
// and decodes them into structs.
//
// Each [Source] applies its values to a nested [Store]. [Read] applies
// sources in order so later sources override earlier ones:
//
//	m, err := config.Read(
//	    config.FromYaml(config.NewFileReader(os.DirFS("."), "config.yaml")),
//	    config.FromEnv(config.WithPrefix("APP_"), config.WithSeparator("__")),
//	)
//
// [Manager.Unmarshal] decodes the values into a struct. Fields whose type
// is a representation known to a parser registry, e.g. float64, bool,
// time.Duration or semver.Version for [env.Parser], are coerced through
// the registry so an environment string such as "1.5" can populate a
// float64 field.
package config
