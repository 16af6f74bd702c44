// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-secure-storage/models"
	"github.com/caarlos0/env/v11"
)

// envParsers decode the domain types that plain strconv conversions would
// accept but must not, such as an out-of-range access policy index.
var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(models.AccessPolicy(0)): func(v string) (any, error) {
		return models.ParseAccessPolicy(v)
	},
}

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. Every offending variable is
// reported, not only the first.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{FuncMap: envParsers})
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) && len(aggregate.Errors) > 1 {
		return fmt.Errorf("error getting env configs: %w", errors.Join(aggregate.Errors...))
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
