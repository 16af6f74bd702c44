package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Layers are kept in priority order.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers []layer
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

// build merges the layers; a field set by a higher layer is never
// overwritten by a lower one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("error occured during building config: %w", errors.Join(b.errs...))
	}

	merged := &StructuredConfig{}
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	return b.add("flags", cfg, err)
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add("env", cfg, parseEnv(cfg))
}

// withPath puts an explicit config file path above every other layer.
func (b *configBuilder) withPath(path string) *configBuilder {
	if path == "" {
		return b
	}
	b.layers = append([]layer{{source: "path", cfg: &StructuredConfig{FilePath: path}}}, b.layers...)
	return b
}

// withFile loads the file named by the highest layer that sets FilePath.
func (b *configBuilder) withFile() *configBuilder {
	path := b.filePath()
	if path == "" {
		return b
	}
	cfg, err := parseFile(path)
	return b.add("file", cfg, err)
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaults(), nil)
}

func (b *configBuilder) filePath() string {
	for _, l := range b.layers {
		if l.cfg.FilePath != "" {
			return l.cfg.FilePath
		}
	}
	return ""
}
