// Package config holds process-level knobs for embedding this parser
// (SPEC_FULL.md §2.3). Grounded directly on server/config.go's
// BurntSushi/toml-based config struct with defaults: a plain Options
// value usable standalone, plus a Load that decodes one from a TOML
// file for command-line/server embedding.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Options holds the handful of knobs an embedder can record. No package
// in this module reads these fields: they are decoded and carried, but
// they do not change how tokenizing, normalizing, parsing or lowering
// behave.
type Options struct {
	// ArtifactPath names a .bc parser-table artifact (spec.md §6.1).
	// Nothing loads it; eql.BuildSpec always builds the tables
	// in-process from grammar.Build.
	ArtifactPath string `toml:"artifact_path"`

	// DebugTypecheck names an optional field-validation pass over a
	// completed AST (spec.md §3.6's "structural typecheck" note). No
	// such pass exists in this module.
	DebugTypecheck bool `toml:"debug_typecheck"`

	// NormalizeDDLLiterals names whether literal constants inside
	// DDL/SDL text are extracted. normalize.Normalize does not consult
	// it.
	NormalizeDDLLiterals bool `toml:"normalize_ddl_literals"`
}

// Default returns the Options a bare embedder gets with no config file:
// every field at its zero value.
func Default() Options {
	return Options{}
}

// Load decodes an Options from the TOML file at path, the same
// toml.DecodeFile call server/config.go makes over its own Config
// struct.
func Load(path string) (Options, error) {
	var opts Options
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("load config: %w", err)
	}
	return opts, nil
}
