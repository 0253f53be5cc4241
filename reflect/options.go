// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package reflect

// BuilderOptions configures policy decisions a producer makes once per
// translation unit, rather than per call (§4.4, §4.5). It carries no file
// I/O or AST access of its own — a pure value the caller threads through
// RegisterType/FillRegister.
type BuilderOptions struct {
	// DefaultRowMajor is used for any matrix type that doesn't carry an
	// explicit row_major/column_major qualifier.
	DefaultRowMajor bool

	// AutoBindSpace is used for any register lacking an explicit `space`
	// in its register() assignment.
	AutoBindSpace uint32

	// Features selects which optional tables NewReflection populates.
	Features FeatureFlags
}

// DefaultBuilderOptions matches the common case: row-major matrices,
// register space 0, and every optional table enabled.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{
		DefaultRowMajor: true,
		AutoBindSpace:   0,
		Features:        FeatureBasics | FeatureFunctions | FeatureUserTypes | FeatureNamespaces | FeatureSymbolInfo | FeatureScopes,
	}
}
