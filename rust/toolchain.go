// Copyright 2024 The Ferrite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rust registers Rust toolchain declarations. A declaration bundles
// tool handles, compiler flags and lint severity lists; registration
// resolves the target triple for the build host, fills in defaulted tool
// handles and produces the immutable provider payloads the host build
// system queries for the lifetime of a build invocation.
package rust

import (
	"fmt"
	"path"

	"ferrite/platform"
	"ferrite/rust/config"
)

// Properties is the attribute schema of a rust_toolchain declaration. It is
// the wire contract with build descriptions that reference this toolchain:
// renaming or retyping a field is a breaking change.
type Properties struct {
	// name of the lint set ("default", "strict", "relaxed" or "none") whose
	// severity lists are merged in front of the explicit lists below. No set
	// is applied when this is unset.
	Lints *string `toml:"lints"`

	// lints whose level is forced to allow, in order.
	Allow_lints []string `toml:"allow_lints"`

	// lints whose level is forced to warn, in order.
	Warn_lints []string `toml:"warn_lints"`

	// lints whose level is forced to deny, in order.
	Deny_lints []string `toml:"deny_lints"`

	// optional path to a clippy.toml lint configuration file.
	Clippy_toml *string `toml:"clippy_toml"`

	// rust edition used when a build description does not request one.
	Default_edition *string `toml:"default_edition"`

	// flags to pass to rustc when building a binary artifact.
	Rustc_flags []string `toml:"rustc_flags"`

	// flags to pass to rustc for check-only (metadata) builds.
	Rustc_check_flags []string `toml:"rustc_check_flags"`

	// flags to pass to rustc when building tests.
	Rustc_test_flags []string `toml:"rustc_test_flags"`

	// flags to pass to rustdoc.
	Rustdoc_flags []string `toml:"rustdoc_flags"`

	// URL prefix prepended to links in generated documentation.
	Doc_url_prefix *string `toml:"doc_url_prefix"`

	// target triple to configure. Defaults to the triple registered for the
	// build host's (OS, architecture) pair.
	Rustc_target_triple *string `toml:"rustc_target_triple"`

	// whether to build rlibs in pipelined mode (emit metadata early so
	// dependent crates can start compiling before codegen finishes).
	Pipelined *bool `toml:"pipelined"`

	// whether rustc should report dependencies that were never used.
	Report_unused_deps *bool `toml:"report_unused_deps"`

	// Tool handles. Each defaults to a fixed location inside the toolchain
	// distribution for the build host; a handle that is still empty after
	// defaulting fails registration.
	Compiler                            *string `toml:"compiler"`
	Rustdoc                             *string `toml:"rustdoc"`
	Clippy_driver                       *string `toml:"clippy_driver"`
	Rustc_action                        *string `toml:"rustc_action"`
	Failure_filter_action               *string `toml:"failure_filter_action"`
	Transitive_dependency_symlinks_tool *string `toml:"transitive_dependency_symlinks_tool"`
	Concat_tool                         *string `toml:"concat_tool"`
	Rustdoc_test_runner                 *string `toml:"rustdoc_test_runner"`
}

// DefaultInfo is the generic build output marker payload. A toolchain
// produces no build outputs of its own, so the payload is empty.
type DefaultInfo struct {
}

// ToolchainInfo carries every field of the toolchain declaration verbatim,
// plus the resolved target triple and the defaulted edition and tool
// handles. Consumers must treat it as read-only.
type ToolchainInfo struct {
	RustTriple string

	AllowLints []string
	WarnLints  []string
	DenyLints  []string

	ClippyToml     string
	DefaultEdition string

	RustcFlags      []string
	RustcCheckFlags []string
	RustcTestFlags  []string
	RustdocFlags    []string

	DocUrlPrefix string

	Pipelined        bool
	ReportUnusedDeps bool

	Compiler                         string
	Rustdoc                          string
	ClippyDriver                     string
	RustcAction                      string
	FailureFilterAction              string
	TransitiveDependencySymlinksTool string
	ConcatTool                       string
	RustdocTestRunner                string
}

// PlatformInfo identifies the host CPU architecture for platform-specific
// dependency resolution downstream.
type PlatformInfo struct {
	// ArchName is the Rust std::env name of the architecture, e.g.
	// "aarch64" for arm64 hosts.
	ArchName string
}

// Registration is the full output of registering a toolchain declaration:
// the default output marker plus the two structured payloads.
type Registration struct {
	Default   DefaultInfo
	Toolchain ToolchainInfo
	Platform  PlatformInfo
}

// Register evaluates a toolchain declaration against the build host resolved
// from the environment. It is a pure construction step: either it returns a
// complete Registration or it returns an error and no outputs.
func Register(props Properties) (Registration, error) {
	host, err := platform.Host()
	if err != nil {
		return Registration{}, err
	}
	return RegisterForTarget(props, host)
}

// RegisterForTarget evaluates a toolchain declaration for an explicit
// target, resolving the triple from the registered toolchain table unless
// the declaration overrides it.
func RegisterForTarget(props Properties, target platform.Target) (Registration, error) {
	triple := String(props.Rustc_target_triple)
	if triple == "" {
		resolved, err := config.RustTripleFor(target.Os, target.Arch)
		if err != nil {
			return Registration{}, err
		}
		triple = resolved
	}

	allow, warn, deny, err := lintLists(props)
	if err != nil {
		return Registration{}, err
	}

	tools, err := toolHandles(props, target)
	if err != nil {
		return Registration{}, err
	}

	archName, ok := config.StdEnvArch[target.Arch]
	if !ok {
		return Registration{}, fmt.Errorf("no std::env arch name for %s", target.Arch)
	}

	info := ToolchainInfo{
		RustTriple: triple,

		AllowLints: copyOf(allow),
		WarnLints:  copyOf(warn),
		DenyLints:  copyOf(deny),

		ClippyToml:     String(props.Clippy_toml),
		DefaultEdition: StringDefault(props.Default_edition, config.DefaultEdition),

		RustcFlags:      copyOf(props.Rustc_flags),
		RustcCheckFlags: copyOf(props.Rustc_check_flags),
		RustcTestFlags:  copyOf(props.Rustc_test_flags),
		RustdocFlags:    copyOf(props.Rustdoc_flags),

		DocUrlPrefix: String(props.Doc_url_prefix),

		Pipelined:        Bool(props.Pipelined),
		ReportUnusedDeps: Bool(props.Report_unused_deps),

		Compiler:                         tools.compiler,
		Rustdoc:                          tools.rustdoc,
		ClippyDriver:                     tools.clippyDriver,
		RustcAction:                      tools.rustcAction,
		FailureFilterAction:              tools.failureFilterAction,
		TransitiveDependencySymlinksTool: tools.transitiveDependencySymlinksTool,
		ConcatTool:                       tools.concatTool,
		RustdocTestRunner:                tools.rustdocTestRunner,
	}

	return Registration{
		Default:   DefaultInfo{},
		Toolchain: info,
		Platform:  PlatformInfo{ArchName: archName},
	}, nil
}

// lintLists merges the named lint set, if any, in front of the declaration's
// explicit severity lists.
func lintLists(props Properties) (allow, warn, deny []string, err error) {
	allow = props.Allow_lints
	warn = props.Warn_lints
	deny = props.Deny_lints
	if props.Lints != nil {
		set, err := config.LintsForSet(*props.Lints)
		if err != nil {
			return nil, nil, nil, err
		}
		allow = append(copyOf(set.Allow), allow...)
		warn = append(copyOf(set.Warn), warn...)
		deny = append(copyOf(set.Deny), deny...)
	}
	return allow, warn, deny, nil
}

type resolvedTools struct {
	compiler                         string
	rustdoc                          string
	clippyDriver                     string
	rustcAction                      string
	failureFilterAction              string
	transitiveDependencySymlinksTool string
	concatTool                       string
	rustdocTestRunner                string
}

// toolHandles applies the fixed default locations for tool handles the
// declaration does not override and rejects handles that are still empty.
// Required handles must be present before any output payload is built.
func toolHandles(props Properties, target platform.Target) (resolvedTools, error) {
	bin := config.RustBin(target)
	toolsDir := config.RustTools(target)

	tools := resolvedTools{
		compiler:                         StringDefault(props.Compiler, path.Join(bin, "rustc")),
		rustdoc:                          StringDefault(props.Rustdoc, path.Join(bin, "rustdoc")),
		clippyDriver:                     StringDefault(props.Clippy_driver, path.Join(bin, "clippy-driver")),
		rustcAction:                      StringDefault(props.Rustc_action, path.Join(toolsDir, "rustc_action")),
		failureFilterAction:              StringDefault(props.Failure_filter_action, path.Join(toolsDir, "failure_filter_action")),
		transitiveDependencySymlinksTool: StringDefault(props.Transitive_dependency_symlinks_tool, path.Join(toolsDir, "transitive_dependency_symlinks")),
		concatTool:                       StringDefault(props.Concat_tool, path.Join(toolsDir, "concat")),
		rustdocTestRunner:                StringDefault(props.Rustdoc_test_runner, path.Join(toolsDir, "rustdoc_test_runner")),
	}

	for _, required := range []struct {
		attr  string
		value string
	}{
		{"compiler", tools.compiler},
		{"rustdoc", tools.rustdoc},
		{"clippy_driver", tools.clippyDriver},
		{"rustc_action", tools.rustcAction},
		{"failure_filter_action", tools.failureFilterAction},
		{"transitive_dependency_symlinks_tool", tools.transitiveDependencySymlinksTool},
		{"concat_tool", tools.concatTool},
		{"rustdoc_test_runner", tools.rustdocTestRunner},
	} {
		if required.value == "" {
			return resolvedTools{}, fmt.Errorf("missing required tool handle %q", required.attr)
		}
	}

	return tools, nil
}

// copyOf returns a copy of a string slice, preserving nil.
func copyOf(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// String returns the value of a *string, or "" for nil.
func String(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

// StringDefault returns the value of a *string, or def for nil.
func StringDefault(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

// StringPtr returns a pointer to a new string containing s.
func StringPtr(s string) *string {
	return &s
}

// Bool returns the value of a *bool, or false for nil.
func Bool(b *bool) bool {
	if b != nil {
		return *b
	}
	return false
}

// BoolPtr returns a pointer to a new bool containing b.
func BoolPtr(b bool) *bool {
	return &b
}
