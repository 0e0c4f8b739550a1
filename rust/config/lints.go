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

package config

import (
	"fmt"
)

// The lint severity lists below follow the rustc convention: every entry is
// a lint name whose level is forced to allow, warn or deny. Warnings are
// generally upgraded to denials so that a clean build stays clean.
//
// The lints are grouped into named sets. "strict" is the set applied to
// first-party code, "relaxed" is for imported code where upstream owns the
// fixes, and "none" caps every lint at allow. A toolchain declaration picks
// a set by name; when it names no set, no lints are injected and the
// declaration's own allow/warn/deny lists stand alone.
var (
	strictAllowLints = []string{
		"deprecated",
	}
	strictWarnLints = []string{}
	strictDenyLints = []string{
		"warnings",
		"missing-docs",
		"unsafe_op_in_unsafe_fn",
	}

	relaxedAllowLints = []string{
		"deprecated",
		"missing-docs",
	}
	relaxedWarnLints = []string{}
	relaxedDenyLints = []string{
		"warnings",
	}
)

// LintSet is a named triple of lint severity lists.
type LintSet struct {
	Allow []string
	Warn  []string
	Deny  []string
}

const (
	strictLints  = "strict"
	relaxedLints = "relaxed"
	noneLints    = "none"
	defaultLints = "default"
)

var lintSets = map[string]LintSet{
	strictLints:  {strictAllowLints, strictWarnLints, strictDenyLints},
	relaxedLints: {relaxedAllowLints, relaxedWarnLints, relaxedDenyLints},
	noneLints:    {},
}

// LintsForSet returns the lint severity lists for a named lint set. The
// "default" name is an alias for "strict". An unknown name is a
// configuration error.
func LintsForSet(name string) (LintSet, error) {
	if name == defaultLints {
		name = strictLints
	}
	set, ok := lintSets[name]
	if !ok {
		return LintSet{}, fmt.Errorf("unknown value for `lints`: %v, valid options are: default, strict, relaxed or none", name)
	}
	return set, nil
}
