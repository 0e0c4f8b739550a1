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
	"testing"

	"ferrite/platform"
)

func TestRustBinLayout(t *testing.T) {
	host := platform.Target{Os: platform.Linux, Arch: platform.X86_64}

	if got, want := RustBin(host), "prebuilts/rust/linux_x86_64/"+RustDefaultVersion+"/bin"; got != want {
		t.Errorf("RustBin = %q, want %q", got, want)
	}
	if got, want := RustTools(host), "prebuilts/rust/linux_x86_64/"+RustDefaultVersion+"/tools"; got != want {
		t.Errorf("RustTools = %q, want %q", got, want)
	}
}

func TestRustBaseOverride(t *testing.T) {
	t.Setenv("FERRITE_RUST_BASE", "/opt/rust")
	t.Setenv("FERRITE_RUST_VERSION", "1.80.0")

	host := platform.Target{Os: platform.Darwin, Arch: platform.Arm64}
	if got, want := RustBin(host), "/opt/rust/macos_arm64/1.80.0/bin"; got != want {
		t.Errorf("RustBin = %q, want %q", got, want)
	}
}

func TestStdEnvArchIsTotal(t *testing.T) {
	for _, arch := range platform.ArchTypeList() {
		if name := StdEnvArch[arch]; name == "" {
			t.Errorf("no std::env arch name registered for %s", arch)
		}
	}
}
