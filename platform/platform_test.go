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

package platform

import (
	"testing"
)

func TestOsTypeList(t *testing.T) {
	want := []string{"linux", "macos", "windows"}
	got := OsTypeList()
	if len(got) != len(want) {
		t.Fatalf("OsTypeList() returned %d entries, want %d", len(got), len(want))
	}
	for i, os := range got {
		if os.String() != want[i] {
			t.Errorf("OsTypeList()[%d] = %q, want %q", i, os.String(), want[i])
		}
	}
}

func TestOsArchTypeList(t *testing.T) {
	for _, os := range OsTypeList() {
		archs := OsArchTypeList(os)
		if len(archs) != 2 {
			t.Errorf("OsArchTypeList(%s) returned %d entries, want 2", os, len(archs))
		}
	}
}

func TestOsTypeUnmarshalText(t *testing.T) {
	testCases := []struct {
		in      string
		want    OsType
		wantErr bool
	}{
		{"linux", Linux, false},
		{"macos", Darwin, false},
		{"windows", Windows, false},
		{"darwin", NoOsType, true},
		{"android", NoOsType, true},
		{"", NoOsType, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.in, func(t *testing.T) {
			var os OsType
			err := os.UnmarshalText([]byte(testCase.in))
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("UnmarshalText(%q) succeeded, want error", testCase.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %s", testCase.in, err)
			}
			if os != testCase.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", testCase.in, os, testCase.want)
			}
		})
	}
}

func TestArchTypeUnmarshalText(t *testing.T) {
	testCases := []struct {
		in      string
		want    ArchType
		wantErr bool
	}{
		{"arm64", Arm64, false},
		{"x86_64", X86_64, false},
		{"aarch64", ArchType{}, true},
		{"x86", ArchType{}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.in, func(t *testing.T) {
			var arch ArchType
			err := arch.UnmarshalText([]byte(testCase.in))
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("UnmarshalText(%q) succeeded, want error", testCase.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalText(%q) failed: %s", testCase.in, err)
			}
			if arch != testCase.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", testCase.in, arch, testCase.want)
			}
		})
	}
}

func TestMarshalTextRoundTrip(t *testing.T) {
	for _, os := range OsTypeList() {
		text, err := os.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s) failed: %s", os, err)
		}
		var back OsType
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %s", text, err)
		}
		if back != os {
			t.Errorf("round trip of %s returned %s", os, back)
		}
	}
}

func TestTargetString(t *testing.T) {
	target := Target{Os: Linux, Arch: X86_64}
	if got, want := target.String(), "linux_x86_64"; got != want {
		t.Errorf("Target.String() = %q, want %q", got, want)
	}
}

func TestHost(t *testing.T) {
	// The test itself runs on a supported host in CI; Host should resolve a
	// target inside the declared matrix.
	host, err := Host()
	if err != nil {
		t.Fatalf("Host() failed: %s", err)
	}
	found := false
	for _, arch := range OsArchTypeList(host.Os) {
		if arch == host.Arch {
			found = true
		}
	}
	if !found {
		t.Errorf("Host() arch %s not in support matrix for %s", host.Arch, host.Os)
	}
}
