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

// Package platform defines the operating system and CPU architecture tags
// used to key toolchain configuration. The tag sets are closed: an OS or
// architecture outside the registered lists is a configuration error, never
// a fallback.
package platform

import (
	"encoding"
	"fmt"
	"runtime"
)

// ArchType is one of the supported CPU architecture types (arm64 or x86_64).
type ArchType struct {
	// Name is the name of the architecture type, "arm64" or "x86_64".
	Name string

	// Multilib is either "lib32" or "lib64" for 32-bit or 64-bit architectures.
	Multilib string
}

// String returns the name of the ArchType.
func (a ArchType) String() string {
	return a.Name
}

var (
	archTypeList []ArchType

	Arm64  = newArch("arm64", "lib64")
	X86_64 = newArch("x86_64", "lib64")
)

var archTypeMap = map[string]ArchType{}

func newArch(name, multilib string) ArchType {
	archType := ArchType{
		Name:     name,
		Multilib: multilib,
	}
	archTypeList = append(archTypeList, archType)
	archTypeMap[name] = archType
	return archType
}

// ArchTypeList returns a slice copy of the supported ArchTypes.
func ArchTypeList() []ArchType {
	return append([]ArchType(nil), archTypeList...)
}

// MarshalText allows an ArchType to be serialized through any encoder that
// supports encoding.TextMarshaler.
func (a ArchType) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

var _ encoding.TextMarshaler = ArchType{}

// UnmarshalText allows an ArchType to be deserialized through any decoder
// that supports encoding.TextUnmarshaler.
func (a *ArchType) UnmarshalText(text []byte) error {
	if u, ok := archTypeMap[string(text)]; ok {
		*a = u
		return nil
	}

	return fmt.Errorf("unknown ArchType %q", text)
}

var _ encoding.TextUnmarshaler = &ArchType{}

// OsType is one of the supported operating systems (linux, macos or windows).
type OsType struct {
	// Name is the name of the OS. It is also the tag used to refer to the OS
	// in toolchain declarations.
	Name string
}

// String returns the name of the OsType.
func (os OsType) String() string {
	return os.Name
}

// newOsType constructs an OsType and adds it to the global lists.
func newOsType(name string, archTypes ...ArchType) OsType {
	os := OsType{
		Name: name,
	}
	if _, found := osTypeMap[name]; found {
		panic(fmt.Errorf("duplicate OsType registration: %q", name))
	}
	osTypeList = append(osTypeList, os)
	osTypeMap[name] = os
	osArchTypeMap[os] = archTypes

	return os
}

var (
	// osTypeList contains all the supported OsTypes.
	osTypeList []OsType
	osTypeMap  = map[string]OsType{}
	// osArchTypeMap maps OsTypes to the list of supported ArchTypes for that OS.
	osArchTypeMap = map[OsType][]ArchType{}

	// NoOsType is a placeholder for when no OS is needed.
	NoOsType OsType

	// Linux is the OS for Linux host machines.
	Linux = newOsType("linux", Arm64, X86_64)
	// Darwin is the OS for MacOS/Darwin host machines.
	Darwin = newOsType("macos", Arm64, X86_64)
	// Windows is the OS for Windows host machines.
	Windows = newOsType("windows", Arm64, X86_64)
)

// OsTypeList returns a slice copy of the supported OsTypes.
func OsTypeList() []OsType {
	return append([]OsType(nil), osTypeList...)
}

// OsArchTypeList returns a slice copy of the ArchTypes supported for os.
func OsArchTypeList(os OsType) []ArchType {
	return append([]ArchType(nil), osArchTypeMap[os]...)
}

// MarshalText allows an OsType to be serialized through any encoder that
// supports encoding.TextMarshaler.
func (os OsType) MarshalText() ([]byte, error) {
	return []byte(os.String()), nil
}

var _ encoding.TextMarshaler = OsType{}

// UnmarshalText allows an OsType to be deserialized through any decoder that
// supports encoding.TextUnmarshaler.
func (os *OsType) UnmarshalText(text []byte) error {
	if u, ok := osTypeMap[string(text)]; ok {
		*os = u
		return nil
	}

	return fmt.Errorf("unknown OsType %q", text)
}

var _ encoding.TextUnmarshaler = &OsType{}

// Target specifies the OS and architecture that a toolchain is configured
// for.
type Target struct {
	// Os is the OS the toolchain runs on.
	Os OsType

	// Arch is the architecture the toolchain runs on.
	Arch ArchType
}

// String returns the Target as a string, e.g. "linux_x86_64". The value is
// used to key per-target configuration.
func (t Target) String() string {
	return t.Os.String() + "_" + t.Arch.String()
}

var goosOsTypeMap = map[string]OsType{
	"linux":   Linux,
	"darwin":  Darwin,
	"windows": Windows,
}

var goarchArchTypeMap = map[string]ArchType{
	"arm64": Arm64,
	"amd64": X86_64,
}

// Host returns the Target of the build environment this process is running
// in. A host outside the supported matrix is a configuration error, not a
// fallback.
func Host() (Target, error) {
	os, ok := goosOsTypeMap[runtime.GOOS]
	if !ok {
		return Target{}, fmt.Errorf("unsupported host OS %q", runtime.GOOS)
	}
	arch, ok := goarchArchTypeMap[runtime.GOARCH]
	if !ok {
		return Target{}, fmt.Errorf("unsupported host architecture %q", runtime.GOARCH)
	}
	return Target{Os: os, Arch: arch}, nil
}
