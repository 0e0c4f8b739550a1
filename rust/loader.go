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

package rust

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// declaration is the on-disk shape of a toolchain declaration file: a single
// [toolchain] table holding the attribute schema.
type declaration struct {
	Toolchain Properties `toml:"toolchain"`
}

// LoadProperties reads a toolchain declaration from a TOML file. Keys
// outside the attribute schema are configuration errors, matching the shape
// checking a host attribute system performs on registration inputs.
func LoadProperties(path string) (Properties, error) {
	var decl declaration
	meta, err := toml.DecodeFile(path, &decl)
	if err != nil {
		return Properties{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := checkDecl(path, meta); err != nil {
		return Properties{}, err
	}
	return decl.Toolchain, nil
}

// LoadPropertiesData parses a toolchain declaration from in-memory TOML
// text.
func LoadPropertiesData(data string) (Properties, error) {
	var decl declaration
	meta, err := toml.Decode(data, &decl)
	if err != nil {
		return Properties{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := checkDecl("toolchain declaration", meta); err != nil {
		return Properties{}, err
	}
	return decl.Toolchain, nil
}

func checkDecl(name string, meta toml.MetaData) error {
	if !meta.IsDefined("toolchain") {
		return fmt.Errorf("%s: missing [toolchain]", name)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("%s: unknown attributes: %s", name, strings.Join(keys, ", "))
	}
	return nil
}
