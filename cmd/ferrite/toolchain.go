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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ferrite/platform"
	"ferrite/rust"
	"ferrite/rust/config"
)

var declFile string

var toolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Inspect Rust toolchain configuration",
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Evaluate a toolchain declaration and print its provider payloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		var props rust.Properties
		if declFile != "" {
			logger.Debug("loading toolchain declaration", zap.String("file", declFile))
			loaded, err := rust.LoadProperties(declFile)
			if err != nil {
				return err
			}
			props = loaded
		}

		registration, err := rust.Register(props)
		if err != nil {
			return err
		}
		logger.Debug("registered toolchain",
			zap.String("triple", registration.Toolchain.RustTriple),
			zap.String("arch", registration.Platform.ArchName))

		out, err := json.MarshalIndent(registration, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var triplesCmd = &cobra.Command{
	Use:   "triples",
	Short: "Print the supported (OS, architecture) pairs and their target triples",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, os := range platform.OsTypeList() {
			for _, arch := range platform.OsArchTypeList(os) {
				triple, err := config.RustTripleFor(os, arch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", os.String()+"/"+arch.String(), triple)
			}
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&declFile, "file", "f", "", "toolchain declaration file (TOML)")
	toolchainCmd.AddCommand(resolveCmd)
	toolchainCmd.AddCommand(triplesCmd)
}
