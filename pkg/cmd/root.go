// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zirc",
	Short: "A toolbox for the ZIR circuit representation.",
	Long:  "A toolbox for optimising and inspecting programs in the ZIR circuit representation.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("zirc %s\n", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Println("zirc (unknown version)")
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(), and only needs to happen
// once.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("field", "f", "bls12_377", "set the underlying prime field")
}
