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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/field/bls12_377"
	"github.com/consensys/zirc/pkg/util/field/gf524287"
	"github.com/consensys/zirc/pkg/zir"
	"github.com/consensys/zirc/pkg/zir/analysis"
)

var optimiseCmd = &cobra.Command{
	Use:   "optimise [flags] zir_file",
	Short: "run uint range analysis over a ZIR program.",
	Long: `Run uint range analysis over a given ZIR program, and report (for every
	 definition and return value) the proven bound and whether a reduction into
	 canonical range is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		report := GetFlag(cmd, "report")
		//
		switch name := GetString(cmd, "field"); name {
		case "bls12_377":
			optimiseFile[bls12_377.Element](args[0], report)
		case "gf524287":
			optimiseFile[gf524287.Element](args[0], report)
		default:
			fmt.Printf("unknown field \"%s\"\n", name)
			os.Exit(2)
		}
	},
}

func optimiseFile[F field.Element[F]](filename string, report bool) {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	program, err := zir.ParseProgram[F](string(bytes))
	//
	if err != nil {
		fmt.Printf("%s: %s\n", filename, err)
		os.Exit(2)
	}
	//
	log.Debugf("optimising %d function(s) over a %d bit field", len(program.Functions), field.RequiredBits[F]())
	//
	program = analysis.Optimise(program)
	//
	fmt.Print(program.String())
	//
	if report {
		printReport(program)
	}
}

// Print one line per analysed uint expression bound to a definition or
// crossing a return boundary, showing its proven bound and whether the
// flattening stage must insert a reduction.
func printReport[F field.Element[F]](program zir.Program[F]) {
	width := terminalWidth()
	//
	for _, fn := range program.Functions {
		for _, stmt := range fn.Statements {
			switch s := stmt.(type) {
			case *zir.Definition[F]:
				if e, ok := s.Rhs.(*zir.UintExpr[F]); ok {
					printBound(width, fmt.Sprintf("%s.%s", fn.Name, s.Assignee.Name), e)
				}
			case *zir.Return[F]:
				for i, value := range s.Values {
					if e, ok := value.(*zir.UintExpr[F]); ok {
						printBound(width, fmt.Sprintf("%s.return#%d", fn.Name, i), e)
					}
				}
			}
		}
	}
}

func printBound[F field.Element[F]](width int, name string, e *zir.UintExpr[F]) {
	line := fmt.Sprintf("%s: u%d bound=%d reduce=%t as %s", name, e.Width,
		e.Metadata.Bitwidth, e.Metadata.ShouldReduce, e.String())
	// Clip to terminal width
	if len(line) > width {
		line = line[:width]
	}
	//
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(optimiseCmd)
	optimiseCmd.Flags().Bool("report", false, "print per-definition bound report")
}
