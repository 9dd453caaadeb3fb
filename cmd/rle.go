/*
Copyright © 2025 Liys <liys87x@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/life"
	"github.com/telepair/lifesearch/rle"
	"github.com/telepair/lifesearch/rulestring"
)

// rleCmd runs a search headlessly to completion and writes generation 0
// of any Found result out as an RLE document, instead of driving the
// interactive TUI the way searchCmd does.
var rleCmd = &cobra.Command{
	Use:   "rle",
	Short: "Search headlessly and print the first result as RLE",
	Long: `Rle builds the same life.Config as search, but drives the search loop
directly instead of through the interactive TUI, then encodes generation
0 of the first Found result as an RLE document on stdout (or --out).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		InitLog()

		width, _ := cmd.Flags().GetInt32("width")
		height, _ := cmd.Flags().GetInt32("height")
		period, _ := cmd.Flags().GetInt32("period")
		dx, _ := cmd.Flags().GetInt32("dx")
		dy, _ := cmd.Flags().GetInt32("dy")
		ruleStr, _ := cmd.Flags().GetString("rule")
		symStr, _ := cmd.Flags().GetString("symmetry")
		backjump, _ := cmd.Flags().GetBool("backjump")
		maxCellCount, _ := cmd.Flags().GetInt("max-cells")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		outPath, _ := cmd.Flags().GetString("out")

		rule, err := rulestring.Parse(ruleStr)
		if err != nil {
			return fmt.Errorf("parsing rule %q: %w", ruleStr, err)
		}

		config := life.NewConfig(width, height, period, rule)
		config.Dx, config.Dy = dx, dy
		config.Backjump = backjump
		config.RuleString = ruleStr

		if symStr != "" {
			sym, ok := life.ParseSymmetry(symStr)
			if !ok {
				return fmt.Errorf("unrecognized symmetry %q", symStr)
			}
			config.Symmetry = sym
		}

		if maxCellCount > 0 {
			n := maxCellCount
			config.MaxCellCount = &n
		}

		search, err := config.Build()
		if err != nil {
			return fmt.Errorf("building search: %w", err)
		}

		status := search.Search(maxSteps)
		for status == life.StatusSearching {
			status = search.Search(maxSteps)
		}
		if status == life.StatusNone {
			return fmt.Errorf("no pattern exists for this configuration")
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath) //nolint:gosec
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		return rle.Encode(out, search, int(width), int(height))
	},
}

func init() {
	rootCmd.AddCommand(rleCmd)

	rleCmd.Flags().Int32("width", 8, "Bounding box width")
	rleCmd.Flags().Int32("height", 8, "Bounding box height")
	rleCmd.Flags().Int32("period", 1, "Search period")
	rleCmd.Flags().Int32("dx", 0, "Horizontal translation per period (for spaceships)")
	rleCmd.Flags().Int32("dy", 0, "Vertical translation per period (for spaceships)")
	rleCmd.Flags().String("rule", "B3/S23", "Rule string, e.g. B3/S23 or B36/S23/C3")
	rleCmd.Flags().String("symmetry", "", "Symmetry constraint, e.g. D2-, D2|, D4+, C2, C4, D8")
	rleCmd.Flags().Bool("backjump", false, "Use conflict-directed backjumping instead of chronological search (2-state rules only)")
	rleCmd.Flags().Int("max-cells", 0, "Maximum live cell count per generation (0 means unbounded)")
	rleCmd.Flags().Int("max-steps", 1_000_000, "Proceed-plus-retreat iterations per Search call before retrying")
	rleCmd.Flags().String("out", "", "Output file path (default stdout)")
}
