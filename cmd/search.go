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
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/engine/search"
	"github.com/telepair/lifesearch/life"
	"github.com/telepair/lifesearch/pkg/ui"
	"github.com/telepair/lifesearch/rle"
	"github.com/telepair/lifesearch/rulestring"
)

// searchCmd represents the pattern search command.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for a still life, oscillator, or spaceship",
	Long: `Search builds a life.Config from the given bounding box, period,
translation, symmetry, and rule, then runs the constraint-propagation
search interactively, rendering every phase of the current assignment
as it proceeds.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		InitLog()
		ctx := context.Background()
		InitProfile(ctx)

		width, _ := cmd.Flags().GetInt32("width")
		height, _ := cmd.Flags().GetInt32("height")
		period, _ := cmd.Flags().GetInt32("period")
		dx, _ := cmd.Flags().GetInt32("dx")
		dy, _ := cmd.Flags().GetInt32("dy")
		ruleStr, _ := cmd.Flags().GetString("rule")
		symStr, _ := cmd.Flags().GetString("symmetry")
		backjump, _ := cmd.Flags().GetBool("backjump")
		knownCellsPath, _ := cmd.Flags().GetString("known-cells")
		maxCellCount, _ := cmd.Flags().GetInt("max-cells")

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

		if knownCellsPath != "" {
			f, err := os.Open(knownCellsPath) //nolint:gosec
			if err != nil {
				return fmt.Errorf("opening known-cells file: %w", err)
			}
			defer f.Close()
			cells, err := rle.DecodePlaintext(f)
			if err != nil {
				return fmt.Errorf("decoding known-cells file: %w", err)
			}
			config.KnownCells = cells
		}

		built, err := config.Build()
		if err != nil {
			return fmt.Errorf("building search: %w", err)
		}

		engine := search.New(built, width, height, period, search.Config{})
		if err := ui.RunModel("Life Pattern Search", engine, lang, refreshInterval); err != nil {
			slog.Error("Failed to run search", "error", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().Int32("width", 8, "Bounding box width")
	searchCmd.Flags().Int32("height", 8, "Bounding box height")
	searchCmd.Flags().Int32("period", 1, "Search period")
	searchCmd.Flags().Int32("dx", 0, "Horizontal translation per period (for spaceships)")
	searchCmd.Flags().Int32("dy", 0, "Vertical translation per period (for spaceships)")
	searchCmd.Flags().String("rule", "B3/S23", "Rule string, e.g. B3/S23 or B36/S23/C3")
	searchCmd.Flags().String("symmetry", "", "Symmetry constraint, e.g. D2-, D2|, D4+, C2, C4, D8")
	searchCmd.Flags().Bool("backjump", false, "Use conflict-directed backjumping instead of chronological search (2-state rules only)")
	searchCmd.Flags().String("known-cells", "", "Path to a Plaintext (.cells) file seeding known cell states")
	searchCmd.Flags().Int("max-cells", 0, "Maximum live cell count per generation (0 means unbounded)")
}
