// Package search adapts a life.Search into pkg/ui's StepEngine so the
// constraint-propagation search can be driven interactively from the
// terminal, one proceed/decide/retreat batch per tick. Grounded on
// engine/gameoflife's ConwayGameOfLife, whose Step/View/Status/Handle
// shape this package keeps; what changes is WHAT gets stepped and
// rendered, not how the StepEngine contract is fulfilled.
package search

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/telepair/lifesearch/life"
	"github.com/telepair/lifesearch/pkg/ui"
)

var _ ui.StepEngine = (*SearchEngine)(nil)

var (
	// HeaderEN is the English header text.
	HeaderEN = "🔎 Life Pattern Search 🔎"
	// HeaderCN is the Chinese header text.
	HeaderCN = "🔎 生命模式搜索 🔎"

	// DefaultAliveColor is the default alive cell color.
	DefaultAliveColor = lipgloss.Color("#00FF00")
	// DefaultDeadColor is the default dead cell color.
	DefaultDeadColor = lipgloss.Color("#000000")
	// DefaultUnknownColor is the default unknown cell color.
	DefaultUnknownColor = lipgloss.Color("#555555")

	// DefaultAliveChar marks a live cell.
	DefaultAliveChar = '█'
	// DefaultDeadChar marks a dead cell.
	DefaultDeadChar = '·'
	// DefaultUnknownChar marks a cell search has not yet decided.
	DefaultUnknownChar = ' '
)

// Config holds the rendering configuration for a SearchEngine.
type Config struct {
	AliveColor, DeadColor, UnknownColor string
	AliveChar, DeadChar, UnknownChar    string
	// StepsPerTick bounds how much search work one Step() call does,
	// so the UI stays responsive on large or hard instances.
	StepsPerTick int
}

// DefaultStepsPerTick keeps a single UI tick well under a frame's
// worth of wall-clock time even on a slow terminal.
const DefaultStepsPerTick = 2000

// SearchEngine drives a life.Search and renders every phase of its
// current (possibly partial) assignment side by side.
type SearchEngine struct {
	search life.Search
	cfg    Config

	screen *ui.Screen
	status life.Status

	width, height, period int32
}

// New wraps search for interactive stepping. width/height/period come
// from the life.Config that built search, since life.Search exposes
// cell state by coordinate but not its own bounding box directly.
func New(s life.Search, width, height, period int32, cfg Config) *SearchEngine {
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = DefaultStepsPerTick
	}
	e := &SearchEngine{
		search: s,
		cfg:    cfg,
		width:  width,
		height: height,
		period: period,
		status: life.StatusSearching,
	}
	e.initScreen()
	e.render()
	return e
}

func (e *SearchEngine) initScreen() {
	cols := int(e.period)*int(e.width) + int(e.period) - 1
	e.screen = ui.NewScreen(int(e.height), cols)

	aliveChar := []rune(orDefault(e.cfg.AliveChar, string(DefaultAliveChar)))[0]
	deadChar := []rune(orDefault(e.cfg.DeadChar, string(DefaultDeadChar)))[0]
	unknownChar := []rune(orDefault(e.cfg.UnknownChar, string(DefaultUnknownChar)))[0]

	e.screen.SetCharColor(aliveChar, lipgloss.Color(orDefault(e.cfg.AliveColor, string(DefaultAliveColor))))
	e.screen.SetCharColor(deadChar, lipgloss.Color(orDefault(e.cfg.DeadColor, string(DefaultDeadColor))))
	e.screen.SetCharColor(unknownChar, lipgloss.Color(orDefault(e.cfg.UnknownColor, string(DefaultUnknownColor))))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// View returns the current rendering.
func (e *SearchEngine) View() string {
	return e.screen.View()
}

// Step advances the search by cfg.StepsPerTick proceed/decide/retreat
// iterations. The returned int is the running conflict count (there
// is no notion of "generation" for a search that may backtrack), and
// the bool reports whether the search is still live.
func (e *SearchEngine) Step() (int, bool) {
	if e.status != life.StatusSearching {
		return int(e.search.Conflicts()), false
	}
	e.status = e.search.Search(e.cfg.StepsPerTick)
	e.render()
	return int(e.search.Conflicts()), e.status == life.StatusSearching
}

// Header returns the title text.
func (e *SearchEngine) Header(lang ui.Language) string {
	if lang == ui.Chinese {
		return HeaderCN
	}
	return HeaderEN
}

// Status reports conflict count, found cell population, and search status.
func (e *SearchEngine) Status(lang ui.Language) []ui.Status {
	statusStr := e.statusString(lang)
	if lang == ui.Chinese {
		return []ui.Status{
			{Label: "状态", Value: statusStr},
			{Label: "冲突", Value: strconv.FormatInt(e.search.Conflicts(), 10)},
			{Label: "细胞数", Value: strconv.Itoa(int(e.search.CellCount()))},
		}
	}
	return []ui.Status{
		{Label: "Status", Value: statusStr},
		{Label: "Conflicts", Value: strconv.FormatInt(e.search.Conflicts(), 10)},
		{Label: "Cells", Value: strconv.Itoa(int(e.search.CellCount()))},
	}
}

func (e *SearchEngine) statusString(lang ui.Language) string {
	switch e.status {
	case life.StatusFound:
		if lang == ui.Chinese {
			return "已找到"
		}
		return "Found"
	case life.StatusNone:
		if lang == ui.Chinese {
			return "无解"
		}
		return "Exhausted"
	default:
		if lang == ui.Chinese {
			return "搜索中"
		}
		return "Searching"
	}
}

// HandleKeys reports no engine-specific keys beyond the common controls.
func (e *SearchEngine) HandleKeys(ui.Language) []ui.Control { return nil }

// Handle never claims a key; there is nothing search-specific to toggle.
func (e *SearchEngine) Handle(string) (bool, error) { return false, nil }

// Reset is a no-op: the search's bounding box, period, and rule are
// fixed by the life.Config that built it, not by terminal size.
func (e *SearchEngine) Reset(int, int) error { return nil }

// IsFinished reports whether the search has concluded (found a result
// or exhausted the search space).
func (e *SearchEngine) IsFinished() bool { return e.status != life.StatusSearching }

// Stop does nothing: the search runs synchronously within Step, there
// is no background goroutine to cancel.
func (e *SearchEngine) Stop() {}

// render paints every phase 0..period-1 into one shared screen, phases
// separated by a blank column.
func (e *SearchEngine) render() {
	e.screen.Reset()
	row := make([]rune, int(e.period)*int(e.width)+int(e.period)-1)

	aliveChar := []rune(orDefault(e.cfg.AliveChar, string(DefaultAliveChar)))[0]
	deadChar := []rune(orDefault(e.cfg.DeadChar, string(DefaultDeadChar)))[0]
	unknownChar := []rune(orDefault(e.cfg.UnknownChar, string(DefaultUnknownChar)))[0]

	for y := int32(0); y < e.height; y++ {
		col := 0
		for t := int32(0); t < e.period; t++ {
			if t > 0 {
				row[col] = ' '
				col++
			}
			for x := int32(0); x < e.width; x++ {
				state, known := e.search.GetCellState(life.Coord{X: x, Y: y, T: t})
				switch {
				case !known || state == life.UnknownState:
					row[col] = unknownChar
				case state == life.ALIVE:
					row[col] = aliveChar
				default:
					row[col] = deadChar
				}
				col++
			}
		}
		e.screen.Append(row)
	}
}
