package automatic

import (
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Summarize renders aggregate statistics for a batch of self-play games:
// totals, mean and standard deviation of pieces and lines, and a histogram
// of lines per game.
func Summarize(results []GameResult) string {
	if len(results) == 0 {
		return "no games played\n"
	}
	pieces := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Pieces) })
	lines := lo.Map(results, func(r GameResult, _ int) float64 { return float64(r.Lines) })
	totalLines := lo.SumBy(results, func(r GameResult) int { return r.Lines })

	var sb strings.Builder
	fmt.Fprintf(&sb, "games: %d\n", len(results))
	fmt.Fprintf(&sb, "total lines: %d\n", totalLines)
	fmt.Fprintf(&sb, "pieces/game: %.1f ± %.1f\n",
		stat.Mean(pieces, nil), stat.StdDev(pieces, nil))
	fmt.Fprintf(&sb, "lines/game:  %.1f ± %.1f\n",
		stat.Mean(lines, nil), stat.StdDev(lines, nil))

	hist := histogram.Hist(10, lines)
	if err := histogram.Fprint(&sb, hist, histogram.Linear(40)); err != nil {
		fmt.Fprintf(&sb, "histogram error: %v\n", err)
	}
	return sb.String()
}
