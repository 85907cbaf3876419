package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonathan/resume-ranker/internal/types"
)

var csvHeader = []string{"rank", "name", "resume_path", "alignment_score", "keyword_coverage"}

// WriteRankingCSVTo streams the candidate table to w in rank order. The name
// column stays empty when candidate names could not be extracted.
func WriteRankingCSVTo(w io.Writer, result *types.RankingResult) error {
	if result == nil {
		return fmt.Errorf("nil ranking result")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, c := range result.Candidates {
		row := []string{
			strconv.Itoa(c.Rank),
			c.Name,
			c.ResumePath,
			strconv.FormatFloat(c.AlignmentScore, 'f', -1, 64),
			strconv.FormatFloat(c.KeywordCoverage, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", c.ResumePath, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRankingCSV writes the candidate table to path.
func WriteRankingCSV(path string, result *types.RankingResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteRankingCSVTo(f, result); err != nil {
		return err
	}
	return f.Close()
}
