package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ciphercrypt/internal/hill"
)

var (
	hillKey     string
	hillKeyword string
	hillPad     string
)

// hill --key 3,3,2,5 <message>: block encryption with an invertible matrix.
func hillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hill <message>",
		Short: "Hill polygraphic matrix cipher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := hill.KeyConfig{Keyword: hillKeyword}
			if hillKey != "" {
				rows, err := parseMatrix(hillKey)
				if err != nil {
					return err
				}
				cfg.Matrix = rows
			}
			if hillPad != "" {
				runes := []rune(hillPad)
				if len(runes) != 1 {
					return fmt.Errorf("pad must be a single symbol, got %q", hillPad)
				}
				cfg.Padding = runes[0]
			}
			h, err := hill.New(cfg)
			if err != nil {
				return err
			}
			return run(h, args[0])
		},
	}
	cmd.Flags().StringVar(&hillKey, "key", "", "key matrix as comma-separated residues, row-major (e.g. 3,3,2,5)")
	cmd.Flags().StringVar(&hillKeyword, "keyword", "", "derive the key matrix from a keyword of square length (e.g. GYBNQKURP)")
	cmd.Flags().StringVar(&hillPad, "pad", "", "padding symbol for a short final block (default X)")
	return cmd
}

// parseMatrix turns "3,3,2,5" into [][]int{{3,3},{2,5}}. The count of
// values must be a perfect square.
func parseMatrix(s string) ([][]int, error) {
	fields := strings.Split(s, ",")
	cells := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("key entry %q is not an integer", f)
		}
		cells[i] = v
	}
	n := 1
	for n*n < len(cells) {
		n++
	}
	if n*n != len(cells) {
		return nil, fmt.Errorf("key lists %d residues, need a square count (4, 9, 16, ...)", len(cells))
	}
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = cells[i*n : (i+1)*n]
	}
	return rows, nil
}
