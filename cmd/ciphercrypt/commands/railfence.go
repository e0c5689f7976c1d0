package commands

import (
	"github.com/spf13/cobra"

	"ciphercrypt/internal/railfence"
)

var railCount int

// railfence --rails 3 <message>
func railfenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "railfence <message>",
		Short: "Rail-fence transposition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := railfence.New(railCount)
			if err != nil {
				return err
			}
			return run(r, args[0])
		},
	}
	cmd.Flags().IntVar(&railCount, "rails", 3, "number of rails, at least 2")
	return cmd
}
