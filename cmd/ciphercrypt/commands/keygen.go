package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ciphercrypt/internal/alphabet"
	"ciphercrypt/internal/keygen"
)

var (
	keygenPassphrase string
	keygenSalt       string
	keygenSize       int

	keyedKeyword string
)

// keygen -p <passphrase> --salt <salt>: print a derived Hill key matrix,
// one comma-joined row per line, ready for `hill --key`.
func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a Hill key matrix from a passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := keygen.DeriveMatrix(keygenPassphrase, []byte(keygenSalt), keygenSize)
			if err != nil {
				return err
			}
			for _, row := range rows {
				cells := make([]string, len(row))
				for i, v := range row {
					cells[i] = strconv.Itoa(v)
				}
				fmt.Println(strings.Join(cells, ","))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keygenPassphrase, "passphrase", "p", "", "passphrase to derive the key from")
	cmd.Flags().StringVar(&keygenSalt, "salt", "", "public salt; reuse it to re-derive the same key")
	cmd.Flags().IntVar(&keygenSize, "size", 3, "matrix dimension n")
	_ = cmd.MarkFlagRequired("passphrase")
	_ = cmd.MarkFlagRequired("salt")
	return cmd
}

// alphabet --keyword <word>: print the keyed alphabet for the keyword.
func alphabetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Print a keyed (scrambled) alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyed, err := keygen.KeyedAlphabet(keyedKeyword, alphabet.Upper)
			if err != nil {
				return err
			}
			fmt.Println(keyed)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyedKeyword, "keyword", "", "keyword whose letters lead the alphabet")
	_ = cmd.MarkFlagRequired("keyword")
	return cmd
}
