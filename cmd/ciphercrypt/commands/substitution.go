package commands

import (
	"github.com/spf13/cobra"

	"ciphercrypt/internal/affine"
	"ciphercrypt/internal/caesar"
	"ciphercrypt/internal/rot13"
	"ciphercrypt/internal/vigenere"
)

var (
	caesarShift int
	affineA     int
	affineB     int
	vigenereKey string
)

// caesar --shift 3 <message>
func caesarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caesar <message>",
		Short: "Caesar shift cipher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := caesar.New(caesarShift)
			if err != nil {
				return err
			}
			return run(c, args[0])
		},
	}
	cmd.Flags().IntVar(&caesarShift, "shift", 3, "shift factor in 1-26")
	return cmd
}

// rot13 <message>: same operation both ways.
func rot13Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rot13 <message>",
		Short: "ROT13 (self-inverse)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(rot13.New(), args[0])
		},
	}
}

// affine -a 3 -b 7 <message>
func affineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affine <message>",
		Short: "Affine cipher (a*x + b mod 26)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := affine.New(affineA, affineB)
			if err != nil {
				return err
			}
			return run(a, args[0])
		},
	}
	cmd.Flags().IntVarP(&affineA, "key-a", "a", 3, "multiplier, must be coprime with 26")
	cmd.Flags().IntVarP(&affineB, "key-b", "b", 7, "offset in 1-26")
	return cmd
}

// vigenere --key CRYPT <message>
func vigenereCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vigenere <message>",
		Short: "Vigenère running-key cipher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vigenere.New(vigenereKey)
			if err != nil {
				return err
			}
			return run(v, args[0])
		},
	}
	cmd.Flags().StringVar(&vigenereKey, "key", "", "alphabetic keyword")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
