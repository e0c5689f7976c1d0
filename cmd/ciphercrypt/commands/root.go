package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciphercrypt/internal/cipher"
)

var decrypt bool

func Execute() error {
	root := &cobra.Command{
		Use:   "ciphercrypt",
		Short: "Classical cipher toolkit",
		Long: "A tomb of ciphers forgotten by time. Every algorithm here is\n" +
			"trivially breakable; use them to learn, not to hide.",
	}

	root.PersistentFlags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")

	root.AddCommand(
		hillCmd(), caesarCmd(), rot13Cmd(), affineCmd(),
		vigenereCmd(), railfenceCmd(), keygenCmd(), alphabetCmd(),
	)
	return root.Execute()
}

// run applies c to message in the direction selected by --decrypt and
// prints the result.
func run(c cipher.Cipher, message string) error {
	var (
		out string
		err error
	)
	if decrypt {
		out, err = c.Decrypt(message)
	} else {
		out, err = c.Encrypt(message)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
