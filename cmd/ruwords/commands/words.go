package commands

import (
	"strings"

	"github.com/govalues/decimal"
	"github.com/spf13/cobra"

	numeral "github.com/goliatone/go-numeral"
)

func wordsCmd(a *app) *cobra.Command {
	var (
		gender string
		signs  int
	)

	cmd := &cobra.Command{
		Use:     "words <number>",
		Short:   "Spell an integer or decimal number",
		Example: "  ruwords words 21\n  ruwords words 2,05\n  ruwords words --gender f 1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []numeral.Option
			if signs > 0 {
				opts = append(opts, numeral.WithMaxSigns(signs))
			}
			speller, err := a.speller(opts...)
			if err != nil {
				return err
			}

			result, err := spellWords(speller, args[0], gender)
			return finish(cmd, args[0], result, err)
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", "", "grammatical gender: m, f or n (default m for integers, f for decimals)")
	cmd.Flags().IntVar(&signs, "signs", 0, "maximum fractional digits to name (1..9)")
	return cmd
}

func spellWords(speller *numeral.Speller, raw, gender string) (string, error) {
	amount, err := numeral.ParseAmount(raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(gender) == "" {
		return speller.Number(amount)
	}
	g, err := numeral.ParseGender(gender)
	if err != nil {
		return "", err
	}
	return speller.Number(amount, g)
}

func currencyCmd(a *app) *cobra.Command {
	var (
		code      string
		zeroMinor bool
	)

	cmd := &cobra.Command{
		Use:     "currency <amount>",
		Short:   "Spell a money amount",
		Example: "  ruwords currency 3.10\n  ruwords currency --code USD 12.5\n  ruwords currency --zero-minor 5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []numeral.Option{numeral.WithCurrency(code)}
			if zeroMinor {
				opts = append(opts, numeral.WithZeroMinorUnit())
			}
			speller, err := a.speller(opts...)
			if err != nil {
				return err
			}

			result, err := spellCurrency(speller, args[0])
			return finish(cmd, args[0], result, err)
		},
	}

	cmd.Flags().StringVarP(&code, "code", "c", "RUB", "ISO 4217 currency code from the unit catalog")
	cmd.Flags().BoolVar(&zeroMinor, "zero-minor", false, "spell a zero minor unit (\"ноль копеек\")")
	return cmd
}

func spellCurrency(speller *numeral.Speller, raw string) (string, error) {
	d, err := decimal.Parse(strings.Replace(strings.TrimSpace(raw), ",", ".", 1))
	if err != nil {
		return "", err
	}
	return speller.Currency(d)
}
