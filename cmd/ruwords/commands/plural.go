package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	numeral "github.com/goliatone/go-numeral"
)

func pluralCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "plural <count> <one> <few> <many>",
		Short:   "Pick the noun form agreeing with a count",
		Example: "  ruwords plural 22 яблоко яблока яблок",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return finish(cmd, args[0], "", err)
			}
			forms := numeral.FormSet{args[1], args[2], args[3]}
			return finish(cmd, args[0], numeral.ChoosePlural(count, forms), nil)
		},
	}
}

func countCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "count <count> <unit>",
		Short:   "Spell a count followed by a unit from the catalog",
		Example: "  ruwords count 5 day\n  ruwords --units extra.yaml count 3 apple",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[0])
			if err != nil {
				return finish(cmd, args[0], "", err)
			}
			speller, err := a.speller()
			if err != nil {
				return err
			}
			result, err := speller.Count(count, args[1])
			return finish(cmd, args[0], result, err)
		},
	}
}

func parseCount(raw string) (uint64, error) {
	count, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: count %q must be a non-negative integer", numeral.ErrInvalidArgument, raw)
	}
	return count, nil
}
