package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	numeral "github.com/goliatone/go-numeral"
	"github.com/goliatone/go-numeral/dt"
)

func agoCmd() *cobra.Command {
	var (
		accuracy int
		to       string
	)

	cmd := &cobra.Command{
		Use:   "ago <time|duration>",
		Short: "Describe the distance between a moment and now",
		Long: "Accepts an RFC 3339 timestamp or a Go duration. A positive duration\n" +
			"points to the past, a negative one to the future.",
		Example: "  ruwords ago 26h\n  ruwords ago --accuracy 2 -- -90m\n  ruwords ago 2026-10-12T08:00:00Z --to 2026-10-14T12:00:00Z",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := time.Now()
			if to != "" {
				parsed, err := time.Parse(time.RFC3339, to)
				if err != nil {
					return finish(cmd, to, "", fmt.Errorf("%w: --to %q is not RFC 3339", numeral.ErrInvalidArgument, to))
				}
				reference = parsed
			}

			from, err := parseMoment(args[0], reference)
			if err != nil {
				return finish(cmd, args[0], "", err)
			}

			var result string
			if to == "" {
				result, err = dt.DistanceFromNow(from, accuracy)
			} else {
				result, err = dt.DistanceOfTimeInWords(from, reference, accuracy)
			}
			return finish(cmd, args[0], result, err)
		},
	}

	cmd.Flags().IntVarP(&accuracy, "accuracy", "a", 1, "number of units to show (days, hours, minutes)")
	cmd.Flags().StringVar(&to, "to", "", "RFC 3339 reference time (default now)")
	return cmd
}

// parseMoment reads an RFC 3339 timestamp or a duration before reference.
func parseMoment(raw string, reference time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither RFC 3339 nor a duration", numeral.ErrInvalidArgument, raw)
	}
	return reference.Add(-d), nil
}

func dateCmd() *cobra.Command {
	var (
		format    string
		inflected bool
	)

	cmd := &cobra.Command{
		Use:     "date [time]",
		Short:   "Format a date with Russian names",
		Example: "  ruwords date --format '%A, %d %B %Y' --inflected 2026-10-14T09:00:00Z",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moment := time.Now()
			input := ""
			if len(args) == 1 {
				input = args[0]
				parsed, err := time.Parse(time.RFC3339, input)
				if err != nil {
					return finish(cmd, input, "", fmt.Errorf("%w: %q is not RFC 3339", numeral.ErrInvalidArgument, input))
				}
				moment = parsed
			}
			return finish(cmd, input, dt.Strftime(format, moment, inflected), nil)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", dt.DefaultFormat, "strftime style format")
	cmd.Flags().BoolVarP(&inflected, "inflected", "i", false, "use genitive month names for %B")
	return cmd
}
