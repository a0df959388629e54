package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	numeral "github.com/goliatone/go-numeral"
	"github.com/goliatone/go-numeral/internal/logging"
)

// app carries state shared by subcommands of one invocation.
type app struct {
	logLevel  string
	logFormat string
	unitFiles []string

	logger *slog.Logger
	units  *numeral.UnitCatalog
}

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "ruwords",
		Short:        "Spell numbers, money and dates in Russian",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format: json or text")
	flags.StringSliceVar(&a.unitFiles, "units", nil, "extra unit catalog files (YAML or JSON)")

	root.AddCommand(
		wordsCmd(a),
		currencyCmd(a),
		pluralCmd(),
		countCmd(a),
		agoCmd(),
		dateCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logging.NewStructuredLogger(cmd.ErrOrStderr(), level, format)
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	units, err := numeral.LoadUnitCatalog(a.unitFiles...)
	if err != nil {
		logging.LogError(a.logger, "load unit catalog", err,
			slog.Any("files", a.unitFiles))
		return err
	}
	a.units = units
	return nil
}

// speller builds a speller over the loaded catalog.
func (a *app) speller(opts ...numeral.Option) (*numeral.Speller, error) {
	return numeral.NewSpeller(append([]numeral.Option{numeral.WithUnitCatalog(a.units)}, opts...)...)
}

// finish logs the outcome of a conversion and prints its result.
func finish(cmd *cobra.Command, input, result string, err error) error {
	logger := logging.FromContext(cmd.Context())
	if err != nil {
		logging.LogError(logger, "conversion failed", err,
			slog.String("command", cmd.Name()),
			slog.String("input", input))
		return err
	}

	logging.LogOperation(logger, cmd.Name(),
		slog.String("input", input),
		slog.String("result", result))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
