package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	numeral "github.com/goliatone/go-numeral"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestWordsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"integer", []string{"words", "21"}, "двадцать один\n"},
		{"decimal comma", []string{"words", "2,05"}, "две целых пять сотых\n"},
		{"feminine", []string{"words", "--gender", "f", "1"}, "одна\n"},
		{"neuter", []string{"words", "-g", "n", "2"}, "два\n"},
		{"thousands", []string{"words", "1000"}, "одна тысяча\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWordsCommandErrors(t *testing.T) {
	_, _, err := run(t, "words", "--signs", "2", "0.998")
	require.ErrorIs(t, err, numeral.ErrRoundingOverflow)

	_, _, err = run(t, "words", "-5")
	require.Error(t, err)

	_, _, err = run(t, "words", "--gender", "x", "5")
	require.ErrorIs(t, err, numeral.ErrInvalidArgument)

	_, _, err = run(t, "words", "--signs", "12", "5")
	require.ErrorIs(t, err, numeral.ErrUnsupportedPrecision)
}

func TestCurrencyCommand(t *testing.T) {
	out, _, err := run(t, "currency", "3.10")
	require.NoError(t, err)
	assert.Equal(t, "три рубля десять копеек\n", out)

	out, _, err = run(t, "currency", "--zero-minor", "5")
	require.NoError(t, err)
	assert.Equal(t, "пять рублей ноль копеек\n", out)

	out, _, err = run(t, "currency", "--code", "usd", "12.5")
	require.NoError(t, err)
	assert.Equal(t, "двенадцать долларов пятьдесят центов\n", out)

	_, _, err = run(t, "currency", "--code", "XXX", "1")
	require.ErrorIs(t, err, numeral.ErrUnknownCurrency)
}

func TestPluralAndCountCommands(t *testing.T) {
	out, _, err := run(t, "plural", "22", "яблоко", "яблока", "яблок")
	require.NoError(t, err)
	assert.Equal(t, "яблока\n", out)

	out, _, err = run(t, "count", "5", "day")
	require.NoError(t, err)
	assert.Equal(t, "пять дней\n", out)

	out, _, err = run(t, "--units", "../../../testdata/units_extra.yaml", "count", "1", "apple")
	require.NoError(t, err)
	assert.Equal(t, "одно яблоко\n", out)

	_, _, err = run(t, "count", "3", "parsec")
	require.ErrorIs(t, err, numeral.ErrUnknownUnit)

	_, _, err = run(t, "plural", "many", "a", "b", "c")
	require.ErrorIs(t, err, numeral.ErrInvalidArgument)
}

func TestAgoCommand(t *testing.T) {
	const to = "2026-10-14T12:00:00Z"

	out, _, err := run(t, "ago", "--accuracy", "2", "--to", to, "2026-10-12T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2 дня 4 часа назад\n", out)

	out, _, err = run(t, "ago", "-a", "2", "--to", to, "90m")
	require.NoError(t, err)
	assert.Equal(t, "1 час 30 минут назад\n", out)

	out, _, err = run(t, "ago", "--to", to, "--", "-26h")
	require.NoError(t, err)
	assert.Equal(t, "через 1 день\n", out)

	_, _, err = run(t, "ago", "yesterday")
	require.ErrorIs(t, err, numeral.ErrInvalidArgument)
}

func TestDateCommand(t *testing.T) {
	out, _, err := run(t, "date", "--format", "%A, %d %B %Y", "--inflected", "2026-10-14T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "среда, 14 октября 2026\n", out)

	out, _, err = run(t, "date", "2026-03-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "01.03.2026\n", out)
}

func TestRootLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "words", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"words"`)
	assert.Contains(t, stderr, `"result":"три"`)

	_, stderr, err = run(t, "--log-format", "json", "count", "1", "parsec")
	require.Error(t, err)
	assert.Contains(t, stderr, `"msg":"conversion failed"`)
	assert.Contains(t, stderr, `"command":"count"`)

	_, _, err = run(t, "--log-level", "loud", "words", "1")
	require.Error(t, err)

	_, _, err = run(t, "--units", "missing.yaml", "words", "1")
	require.Error(t, err)
}
