// Package commands defines the ruwords CLI.
//
// Commands
//
//   - words     Spell an integer or decimal number
//   - currency  Spell a money amount with major and minor units
//   - plural    Pick the noun form agreeing with a count
//   - count     Spell a count followed by a catalog unit
//   - ago       Describe a time distance ("2 дня назад")
//   - date      Format a date with Russian month and day names
//
// The root command builds the logger and the unit catalog before any
// subcommand runs. Results go to stdout, logs to stderr.
package commands
