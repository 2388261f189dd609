package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/baditaflorin/go_case_convert/pkg/camel"
	"github.com/baditaflorin/go_case_convert/pkg/dot"
	"github.com/baditaflorin/go_case_convert/pkg/kebab"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "caseconvert",
		Usage:   "Convert free-form text to programmatic naming conventions",
		Version: Version,
		Commands: []*cli.Command{
			camelCmd(),
			dotCmd(),
			kebabCmd(),
		},
	}
}

// camelCmd creates the camel command.
func camelCmd() *cli.Command {
	return &cli.Command{
		Name:      "camel",
		Usage:     "Convert text to camelCase (reads stdin when no arguments)",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			input, err := readInput(c)
			if err != nil {
				return err
			}
			conv, err := camel.New()
			if err != nil {
				return err
			}
			return output(conv.Convert(input))
		},
	}
}

// dotCmd creates the dot command.
func dotCmd() *cli.Command {
	return &cli.Command{
		Name:      "dot",
		Usage:     "Convert text to dot.case (reads stdin when no arguments)",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lowercase-acronyms", Usage: "Lowercase acronyms instead of preserving their case"},
		},
		Action: func(c *cli.Context) error {
			input, err := readInput(c)
			if err != nil {
				return err
			}
			var opts []dot.Option
			if c.Bool("lowercase-acronyms") {
				opts = append(opts, dot.WithLowercaseAcronyms())
			}
			conv, err := dot.New(opts...)
			if err != nil {
				return err
			}
			return output(conv.Convert(input))
		},
	}
}

// kebabCmd creates the kebab command.
func kebabCmd() *cli.Command {
	return &cli.Command{
		Name:      "kebab",
		Usage:     "Convert text to kebab-case (reads stdin when no arguments)",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			input, err := readInput(c)
			if err != nil {
				return err
			}
			conv, err := kebab.New()
			if err != nil {
				return err
			}
			return output(conv.Convert(input))
		},
	}
}

// readInput joins the command arguments, falling back to stdin when none are
// given.
func readInput(c *cli.Context) (string, error) {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// output prints the conversion result or returns its error.
func output(out string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
