package main

import (
	"fmt"

	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/convert"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatdocx.ErrorMessage(err))
		return err
	}

	if err := deps.Converter.Convert(html, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", convert.Describe(err, c.Output))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", c.Output)
	return nil
}
