package main

import (
	"fmt"

	"github.com/fwojciec/chatdocx"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatdocx.ErrorMessage(err))
		return err
	}

	md, err := deps.Previewer.Preview(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", chatdocx.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
