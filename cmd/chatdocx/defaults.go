package main

import (
	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/yaml"
)

// Run executes the config command.
func (c *DefaultsCmd) Run(deps *Dependencies) error {
	data, err := yaml.Marshal(chatdocx.DefaultConfig())
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
