package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/chatdocx"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *chatdocx.Config
	Logger    *slog.Logger
	Converter chatdocx.Converter
	Previewer chatdocx.Previewer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" type:"path" help:"YAML configuration file"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Convert  ConvertCmd  `cmd:"" help:"Convert an HTML file to DOCX"`
	Watch    WatchCmd    `cmd:"" help:"Convert a file to DOCX every time its content changes"`
	Preview  PreviewCmd  `cmd:"" help:"Print the cleaned HTML as Markdown"`
	Defaults DefaultsCmd `cmd:"" name:"config" help:"Print the default configuration as YAML"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input  string `arg:"" optional:"" default:"-" help:"HTML file to convert ('-' reads standard input)"`
	Output string `short:"o" default:"formatted_output.docx" help:"Output DOCX path"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Input        string        `arg:"" help:"File to poll for HTML content"`
	Output       string        `short:"o" default:"formatted_output.docx" help:"Output DOCX path"`
	Interval     time.Duration `short:"i" default:"1s" help:"Polling interval"`
	ErrorBackoff time.Duration `name:"error-backoff" default:"3s" help:"Pause after a failed conversion"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Input string `arg:"" optional:"" default:"-" help:"HTML file to preview ('-' reads standard input)"`
}

// DefaultsCmd is the "config" subcommand.
type DefaultsCmd struct{}

// readInput returns the content of path, or of stdin when path is "-".
func readInput(deps *Dependencies, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" || path == "" {
		data, err = io.ReadAll(deps.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", chatdocx.Errorf(chatdocx.EINVALID, "cannot read input: %v", err)
	}
	return string(data), nil
}
