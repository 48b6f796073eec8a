package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/chatdocx"
	"github.com/fwojciec/chatdocx/convert"
	"github.com/fwojciec/chatdocx/goquery"
	"github.com/fwojciec/chatdocx/htmltomarkdown"
	chatslog "github.com/fwojciec/chatdocx/slog"
	"github.com/fwojciec/chatdocx/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when an input argument is "-".
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chatdocx"),
		kong.Description("Convert HTML copied from chat assistants into Word documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chatdocx --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", chatdocx.ErrorMessage(err))
		return err
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	engine := convert.New(cfg)
	engine.Extractor = chatslog.NewLoggingExtractor(engine.Extractor, deps.Logger)
	deps.Converter = chatslog.NewLoggingConverter(engine, deps.Logger)
	deps.Previewer = htmltomarkdown.NewPreviewer(goquery.NewNormalizer(cfg.Normalize))

	return kongCtx.Run(deps)
}
