package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/asllop/calf"
)

const version = "calf v0.1.0"

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	Literal string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config  string     `help:"Configuration file path (.yaml, .yml or .toml)" default:"calf.yaml"`
	Verbose bool       `help:"Trace lexing and parsing on stderr" short:"v"`
	Quiet   bool       `help:"Suppress output" short:"q"`
	Literal string     `help:"Numeric literal type: int, float or decimal. Overrides the configuration"`
	Tokens  TokensCmd  `cmd:"" help:"Print every token of a source"`
	AST     ASTCmd     `cmd:"" name:"ast" help:"Build and print the syntax tree of a source"`
	Check   CheckCmd   `cmd:"" help:"Check that a source parses"`
	Fmt     FmtCmd     `cmd:"" help:"Print a source in canonical layout"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, version)
	return nil
}

// load reads the configuration and applies the command line overrides
func (ctx *Context) load() (*calf.Config, error) {
	config, err := calf.LoadConfig(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ctx.Literal != "" {
		literal, err := calf.ParseLiteralType(ctx.Literal)
		if err != nil {
			return nil, err
		}
		config.Literal = literal
	}

	switch config.Color {
	case calf.ColorAlways:
		color.NoColor = false
	case calf.ColorNever:
		color.NoColor = true
	}

	return config, nil
}

// logger returns a debug logger on stderr in verbose mode and nil otherwise
func (ctx *Context) logger() *slog.Logger {
	if !ctx.Verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(ctx.Err, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// report prints err in red, with a source snippet when the error carries a position
func report(w io.Writer, err error) {
	red := color.New(color.FgRed)

	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		msg := calf.FormatError(srcErr.Text, srcErr.Err)
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		red.Fprint(w, msg)
		return
	}

	red.Fprintf(w, "Error: %v\n", err)
}

// run parses args and executes the selected command. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("calf"),
		kong.Description("Tokenize and parse calf expressions."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		report(stderr, err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		report(stderr, err)
		return 1
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Literal: cli.Literal,
		In:      stdin,
		Out:     stdout,
		Err:     stderr,
	}

	err = kctx.Run(appCtx)
	if err != nil {
		report(stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
