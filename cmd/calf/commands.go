package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/asllop/calf"
)

// TokensCmd represents the tokens command
type TokensCmd struct {
	SourceFlags `embed:""`
}

// Run executes the tokens command
func (cmd *TokensCmd) Run(ctx *Context) error {
	config, src, err := prepare(ctx, cmd.SourceFlags)
	if err != nil {
		return err
	}

	return frontendFor(literalFor(ctx, config, src)).Tokens(ctx.Out, src)
}

// ASTCmd represents the ast command
type ASTCmd struct {
	SourceFlags `embed:""`
	Format      string `help:"Output format: text, tree, yaml or json. Defaults to the configured format"`
}

// Run executes the ast command
func (cmd *ASTCmd) Run(ctx *Context) error {
	config, src, err := prepare(ctx, cmd.SourceFlags)
	if err != nil {
		return err
	}

	format := config.Format
	if cmd.Format != "" {
		format = cmd.Format
	}

	t, err := frontendFor(literalFor(ctx, config, src)).Build(src, ctx.logger())
	if err != nil {
		return err
	}

	return render(ctx.Out, t, format)
}

// CheckCmd represents the check command
type CheckCmd struct {
	SourceFlags `embed:""`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	config, src, err := prepare(ctx, cmd.SourceFlags)
	if err != nil {
		return err
	}

	t, err := frontendFor(literalFor(ctx, config, src)).Build(src, ctx.logger())
	if err != nil {
		return err
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Out, "ok: %s, %d statements\n", src.Name, t.Len())
	}

	return nil
}

// FmtCmd represents the fmt command
type FmtCmd struct {
	SourceFlags `embed:""`
	Write       bool `short:"w" help:"Write the result back to the source file instead of stdout"`
	Check       bool `short:"c" help:"Check if the source is formatted (exit 1 if not)"`
}

// Run executes the fmt command
func (cmd *FmtCmd) Run(ctx *Context) error {
	config, src, err := prepare(ctx, cmd.SourceFlags)
	if err != nil {
		return err
	}

	formatted, err := frontendFor(literalFor(ctx, config, src)).Format(src, config.Markdown.Languages)
	if err != nil {
		return err
	}

	switch {
	case cmd.Check:
		if formatted != src.Text {
			return fmt.Errorf("%s: %w", src.Name, ErrNotFormatted)
		}
		if !ctx.Quiet {
			color.New(color.FgGreen).Fprintf(ctx.Out, "ok: %s is formatted\n", src.Name)
		}
		return nil

	case cmd.Write:
		if cmd.File == "" || cmd.File == "-" {
			return ErrWriteNeedsFile
		}
		if formatted == src.Text {
			return nil
		}
		info, err := os.Stat(cmd.File)
		if err != nil {
			return fmt.Errorf("failed to stat source: %w", err)
		}
		err = os.WriteFile(cmd.File, []byte(formatted), info.Mode().Perm())
		if err != nil {
			return fmt.Errorf("failed to write source: %w", err)
		}
		if !ctx.Quiet {
			fmt.Fprintf(ctx.Out, "formatted %s\n", src.Name)
		}
		return nil

	default:
		_, err = fmt.Fprint(ctx.Out, formatted)
		return err
	}
}

// prepare loads the configuration and the source shared by every command
func prepare(ctx *Context, flags SourceFlags) (*calf.Config, *source, error) {
	config, err := ctx.load()
	if err != nil {
		return nil, nil, err
	}

	src, err := flags.load(ctx, config)
	if err != nil {
		return nil, nil, err
	}

	if ctx.Verbose {
		color.New(color.FgBlue).Fprintf(ctx.Err, "%s: %d chunks, literal type %s\n", src.Name, len(src.Chunks), literalFor(ctx, config, src))
	}

	return config, src, nil
}
