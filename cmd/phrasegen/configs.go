package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phrase-tools/phrasegen/convert"
	"github.com/phrase-tools/phrasegen/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	F     string `cli:"name=f aliases=file desc='input catalog (default phrases.yaml)'"`
	Color bool   `cli:"name=color desc='colorize terminal output'"`

	Main *cli.Command
}

func (cfg *MainConfig) inputPath() string {
	if cfg.F != "" {
		return cfg.F
	}
	return convert.DefaultInput
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOut reports whether diagnostic output to w should use ANSI
// colors, with the same resolution as encOpts.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GenConfig struct {
	*MainConfig
	O string `cli:"name=o aliases=out desc='output file path'"`

	Mode convert.Format
	Gen  *cli.Command
}

func (cfg *GenConfig) modeOpt(_ *cli.Context, a string) (any, error) {
	f, err := convert.ParseFormat(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Mode = f
	return f, nil
}

func (cfg *GenConfig) convertConfig() *convert.Config {
	return &convert.Config{
		Mode:   cfg.Mode,
		Input:  cfg.MainConfig.F,
		Output: cfg.O,
	}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	O string `cli:"name=o aliases=out desc='output file to verify'"`

	Mode  convert.Format
	Check *cli.Command
}

func (cfg *CheckConfig) modeOpt(_ *cli.Context, a string) (any, error) {
	f, err := convert.ParseFormat(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Mode = f
	return f, nil
}

type MergeConfig struct {
	*MainConfig
	O string `cli:"name=o aliases=out desc='output file path, - for stdout'"`

	Mode  convert.Format
	Merge *cli.Command
}

func (cfg *MergeConfig) modeOpt(_ *cli.Context, a string) (any, error) {
	f, err := convert.ParseFormat(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Mode = f
	return f, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
