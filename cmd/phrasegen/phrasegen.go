package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phrase-tools/phrasegen/convert"
	"github.com/phrase-tools/phrasegen/decode"
	"github.com/phrase-tools/phrasegen/ir"

	"github.com/scott-cotton/cli"
)

func phrasegenMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// getCatalog loads a catalog from a path, or from cc.In for "-".
func getCatalog(cc *cli.Context, path string) (*ir.Node, error) {
	if path != "-" {
		return convert.Load(path)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return decode.Decode(d)
}

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	return convert.Run(cfg.convertConfig())
}
