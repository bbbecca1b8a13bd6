package main

import (
	"fmt"

	"github.com/phrase-tools/phrasegen/convert"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one overlay file", cli.ErrUsage)
	}
	y, err := convert.Load(cfg.inputPath())
	if err != nil {
		return err
	}
	for _, file := range args {
		overlay, err := getCatalog(cc, file)
		if err != nil {
			return err
		}
		y = convert.Merge(y, overlay)
	}
	d, err := convert.Render(y, cfg.Mode)
	if err != nil {
		return err
	}
	if cfg.O == "-" {
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
		return nil
	}
	outPath := cfg.O
	if outPath == "" {
		outPath = cfg.Mode.DefaultOutput()
	}
	return convert.WriteFile(outPath, d)
}
