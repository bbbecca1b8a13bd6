package main

import (
	"fmt"
	"io"

	"github.com/phrase-tools/phrasegen/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{cfg.inputPath()}
	}
	if err := viewFiles(cfg, cc, cc.Out, args); err != nil {
		return err
	}
	return nil
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, cc, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	y, err := getCatalog(cc, file)
	if err != nil {
		return err
	}
	if err := encode.Encode(y, w, cfg.MainConfig.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
