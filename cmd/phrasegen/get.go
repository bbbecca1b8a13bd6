package main

import (
	"fmt"

	"github.com/phrase-tools/phrasegen/convert"
	"github.com/phrase-tools/phrasegen/encode"
	"github.com/phrase-tools/phrasegen/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	q := args[0]
	y, err := convert.Load(cfg.inputPath())
	if err != nil {
		return err
	}
	// Top-level object keys are addressable directly; the whole
	// document is always available as `doc`, covering scalar and
	// array catalogs.
	env := map[string]any{"doc": ir.ToAny(y)}
	if fields, ok := env["doc"].(map[string]any); ok {
		for k, v := range fields {
			if k == "doc" {
				continue
			}
			env[k] = v
		}
	}
	out, err := expr.Eval(q, env)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", q, err)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return fmt.Errorf("cannot encode result of %q: %w", q, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.MainConfig.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}
