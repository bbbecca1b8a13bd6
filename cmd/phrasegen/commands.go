package main

import (
	"github.com/phrase-tools/phrasegen/convert"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "phrasegen").
		WithSynopsis("phrasegen [opts] command [opts]").
		WithDescription("phrasegen converts YAML phrase catalogs to JSON and JS forms.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return phrasegenMain(cfg, cc, args)
		}).
		WithSubs(
			JSCommand(cfg),
			JSONCommand(cfg),
			GenCommand(cfg),
			ViewCommand(cfg),
			CheckCommand(cfg),
			MergeCommand(cfg),
			GetCommand(cfg))
}

func JSCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Mode: convert.JSFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("js").
		WithSynopsis("js [-o phrases.js]").
		WithDescription("write the JS-embed form, const PHRASES_DATA = <json>;").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Mode: convert.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("json").
		WithSynopsis("json [-o phrases.json]").
		WithDescription("write the plain-JSON form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Mode: convert.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "m",
		Aliases:     []string{"mode"},
		Description: "output mode: js/j, json",
		Type:        cli.NamedFuncOpt(cfg.modeOpt, "(mode)"),
	})
	cmd := cli.NewCommand("gen").
		WithSynopsis("gen [-m js|json] [-o path]").
		WithDescription("convert the catalog in the selected output mode").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("pretty-print catalogs as JSON, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Mode: convert.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "m",
		Aliases:     []string{"mode"},
		Description: "output mode to verify: js/j, json",
		Type:        cli.NamedFuncOpt(cfg.modeOpt, "(mode)"),
	})
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-m js|json] [-o path]").
		WithDescription("verify that the output file matches the catalog").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Mode: convert.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "m",
		Aliases:     []string{"mode"},
		Description: "output mode: js/j, json",
		Type:        cli.NamedFuncOpt(cfg.modeOpt, "(mode)"),
	})
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [-m js|json] [-o path] overlay...").
		WithDescription("apply overlay catalogs to the input and convert the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <expr>").
		WithDescription("query the catalog with an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}
