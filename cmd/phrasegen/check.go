package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/phrase-tools/phrasegen/convert"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	y, err := convert.Load(cfg.inputPath())
	if err != nil {
		return err
	}
	want, err := convert.Render(y, cfg.Mode)
	if err != nil {
		return err
	}
	outPath := cfg.O
	if outPath == "" {
		outPath = cfg.Mode.DefaultOutput()
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(cc.Out, "%s: missing, run phrasegen %s\n", outPath, cfg.Mode)
			return cli.ExitCodeErr(1)
		}
		return fmt.Errorf("could not read %q: %w", outPath, err)
	}
	if bytes.Equal(got, want) {
		fmt.Fprintf(cc.Out, "%s: up to date\n", outPath)
		return nil
	}
	kind := "content"
	if structurallyEqual(cfg, got, want) {
		kind = "formatting"
	}
	fmt.Fprintf(cc.Out, "%s: stale (%s drift)\n", outPath, kind)
	printDiff(cfg, cc, string(got), string(want))
	return cli.ExitCodeErr(1)
}

// structurallyEqual compares the stale output with the expected one as
// JSON documents, ignoring layout. For the JS form the embed framing
// is stripped first; an output that lost the framing is content drift.
func structurallyEqual(cfg *CheckConfig, got, want []byte) bool {
	if cfg.Mode.IsJS() {
		var ok bool
		got, ok = stripEmbed(got)
		if !ok {
			return false
		}
		want, _ = stripEmbed(want)
	}
	return jsonpatch.Equal(got, want)
}

func stripEmbed(d []byte) ([]byte, bool) {
	s := string(d)
	prefix := "const " + convert.EmbedConst + " = "
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ";") {
		return nil, false
	}
	return []byte(s[len(prefix) : len(s)-1]), true
}

func printDiff(cfg *CheckConfig, cc *cli.Context, got, want string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(got, want, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.MainConfig.colorOut(cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%q\n", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%q\n", d.Text)
		}
	}
}
