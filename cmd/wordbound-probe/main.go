// Command wordbound-probe prints the word analysis of a text at a position
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"wordbound/internal/core/delimiter"
	"wordbound/internal/core/langhint"
	"wordbound/internal/core/words"
	perr "wordbound/internal/platform/errors"
	"wordbound/internal/platform/logger"

	"github.com/google/uuid"
)

// newRunID is a seam for tests
var newRunID = uuid.NewString

type result struct {
	RunID           string `json:"run_id"`
	Preset          string `json:"preset"`
	Length          int    `json:"length"`
	Position        int    `json:"position"`
	Word            string `json:"word"`
	Found           bool   `json:"found"`
	Start           int    `json:"start"`
	End             int    `json:"end"`
	Before          string `json:"before"`
	After           string `json:"after"`
	FirstWord       string `json:"first_word"`
	LastWord        string `json:"last_word"`
	DelimiterSuffix bool   `json:"delimiter_suffix"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("wordbound-probe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	text := fs.String("text", "", `text to analyse, "-" reads stdin`)
	pos := fs.Int("pos", -1, "grapheme cluster offset, -1 means end of text")
	preset := fs.String("preset", delimiter.DefaultPreset, `delimiter preset, or "auto" to pick by script`)
	pack := fs.String("pack", "", "delimiter pack file (json, yaml or toml), overrides -preset")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return perr.InvalidArgf("%v", err)
	}

	if *text == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		*text = strings.TrimRight(string(b), "\r\n")
	}

	id := newRunID()
	ctx := logger.WithRun(context.Background(), id)
	set, err := resolve(*preset, *pack, *text)
	if err != nil {
		return err
	}
	ctx = logger.WithPreset(ctx, set.Name())

	a := words.New(set)
	n := words.Len(*text)
	p := *pos
	if p < 0 {
		p = n
	}

	res := result{
		RunID:           id,
		Preset:          set.Name(),
		Length:          n,
		Position:        p,
		FirstWord:       a.FragmentAtStart(*text),
		LastWord:        a.FragmentAtEnd(*text),
		DelimiterSuffix: a.HasDelimiterSuffix(*text),
	}
	sp, ok, err := a.Span(*text, p)
	if err != nil {
		return err
	}
	res.Word, res.Found, res.Start, res.End = sp.Word, ok, sp.Start, sp.End
	if res.Before, err = a.FragmentBefore(*text, p); err != nil {
		return err
	}
	if res.After, err = a.FragmentAfter(*text, p); err != nil {
		return err
	}
	logger.C(ctx).Debug().Int("pos", p).Bool("found", ok).Msg("probe")

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printText(out, res)
}

// resolve loads the pack file when given, else the named preset
func resolve(preset, pack, text string) (*delimiter.Set, error) {
	reg := delimiter.Builtin()
	if pack != "" {
		p, err := delimiter.LoadFile(pack)
		if err != nil {
			return nil, err
		}
		return reg.Compile(p)
	}
	if preset == "auto" {
		preset = langhint.Preset(text)
	}
	return reg.Get(preset)
}

func printText(out io.Writer, r result) error {
	tw := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	rows := [][2]string{
		{"preset", r.Preset},
		{"length", fmt.Sprint(r.Length)},
		{"position", fmt.Sprint(r.Position)},
		{"word", quoteIf(r.Found, r.Word)},
		{"span", fmt.Sprintf("[%d,%d)", r.Start, r.End)},
		{"before", fmt.Sprintf("%q", r.Before)},
		{"after", fmt.Sprintf("%q", r.After)},
		{"first", fmt.Sprintf("%q", r.FirstWord)},
		{"last", fmt.Sprintf("%q", r.LastWord)},
		{"delimiter suffix", fmt.Sprint(r.DelimiterSuffix)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func quoteIf(ok bool, s string) string {
	if !ok {
		return "(none)"
	}
	return fmt.Sprintf("%q", s)
}
