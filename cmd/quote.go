package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock/renderer"
	"github.com/zhenxuanshi/astock/tencent"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch live quotes from the provider" }
func (*quoteCmd) Usage() string {
	return `asw quote <code[,code...]>

  Fetches one real-time quote batch. Bare codes are normalized to their
  exchange-prefixed form.
`
}
func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <code[,code...]>")
		return subcommands.ExitUsageError
	}
	var codes []string
	for _, code := range strings.Split(f.Arg(0), ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one code")
		return subcommands.ExitUsageError
	}

	cfg := LoadedConfig()
	client := tencent.New(cfg.Provider.BaseURL, time.Duration(cfg.Provider.TimeoutSeconds)*time.Second)
	quotes, err := client.Fetch(codes...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.QuotesMarkdown(quotes))
	return subcommands.ExitSuccess
}
