package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock"
	"github.com/zhenxuanshi/astock/renderer"
)

type watchAddCmd struct{}

func (*watchAddCmd) Name() string     { return "watch-add" }
func (*watchAddCmd) Synopsis() string { return "add a security to the watchlist" }
func (*watchAddCmd) Usage() string {
	return `asw watch-add <code> <name>

  Adds a security to the watchlist and snapshots its tags.
`
}
func (*watchAddCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: want <code> <name>")
		return subcommands.ExitUsageError
	}
	code, name := f.Arg(0), f.Arg(1)

	var entry astock.WatchlistEntry
	err := Mutate(func(s *astock.Store) error {
		var err error
		entry, err = s.AddWatch(code, name)
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Watching %s %s [%s]\n", entry.Code, entry.Name, strings.Join(entry.Tags, ", "))
	return subcommands.ExitSuccess
}

type watchRmCmd struct{}

func (*watchRmCmd) Name() string     { return "watch-rm" }
func (*watchRmCmd) Synopsis() string { return "remove a security from the watchlist" }
func (*watchRmCmd) Usage() string {
	return `asw watch-rm <code>

  Removes the watchlist entry for the given code.
`
}
func (*watchRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <code>")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)
	if err := Mutate(func(s *astock.Store) error { return s.RemoveWatch(code) }); err != nil {
		return fail(err)
	}
	fmt.Printf("No longer watching %s\n", code)
	return subcommands.ExitSuccess
}

type watchListCmd struct{}

func (*watchListCmd) Name() string     { return "watch-list" }
func (*watchListCmd) Synopsis() string { return "list the watchlist" }
func (*watchListCmd) Usage() string {
	return `asw watch-list

  Lists watchlist entries in insertion order.
`
}
func (*watchListCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.WatchlistEntriesMarkdown(s.Watchlist()))
	return subcommands.ExitSuccess
}
