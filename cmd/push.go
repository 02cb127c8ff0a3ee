package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock"
	"github.com/zhenxuanshi/astock/renderer"
)

type pushWatchlistCmd struct{}

func (*pushWatchlistCmd) Name() string     { return "push-watchlist" }
func (*pushWatchlistCmd) Synopsis() string { return "emit the watchlist report, session-gated" }
func (*pushWatchlistCmd) Usage() string {
	return `asw push-watchlist

  Emits the watchlist report. Outside a trading session the report is skipped
  and nothing is mutated. Meant to be invoked by an OS scheduler; a
  misconfigured schedule is harmless since the gate re-checks.
`
}
func (*pushWatchlistCmd) SetFlags(f *flag.FlagSet) {}

func (c *pushWatchlistCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.WatchlistMarkdown(astock.ComposeWatchlistReport(s, time.Now())))
	return subcommands.ExitSuccess
}

type pushPositionCmd struct{}

func (*pushPositionCmd) Name() string     { return "push-position" }
func (*pushPositionCmd) Synopsis() string { return "emit the position report, session-gated" }
func (*pushPositionCmd) Usage() string {
	return `asw push-position

  Emits the position report, skipped outside a trading session.
`
}
func (*pushPositionCmd) SetFlags(f *flag.FlagSet) {}

func (c *pushPositionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PositionMarkdown(astock.ComposePositionReport(s, time.Now())))
	return subcommands.ExitSuccess
}

type checkSessionCmd struct{}

func (*checkSessionCmd) Name() string     { return "check-session" }
func (*checkSessionCmd) Synopsis() string { return "print the trading-session status" }
func (*checkSessionCmd) Usage() string {
	return `asw check-session

  Prints the session status. Exit code 0 when in session, 1 otherwise.
`
}
func (*checkSessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkSessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := astock.IsTradingSession(time.Now())
	fmt.Println(status.Reason)
	if !status.InSession {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
