package cmd

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock"
	"github.com/zhenxuanshi/astock/renderer"
)

// serveCmd runs the report pushes on an in-process ticker, as an alternative
// to an OS-level scheduler. Each tick re-checks the session gate, so running
// it around the clock is harmless.
type serveCmd struct {
	interval int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "push reports on a recurring schedule" }
func (*serveCmd) Usage() string {
	return `asw serve [-n <minutes>]

  Pushes the watchlist and position reports every n minutes during trading
  sessions. Runs until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.interval, "n", 0, "Push interval in minutes (defaults to the configured value)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	interval := c.interval
	if interval <= 0 {
		interval = LoadedConfig().Push.IntervalMinutes
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Minute)
	defer ticker.Stop()

	log.Printf("pushing reports every %d minutes", interval)
	c.push()
	for {
		select {
		case <-ctx.Done():
			log.Println("scheduler stopped")
			return subcommands.ExitSuccess
		case <-ticker.C:
			c.push()
		}
	}
}

func (c *serveCmd) push() {
	now := time.Now()
	if status := astock.IsTradingSession(now); !status.InSession {
		log.Printf("outside trading session (%s), skipping push", status.Reason)
		return
	}
	s, err := DecodeStore()
	if err != nil {
		log.Printf("cannot load store: %v", err)
		return
	}
	printMarkdown(renderer.WatchlistMarkdown(astock.ComposeWatchlistReport(s, now)))
	printMarkdown(renderer.PositionMarkdown(astock.ComposePositionReport(s, now)))
}
