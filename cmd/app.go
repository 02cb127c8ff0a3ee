// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&watchAddCmd{}, "watchlist")
	c.Register(&watchRmCmd{}, "watchlist")
	c.Register(&watchListCmd{}, "watchlist")

	c.Register(&posAddCmd{}, "positions")
	c.Register(&posRmCmd{}, "positions")
	c.Register(&posListCmd{}, "positions")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&historyCmd{}, "trading")

	c.Register(&tagSetCmd{}, "tags")
	c.Register(&tagRefreshCmd{}, "tags")
	c.Register(&tagListCmd{}, "tags")
	c.Register(&tagShowCmd{}, "tags")
	c.Register(&tagImportCmd{}, "tags")

	c.Register(&pushWatchlistCmd{}, "reports")
	c.Register(&pushPositionCmd{}, "reports")
	c.Register(&checkSessionCmd{}, "reports")
	c.Register(&serveCmd{}, "reports")

	c.Register(&quoteCmd{}, "market")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data directory holding the persisted documents")
var configFile = flag.String("config", "", "Path to the YAML config file (defaults to <data>/config.yaml)")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".astock"
	}
	return filepath.Join(home, ".astock")
}

// DecodeStore loads the store from the data directory, lock-free.
func DecodeStore() (*astock.Store, error) {
	return astock.DecodeStore(*dataDir)
}

// Mutate runs fn on the store under the data-directory writer lock, and saves
// the store back only when fn succeeds.
func Mutate(fn func(s *astock.Store) error) error {
	cfg := LoadedConfig()
	unlock, err := astock.LockDocuments(*dataDir, time.Duration(cfg.LockWaitSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	s, err := astock.DecodeStore(*dataDir)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return astock.EncodeStore(*dataDir, s)
}

// fail prints the error and maps it to the command exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
