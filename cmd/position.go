package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zhenxuanshi/astock"
	"github.com/zhenxuanshi/astock/renderer"
)

type posAddCmd struct{}

func (*posAddCmd) Name() string     { return "pos-add" }
func (*posAddCmd) Synopsis() string { return "record a new holding" }
func (*posAddCmd) Usage() string {
	return `asw pos-add <code> <name> <quantity> <cost_price>

  Records a new position and appends the matching buy trade to the ledger.
`
}
func (*posAddCmd) SetFlags(f *flag.FlagSet) {}

func (c *posAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "Error: want <code> <name> <quantity> <cost_price>")
		return subcommands.ExitUsageError
	}
	code, name := f.Arg(0), f.Arg(1)
	quantity, err := astock.ParseQuantity(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}
	costPrice, err := astock.ParseMoney(f.Arg(3))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid cost price %q: %v\n", f.Arg(3), err)
		return subcommands.ExitUsageError
	}

	var entry astock.PositionEntry
	err = Mutate(func(s *astock.Store) error {
		var err error
		entry, err = s.AddPosition(code, name, quantity, costPrice)
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Holding %s %s: %s @ %s, total %s\n",
		entry.Code, entry.Name, entry.Quantity, entry.CostPrice, entry.TotalCost)
	return subcommands.ExitSuccess
}

type posRmCmd struct{}

func (*posRmCmd) Name() string     { return "pos-rm" }
func (*posRmCmd) Synopsis() string { return "remove a holding" }
func (*posRmCmd) Usage() string {
	return `asw pos-rm <code>

  Removes the position entry for the given code. The trade ledger keeps its
  history.
`
}
func (*posRmCmd) SetFlags(f *flag.FlagSet) {}

func (c *posRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <code>")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)
	if err := Mutate(func(s *astock.Store) error { return s.RemovePosition(code) }); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed position %s\n", code)
	return subcommands.ExitSuccess
}

type posListCmd struct{}

func (*posListCmd) Name() string     { return "pos-list" }
func (*posListCmd) Synopsis() string { return "list the positions book" }
func (*posListCmd) Usage() string {
	return `asw pos-list

  Lists positions in insertion order with the summed cost basis.
`
}
func (*posListCmd) SetFlags(f *flag.FlagSet) {}

func (c *posListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	entries, total := s.Positions()
	printMarkdown(renderer.PositionsMarkdown(entries, total))
	return subcommands.ExitSuccess
}
