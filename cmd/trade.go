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

// tradeArgs parses the shared <code> <quantity> <price> positional arguments.
func tradeArgs(f *flag.FlagSet) (code string, quantity astock.Quantity, price astock.Money, ok bool) {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: want <code> <quantity> <price>")
		return "", astock.Quantity{}, astock.Money{}, false
	}
	code = f.Arg(0)
	quantity, err := astock.ParseQuantity(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", f.Arg(1), err)
		return "", astock.Quantity{}, astock.Money{}, false
	}
	price, err = astock.ParseMoney(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", f.Arg(2), err)
		return "", astock.Quantity{}, astock.Money{}, false
	}
	return code, quantity, price, true
}

type buyCmd struct{}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy trade in the ledger" }
func (*buyCmd) Usage() string {
	return `asw buy <code> <quantity> <price>

  Appends a buy record to the trade ledger. The positions book is not
  modified.
`
}
func (*buyCmd) SetFlags(f *flag.FlagSet) {}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	code, quantity, price, ok := tradeArgs(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	var rec astock.TradeRecord
	err := Mutate(func(s *astock.Store) error {
		var err error
		rec, err = s.Buy(code, quantity, price)
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded buy %s %s: %s @ %s, total %s\n", rec.Code, rec.Name, rec.Quantity, rec.Price, rec.Total)
	return subcommands.ExitSuccess
}

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade in the ledger" }
func (*sellCmd) Usage() string {
	return `asw sell <code> <quantity> <price>

  Appends a sell record to the trade ledger. The held quantity is not
  decremented.
`
}
func (*sellCmd) SetFlags(f *flag.FlagSet) {}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	code, quantity, price, ok := tradeArgs(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	var rec astock.TradeRecord
	err := Mutate(func(s *astock.Store) error {
		var err error
		rec, err = s.Sell(code, quantity, price)
		return err
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded sell %s %s: %s @ %s, total %s\n", rec.Code, rec.Name, rec.Quantity, rec.Price, rec.Total)
	return subcommands.ExitSuccess
}

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the trade history for a code" }
func (*historyCmd) Usage() string {
	return `asw history <code>

  Lists ledger records for the given code in chronological order.
`
}
func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <code>")
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TradesMarkdown(s.Trades().History(f.Arg(0))))
	return subcommands.ExitSuccess
}
