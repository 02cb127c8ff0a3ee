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

type tagSetCmd struct{}

func (*tagSetCmd) Name() string     { return "tag-set" }
func (*tagSetCmd) Synopsis() string { return "insert or overwrite a tag catalog row" }
func (*tagSetCmd) Usage() string {
	return `asw tag-set <code> <name> <tag[,tag...]>

  Upserts the curated catalog row for a code. Snapshots on existing entries
  are not touched; run tag-refresh to recompute them.
`
}
func (*tagSetCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: want <code> <name> <tags>")
		return subcommands.ExitUsageError
	}
	code, name := f.Arg(0), f.Arg(1)
	var tags []string
	for _, t := range strings.Split(f.Arg(2), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		fmt.Fprintln(os.Stderr, "Error: want at least one tag")
		return subcommands.ExitUsageError
	}
	err := Mutate(func(s *astock.Store) error {
		s.Catalog().Upsert(code, name, tags)
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Catalog row %s %s -> [%s]\n", code, name, strings.Join(tags, ", "))
	return subcommands.ExitSuccess
}

type tagRefreshCmd struct{}

func (*tagRefreshCmd) Name() string     { return "tag-refresh" }
func (*tagRefreshCmd) Synopsis() string { return "recompute the tag snapshots of all entries" }
func (*tagRefreshCmd) Usage() string {
	return `asw tag-refresh

  Recomputes tags for every watchlist and position entry and overwrites the
  snapshots that changed.
`
}
func (*tagRefreshCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagRefreshCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var count int
	var changes []astock.TagChange
	err := Mutate(func(s *astock.Store) error {
		count, changes = s.RefreshTags()
		return nil
	})
	if err != nil {
		return fail(err)
	}
	for _, ch := range changes {
		fmt.Printf("%s %s: [%s] -> [%s]\n",
			ch.Code, ch.Name, strings.Join(ch.Old, ", "), strings.Join(ch.New, ", "))
	}
	fmt.Printf("%d entries changed.\n", count)
	return subcommands.ExitSuccess
}

type tagListCmd struct{}

func (*tagListCmd) Name() string     { return "tag-list" }
func (*tagListCmd) Synopsis() string { return "group all entries by tag" }
func (*tagListCmd) Usage() string {
	return `asw tag-list

  Groups watchlist and position entries by tag, tags sorted lexicographically.
`
}
func (*tagListCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TagGroupsMarkdown(s.ListTags()))
	return subcommands.ExitSuccess
}

type tagShowCmd struct{}

func (*tagShowCmd) Name() string     { return "tag-show" }
func (*tagShowCmd) Synopsis() string { return "show the entries carrying a tag" }
func (*tagShowCmd) Usage() string {
	return `asw tag-show <tag>

  Shows watchlist and position entries whose snapshot contains the tag.
`
}
func (*tagShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagShowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <tag>")
		return subcommands.ExitUsageError
	}
	s, err := DecodeStore()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TagMatchesMarkdown(f.Arg(0), s.ShowTag(f.Arg(0))))
	return subcommands.ExitSuccess
}

type tagImportCmd struct{}

func (*tagImportCmd) Name() string     { return "tag-import" }
func (*tagImportCmd) Synopsis() string { return "import catalog rows from a seed file" }
func (*tagImportCmd) Usage() string {
	return `asw tag-import <file>

  Imports catalog rows from a flat seed file, one "code|name|tag,tag" row per
  line. Lines starting with '#' are comments.
`
}
func (*tagImportCmd) SetFlags(f *flag.FlagSet) {}

func (c *tagImportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want <file>")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	var before, after int
	err = Mutate(func(s *astock.Store) error {
		before = s.Catalog().Len()
		if err := s.Catalog().ImportSeed(file); err != nil {
			return err
		}
		after = s.Catalog().Len()
		return nil
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %s: %d new rows, catalog now has %d.\n", f.Arg(0), after-before, after)
	return subcommands.ExitSuccess
}
