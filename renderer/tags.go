package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/zhenxuanshi/astock"
)

// TagGroupsMarkdown renders the tag-grouped view of both collections.
func TagGroupsMarkdown(groups []astock.TagGroup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tags")
	if len(groups) == 0 {
		doc.PlainText("No entry to group.")
		return doc.String()
	}
	for _, g := range groups {
		doc.H2(g.Tag)
		var items []string
		for _, m := range g.Entries {
			items = append(items, matchLine(m))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}

// TagMatchesMarkdown renders the entries carrying one tag.
func TagMatchesMarkdown(tag string, matches []astock.TagMatch) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tag: %s", tag))
	if len(matches) == 0 {
		doc.PlainText("No entry carries this tag.")
		return doc.String()
	}
	var items []string
	for _, m := range matches {
		items = append(items, matchLine(m))
	}
	doc.BulletList(items...)
	return doc.String()
}

func matchLine(m astock.TagMatch) string {
	line := fmt.Sprintf("%s %s (%s)", m.Code, m.Name, m.Source)
	if m.Quantity != nil {
		line += fmt.Sprintf(" x%s", m.Quantity)
	}
	if len(m.Tags) > 0 {
		line += " [" + strings.Join(m.Tags, ", ") + "]"
	}
	return line
}

// CatalogMarkdown renders the curated tag catalog rows.
func CatalogMarkdown(rows []astock.CatalogRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tag Catalog")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Code", "Name", "Tags"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{r.Code, r.Name, strings.Join(r.Tags, ", ")})
	}
	doc.Table(table)
	return doc.String()
}
