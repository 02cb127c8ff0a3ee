// Package renderer turns report structures into markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/zhenxuanshi/astock"
)

// WatchlistMarkdown renders a session-gated watchlist report.
func WatchlistMarkdown(r *astock.WatchlistReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watchlist Report")
	doc.PlainText(fmt.Sprintf("Generated at %s", r.Time.Format("2006-01-02 15:04:05")))

	if r.Skipped {
		doc.PlainText(fmt.Sprintf("**SKIPPED**: not in a trading session (%s)", r.Status.Reason))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%d securities watched.", r.Count))
	if r.Count > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Code", "Name", "Tags"},
		}
		for _, e := range r.Entries {
			table.Rows = append(table.Rows, []string{e.Code, e.Name, strings.Join(e.Tags, ", ")})
		}
		doc.Table(table)
		doc.PlainText(quoteHint(r.QuoteCodes))
	}
	return doc.String()
}

// quoteHint renders the live-quote fetch hint for the given normalized codes.
func quoteHint(codes []string) string {
	return fmt.Sprintf("Live quotes: `asw quote %s`", strings.Join(codes, ","))
}
