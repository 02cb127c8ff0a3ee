package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/zhenxuanshi/astock"
)

// PositionMarkdown renders a session-gated positions report.
func PositionMarkdown(r *astock.PositionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Position Report")
	doc.PlainText(fmt.Sprintf("Generated at %s", r.Time.Format("2006-01-02 15:04:05")))

	if r.Skipped {
		doc.PlainText(fmt.Sprintf("**SKIPPED**: not in a trading session (%s)", r.Status.Reason))
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("%d positions held.", r.Count))
	if r.Count > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
			},
			Header: []string{"Code", "Name", "Quantity", "Cost Price", "Total Cost"},
		}
		for _, e := range r.Entries {
			table.Rows = append(table.Rows, []string{
				e.Code, e.Name, e.Quantity.String(), e.CostPrice.String(), e.TotalCost.String(),
			})
		}
		doc.Table(table)
		doc.PlainText(fmt.Sprintf("**Total cost basis:** %s", r.TotalCost.String()))
		doc.PlainText(quoteHint(r.QuoteCodes))
	}
	return doc.String()
}

// PositionsMarkdown renders the plain pos-list view, without the session gate.
func PositionsMarkdown(entries []astock.PositionEntry, total astock.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Positions")
	if len(entries) == 0 {
		doc.PlainText("No position held.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Code", "Name", "Quantity", "Cost Price", "Total Cost", "Tags"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Code, e.Name, e.Quantity.String(), e.CostPrice.String(), e.TotalCost.String(),
			strings.Join(e.Tags, ", "),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("**Total cost basis:** %s", total.String()))
	return doc.String()
}

// WatchlistEntriesMarkdown renders the plain watch-list listing.
func WatchlistEntriesMarkdown(entries []astock.WatchlistEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watchlist")
	if len(entries) == 0 {
		doc.PlainText("Nothing watched.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Code", "Name", "Tags", "Added"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Code, e.Name, strings.Join(e.Tags, ", "), e.Added.Format("2006-01-02"),
		})
	}
	doc.Table(table)
	return doc.String()
}
