package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/zhenxuanshi/astock"
)

// TradesMarkdown renders ledger lines in chronological order.
func TradesMarkdown(records []astock.TradeRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trade History")
	if len(records) == 0 {
		doc.PlainText("No trade recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Time", "Code", "Name", "Action", "Quantity", "Price", "Total"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Time.Format("2006-01-02 15:04:05"),
			r.Code, r.Name, string(r.Action),
			r.Quantity.String(), r.Price.String(), r.Total.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
