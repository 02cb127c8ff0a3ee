package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/zhenxuanshi/astock"
)

// QuotesMarkdown renders a decoded quote batch.
func QuotesMarkdown(quotes []astock.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quotes")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Code", "Name", "Current", "Change", "Change %", "High", "Low", "Volume"},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			q.Code, q.Name,
			q.Current.String(),
			q.ChangeAbs.SignedString(),
			q.ChangePct.String() + "%",
			q.High.String(),
			q.Low.String(),
			fmt.Sprintf("%d", q.Volume),
		})
	}
	doc.Table(table)
	return doc.String()
}
