package main

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kbdigital/ytselleradda/internal/model"
)

func renderTable(w io.Writer, listings []model.ChannelListing) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false

	tw.AppendHeader(table.Row{"ID", "LISTING", "NAME", "NICHE", "SUBS", "WATCH HRS", "MONETIZED", "PRICE ₹", "STATUS"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 8, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	for _, l := range listings {
		monetized := "No"
		if l.Monetized {
			monetized = "Yes"
		}
		tw.AppendRow(table.Row{
			l.ID,
			l.ListingID,
			l.Name,
			string(l.Niche),
			model.FormatCount(l.Subscribers),
			model.FormatCount(l.WatchHours),
			monetized,
			model.FormatCount(l.AskingPrice),
			string(l.Status),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "", "", "MATCHED", len(listings)})
	tw.Render()
}

func renderJSON(w io.Writer, listings []model.ChannelListing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listings)
}
