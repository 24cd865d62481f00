package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/tui/loader"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var showItems bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch every browse category once and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.client()
			if err != nil {
				return err
			}

			fetchCtx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout())
			defer cancel()
			snap := loader.FetchAll(fetchCtx, client)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSnapshot(snap))
			if snap.Featured != nil {
				fmt.Fprintf(out, "Featured: %s (%s)\n", snap.Featured.DisplayTitle(), snap.Featured.Rating())
			} else {
				fmt.Fprintln(out, "Featured: none")
			}

			if showItems {
				for _, c := range catalog.Categories {
					r := snap.Results[c]
					if len(r.Items) == 0 {
						continue
					}
					fmt.Fprintf(out, "\n%s\n%s\n", r.Label, renderItems(r.Items, cfg.Images.BaseURL))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showItems, "items", false, "List the items of every category")
	return cmd
}

func renderSnapshot(snap loader.Snapshot) string {
	rows := make([][]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		r := snap.Results[c]
		count := len(r.Items)
		if c == catalog.Genres {
			count = len(r.Genres)
		}
		note := ""
		if r.Err != nil {
			note = r.Err.Error()
		}
		rows = append(rows, []string{r.Label, r.Status.String(), strconv.Itoa(count), note})
	}
	return renderTable(
		[]string{"Category", "Status", "Count", "Error"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func renderItems(items []catalog.Item, imageBase string) string {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		year := ""
		if y := it.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(it.ID),
			it.DisplayTitle(),
			year,
			it.Rating(),
			it.CardImage(imageBase),
		})
	}
	return renderTable(
		[]string{"#", "ID", "Title", "Year", "Rating", "Poster"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
	)
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
