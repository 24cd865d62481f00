package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Waddenn/streamflix/internal/catalog"
	"github.com/Waddenn/streamflix/internal/player"
	"github.com/Waddenn/streamflix/internal/tui/detail"
)

func newMovieCommand(ctx *commandContext) *cobra.Command {
	var play bool

	cmd := &cobra.Command{
		Use:   "movie <id>",
		Short: "Fetch one title's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
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
			d, err := client.Movie(fetchCtx, id)
			if err != nil {
				return fmt.Errorf("movie %d: %w", id, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderDetail(d, cfg.Images.BaseURL))

			trailer := detail.PickTrailer(d.Videos)
			if play {
				if trailer == nil {
					return fmt.Errorf("movie %d has no trailer", id)
				}
				logger, err := ctx.ensureLogger()
				if err != nil {
					return err
				}
				return player.Open(cfg.Player, d.DisplayTitle()+" - "+trailer.Name, trailer.Key, true, logger.Logger)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&play, "play", false, "Open the preselected trailer in the external player")
	return cmd
}

func renderDetail(d *catalog.Detail, imageBase string) string {
	var writers []string
	for _, w := range detail.Writers(d.Credits.Crew) {
		writers = append(writers, w.Name)
	}
	var cast []string
	for _, c := range detail.TopCast(d.Credits.Cast) {
		cast = append(cast, c.Name)
	}
	director := "-"
	if dir := detail.Director(d.Credits.Crew); dir != nil {
		director = dir.Name
	}
	trailer := "-"
	if v := detail.PickTrailer(d.Videos); v != nil {
		trailer = fmt.Sprintf("%s (%s) %s", v.Name, v.Type, player.WatchURL(v.Key))
	}

	rows := [][]string{
		{"Title", d.DisplayTitle()},
		{"Tagline", d.Tagline},
		{"Rating", d.Rating() + " / 10 (" + detail.FormatVotes(d.VoteCount) + ")"},
		{"Released", d.ReleaseDate},
		{"Runtime", detail.FormatRuntime(d.Runtime)},
		{"Director", director},
		{"Writers", joinNames(writers)},
		{"Cast", joinNames(cast)},
		{"Budget", detail.FormatCurrency(d.Budget)},
		{"Revenue", detail.FormatCurrency(d.Revenue)},
		{"Trailer", trailer},
		{"Similar", strconv.Itoa(len(detail.SimilarTitles(d.Similar)))},
		{"Backdrop", d.HeroImage(imageBase)},
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}
