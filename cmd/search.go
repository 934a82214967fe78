package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kunalnano/yt-search/pkg/core"
	"github.com/kunalnano/yt-search/pkg/log"
	"github.com/kunalnano/yt-search/pkg/render"
	"github.com/kunalnano/yt-search/pkg/session"
	"github.com/urfave/cli/v3"
)

// SearchCommand creates the one-shot search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Search once and print the results",
		ArgsUsage: "<terms>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Result order: views, date or relevance",
			},
			&cli.StringFlag{
				Name:  "duration",
				Usage: "Length bucket: short, medium or long",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Upload window: today, week, month or year",
			},
			&cli.BoolFlag{
				Name:  "hd",
				Usage: "Request HD results",
			},
			&cli.BoolFlag{
				Name:    "exact",
				Aliases: []string{"e"},
				Usage:   "Match the terms as one exact phrase",
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Keep only results from this channel",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Cap the number of results (overrides max_results)",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Show description snippets",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSearch(ctx, c)
		},
	}
}

func runSearch(ctx context.Context, c *cli.Command) error {
	if c.Bool("debug") {
		log.SetGlobalDebug(true)
	}

	raw := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if raw == "" {
		return fmt.Errorf("no search terms given")
	}
	if channel := c.String("channel"); channel != "" {
		raw += " channel:" + channel
	}

	explicit, err := filtersFromFlags(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if n := c.Int("limit"); n > 0 {
		cfg.MaxResults = int(n)
	}

	sess := session.New(newService(cfg))
	sess.SetDescriptionsVisible(cfg.ShowDescriptions || c.Bool("desc"))

	if c.Bool("exact") {
		err = sess.SearchExact(ctx, raw, explicit)
	} else {
		err = sess.Search(ctx, raw, explicit)
	}
	if err != nil {
		return err
	}

	printResults(render.Rows(sess.Results(), sess.DescriptionsVisible()))
	return nil
}

// filtersFromFlags turns the filter flags into an explicit filter set,
// rejecting invalid values before anything is fetched.
func filtersFromFlags(c *cli.Command) (core.FilterSet, error) {
	var f core.FilterSet

	if v := c.String("sort"); v != "" {
		o, err := core.ParseSortOrder(v)
		if err != nil {
			return core.FilterSet{}, err
		}
		f.Sort = o
	}
	if v := c.String("duration"); v != "" {
		d, err := core.ParseDurationFilter(v)
		if err != nil {
			return core.FilterSet{}, err
		}
		f.Duration = d
	}
	if v := c.String("date"); v != "" {
		d, err := core.ParseDateFilter(v)
		if err != nil {
			return core.FilterSet{}, err
		}
		f.Date = d
	}
	f.HD = c.Bool("hd")

	return f, nil
}
