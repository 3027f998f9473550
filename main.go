package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/gofish-bot/appstore/browser"
	"github.com/gofish-bot/appstore/catalog"
	"github.com/gofish-bot/appstore/config"
	"github.com/gofish-bot/appstore/log"
	"github.com/gofish-bot/appstore/models"
	"github.com/gofish-bot/appstore/printer"
	"github.com/gofish-bot/appstore/tui"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.L.Fatal(err)
	}

	err = newApp(&cfg, os.Stdout).Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}

var filterFlags = []cli.Flag{
	cli.StringSliceFlag{
		Name:  "platform",
		Usage: "Only apps for this platform (repeatable)",
	}, cli.StringSliceFlag{
		Name:  "genre",
		Usage: "Only apps of this genre (repeatable)",
	}, cli.StringSliceFlag{
		Name:  "type",
		Usage: "Only apps of this type (repeatable)",
	}, cli.StringFlag{
		Name:  "search, s",
		Usage: "Only apps whose name contains this text",
	},
}

func newApp(cfg *config.Config, out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "appstore"
	app.Usage = "Browse the app catalog"
	app.Version = "0.1.0"
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "manifest, m",
			Usage:       "Catalog manifest url",
			Value:       cfg.ManifestURL,
			Destination: &cfg.ManifestURL,
		}, cli.DurationFlag{
			Name:        "timeout",
			Usage:       "HTTP timeout, 0 for none",
			Value:       cfg.Timeout,
			Destination: &cfg.Timeout,
		}, cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &cfg.Verbose,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.Configure(os.Stderr, cfg.Verbose)
		return cfg.Validate()
	}

	app.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "List the apps passing the filters",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "format, f",
					Usage: "table, json or yaml",
					Value: printer.FormatTable,
				},
			}, filterFlags...),
			Action: func(c *cli.Context) error {
				view, err := loadView(context.Background(), *cfg, c)
				if err != nil {
					return err
				}
				format := c.String("format")
				if err := printer.Encode(out, format, view.Visible()); err != nil {
					return err
				}
				if format == printer.FormatTable {
					printer.Summary(out, len(view.Visible()), len(view.Records()))
				}
				return nil
			},
		},
		{
			Name:      "facets",
			Usage:     "Show the platform, genre and type values with app counts",
			ArgsUsage: "[platform|genre|type]",
			Flags:     filterFlags,
			Action: func(c *cli.Context) error {
				kinds := models.FacetKinds
				if c.NArg() > 0 {
					kind, err := models.ParseFacetKind(c.Args().First())
					if err != nil {
						return err
					}
					kinds = []models.FacetKind{kind}
				}

				view, err := loadView(context.Background(), *cfg, c)
				if err != nil {
					return err
				}
				for _, kind := range kinds {
					kind := kind
					counts := catalog.FacetCounts(view.Visible(), kind)
					printer.Facets(out, kind, view.Facets(kind), counts, func(v string) bool {
						return view.IsSelected(kind, v)
					})
				}
				return nil
			},
		},
		{
			Name:      "show",
			Usage:     "Show the details of an app",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				ctx := context.Background()
				app, err := findApp(ctx, *cfg, c)
				if err != nil {
					return err
				}
				ctx = log.WithField(ctx, "app", app.Name)
				description := catalog.FetchDescription(ctx, cfg.HTTPClient(), app.DescriptionRef, printer.InitialDescription(app))
				printer.Detail(out, app, description)
				return nil
			},
		},
		{
			Name:      "open",
			Usage:     "Open the homepage of an app",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				app, err := findApp(context.Background(), *cfg, c)
				if err != nil {
					return err
				}
				if strings.TrimSpace(app.URL) == "" {
					return errors.Errorf("%s has no url", app.Name)
				}
				return browser.Open(app.URL)
			},
		},
		{
			Name:   "browse",
			Usage:  "Browse the catalog interactively",
			Action: browse(cfg),
		},
	}
	app.Action = browse(cfg)

	return app
}

func browse(cfg *config.Config) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		ctx := context.Background()
		client := cfg.HTTPClient()
		reloader := catalog.NewReloader(catalog.NewLoader(cfg.ManifestURL, client))
		defer reloader.Stop()

		return tui.Run(tui.NewModel(ctx, tui.Config{
			Reloader: reloader,
			Client:   client,
			Open:     browser.Open,
		}))
	}
}

// loadView loads the catalog and applies the filter flags of c.
func loadView(ctx context.Context, cfg config.Config, c *cli.Context) (*catalog.View, error) {
	apps, err := catalog.NewLoader(cfg.ManifestURL, cfg.HTTPClient()).Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading catalog")
	}

	view := catalog.NewView()
	view.SetRecords(apps)
	for _, kind := range models.FacetKinds {
		for _, value := range c.StringSlice(kind.String()) {
			view.SelectFacet(kind, value, true)
		}
	}
	view.SetSearch(c.String("search"))
	return view, nil
}

func findApp(ctx context.Context, cfg config.Config, c *cli.Context) (models.App, error) {
	name := strings.TrimSpace(strings.Join(c.Args(), " "))
	if name == "" {
		return models.App{}, errors.New("an app name is required")
	}
	view, err := loadView(ctx, cfg, c)
	if err != nil {
		return models.App{}, err
	}
	app, ok := view.Find(name)
	if !ok {
		return models.App{}, errors.Errorf("no app named %q", name)
	}
	return app, nil
}
