package commands

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/klabast/wb-services/squeezers-site/internal/gallery"
	"github.com/klabast/wb-services/squeezers-site/internal/schedule"
	"github.com/klabast/wb-services/squeezers-site/internal/site"
)

// BuildPages renders every page template of a static directory into the
// site directory.
func BuildPages() *cli.Command {
	return &cli.Command{
		Name:      "build-pages",
		Usage:     "Resolve nav/footer includes and write the finished pages",
		ArgsUsage: "<static_dir> <site_dir>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("Usage: squeezers-site build-pages static/ _site/", 2)
			}
			pages, err := site.BuildPages(c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Built %d pages into %s\n", len(pages), c.Args().Get(1))
			return nil
		},
	}
}

// GenerateSchedule writes the club night page and optionally an ICS feed.
func GenerateSchedule() *cli.Command {
	return &cli.Command{
		Name:      "generate-schedule",
		Usage:     "Render the club night schedule page from events JSON",
		ArgsUsage: "<events.json> <nav.html> <output.html>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ics", Usage: "Also write the events as iCalendar to `FILE`"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return cli.Exit("Usage: squeezers-site generate-schedule events.json nav.html output.html", 2)
			}
			args := c.Args()
			events, err := schedule.Generate(args.Get(0), args.Get(1), args.Get(2))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Wrote %d events to %s\n", len(events), args.Get(2))

			if path := c.String("ics"); path != "" {
				if err := schedule.GenerateICS(path, events, time.Now()); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "Wrote calendar to %s\n", path)
			}
			return nil
		},
	}
}

// BuildGallery writes the gallery manifest.
func BuildGallery() *cli.Command {
	return &cli.Command{
		Name:  "build-gallery",
		Usage: "Write the gallery manifest for a directory of images",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "images-dir", Required: true, Usage: "Directory with the gallery images"},
			&cli.StringFlag{Name: "output", Required: true, Usage: "Path of the JSON manifest"},
		},
		Action: func(c *cli.Context) error {
			output := c.String("output")
			items, err := gallery.Build(c.String("images-dir"), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Wrote %d gallery items to %s\n", len(items), output)
			return nil
		},
	}
}
