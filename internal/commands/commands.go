// Package commands holds the subcommands of the squeezers-site binary.
package commands

import "github.com/urfave/cli/v2"

// All returns every subcommand. adminHTML is the page served by news-admin.
func All(adminHTML []byte) []*cli.Command {
	return []*cli.Command{
		BuildPages(),
		GenerateSchedule(),
		BuildGallery(),
		NewsAdmin(adminHTML),
		NewsTUI(),
		HashPassword(),
	}
}

// NewApp returns the CLI application.
func NewApp(adminHTML []byte) *cli.App {
	return &cli.App{
		Name:     "squeezers-site",
		Usage:    "Build and maintain the Ohmoor Squeezers website",
		Commands: All(adminHTML),
	}
}
