package commands

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/klabast/wb-services/squeezers-site/internal/app"
	"github.com/klabast/wb-services/squeezers-site/internal/news"
	"github.com/klabast/wb-services/squeezers-site/internal/tui"
)

func newsFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Value:   news.DefaultFile,
		EnvVars: []string{"NEWS_FILE"},
		Usage:   "Path to news.json",
	}
}

func newsStore(c *cli.Context) (*news.Store, error) {
	path, err := filepath.Abs(c.String("file"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve news file: %w", err)
	}
	return news.NewStore(path), nil
}

// NewsAdmin serves the browser editor for news.json.
func NewsAdmin(adminHTML []byte) *cli.Command {
	return &cli.Command{
		Name:  "news-admin",
		Usage: "Run the local web editor for news.json",
		Flags: []cli.Flag{
			newsFileFlag(),
			&cli.StringFlag{Name: "host", Value: app.DefaultHost, EnvVars: []string{"NEWS_ADMIN_HOST"}, Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: app.DefaultPort, EnvVars: []string{"NEWS_ADMIN_PORT"}, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			store, err := newsStore(c)
			if err != nil {
				return err
			}

			authFile, err := app.AuthFilePath()
			if err != nil {
				return err
			}
			auth, err := app.LoadAuth(authFile)
			if err != nil {
				return fmt.Errorf("failed to load auth credentials: %w", err)
			}

			srv := app.NewServer(store, adminHTML, auth)
			addr := net.JoinHostPort(c.String("host"), strconv.Itoa(c.Int("port")))

			log.Printf("News admin running on http://%s", addr)
			log.Printf("Editing: %s", store.Path)
			return http.ListenAndServe(addr, srv.Routes())
		},
	}
}

// NewsTUI runs the terminal editor for news.json.
func NewsTUI() *cli.Command {
	return &cli.Command{
		Name:  "news-tui",
		Usage: "Edit news.json in the terminal",
		Flags: []cli.Flag{newsFileFlag()},
		Action: func(c *cli.Context) error {
			store, err := newsStore(c)
			if err != nil {
				return err
			}
			return tui.Run(store)
		},
	}
}
