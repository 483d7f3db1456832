package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/klabast/wb-services/squeezers-site/internal/app"
)

// HashPassword creates the auth file protecting the news admin.
func HashPassword() *cli.Command {
	return &cli.Command{
		Name:  "hash-password",
		Usage: "Create an auth.secret file with a hashed password (Argon2id) for news-admin.",
		Description: "The file is written to $AUTH_FILE or, if unset, auth.secret next to the binary.\n" +
			"news-admin requires Basic Auth as soon as this file exists.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite", Usage: "Overwrite existing auth file without asking"},
			&cli.BoolFlag{Name: "insecure-unmask-password", Usage: "Show password as plain text (INSECURE!)"},
		},
		Action: func(c *cli.Context) error {
			authFile, err := app.AuthFilePath()
			if err != nil {
				return err
			}

			stdin := bufio.NewReader(os.Stdin)

			fmt.Print("Enter username: ")
			username, err := readLine(stdin)
			if err != nil {
				return fmt.Errorf("error reading username: %w", err)
			}
			if username == "" {
				return cli.Exit("Username cannot be empty", 1)
			}

			var password, passwordConfirm string
			if c.Bool("insecure-unmask-password") {
				fmt.Fprintln(os.Stderr, "⚠️  WARNING: Password will be visible on screen!")
				fmt.Print("Enter password:   ")
				if password, err = readLine(stdin); err != nil {
					return fmt.Errorf("error reading password: %w", err)
				}
				fmt.Print("Confirm password: ")
				if passwordConfirm, err = readLine(stdin); err != nil {
					return fmt.Errorf("error reading password confirmation: %w", err)
				}
			} else {
				password = readPasswordWithMask(stdin, "Enter password:   ")
				passwordConfirm = readPasswordWithMask(stdin, "Confirm password: ")
			}

			if password == "" {
				return cli.Exit("Password cannot be empty", 1)
			}
			if password != passwordConfirm {
				return cli.Exit("Passwords do not match", 1)
			}

			return app.CreateAuthFile(authFile, username, password, c.Bool("overwrite"), stdin)
		},
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(stdin *bufio.Reader, prompt string) string {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		password, _ := readLine(stdin)
		return password
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fallback to hidden input
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}
	defer term.Restore(fd, oldState)

	var password []rune
	for {
		char, _, err := stdin.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Print("\r\n")
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			term.Restore(fd, oldState)
			fmt.Println()
			os.Exit(1)
		default:
			if char >= 32 && char != 127 {
				password = append(password, char)
				fmt.Print("*")
			}
		}
	}

	fmt.Print("\r\n")
	return string(password)
}
