package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/themizzi/storefront-e2e/internal/cli"
	"github.com/themizzi/storefront-e2e/internal/testdata"
)

var version = "0.1.0"

// fixturesFlag selects the fixture directory for every command that reads
// fixture files
func fixturesFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "fixtures",
		Usage: "directory holding the JSON fixture files",
		Value: testdata.DefaultDir(),
	}
}

// InstallCommand returns the browser installation command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the Playwright driver and Chromium",
		Action: func(c *cli.Context) error {
			return internalcli.RunInstall()
		},
	}
}

// SetupCommand returns the global authentication setup command
func SetupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Log in once and persist the browser storage state for authenticated test runs",
		Flags: []cli.Flag{
			fixturesFlag(),
			&cli.StringFlag{
				Name:  "user",
				Usage: "user type from users.json to authenticate as",
				Value: "standard",
			},
		},
		Action: func(c *cli.Context) error {
			return internalcli.RunSetup(internalcli.SetupOptions{
				FixturesDir: c.String("fixtures"),
				UserType:    c.String("user"),
				Getenv:      os.Getenv,
			})
		},
	}
}

// FixturesCommand returns the fixture validation command
func FixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Fixture file utilities",
		Subcommands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Parse every fixture file and resolve every credential",
				Flags: []cli.Flag{fixturesFlag()},
				Action: func(c *cli.Context) error {
					return internalcli.RunFixturesCheck(c.String("fixtures"), os.Getenv)
				},
			},
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefront-e2e",
		Usage:   "Browser test suite management tool",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			SetupCommand(),
			FixturesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
