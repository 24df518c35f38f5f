package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/laguz/internal"
	"github.com/starford/laguz/internal/command"
	pkgconfig "github.com/starford/laguz/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if cmd.IsSet("config") {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	// Default path missing: run on defaults.
	return cfg, nil
}

func runCommand(ctx context.Context, cmd *cli.Command, c command.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return internal.Run(ctx,
		internal.WithConfig(cfg),
		internal.WithCommand(c),
	)
}

func notenameArg(cmd *cli.Command) string {
	return cmd.Args().First()
}

func main() {
	cmd := &cli.Command{
		Name:  "laguz",
		Usage: "Notebook for short named notes stored in SQLite; run without a command to display all notes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCommand(ctx, cmd, command.Command{Kind: command.DisplayAll})
		},
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a new note; prompts for the note text, finished with `" + command.EndMarker + "`",
				ArgsUsage: "<notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.Add, Name: notenameArg(cmd)})
				},
			},
			{
				Name:      "del",
				Usage:     "Delete the note with the given notename",
				ArgsUsage: "<notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.Delete, Name: notenameArg(cmd)})
				},
			},
			{
				Name:  "del-all",
				Usage: "Delete every note in the notebook",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.DeleteAll})
				},
			},
			{
				Name:      "clear",
				Usage:     "Blank the content of a note, keeping the notename",
				ArgsUsage: "<notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.Clear, Name: notenameArg(cmd)})
				},
			},
			{
				Name:      "upd",
				Usage:     "Replace a note's content; prompts for the new text, finished with `" + command.EndMarker + "`",
				ArgsUsage: "<notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.UpdateNote, Name: notenameArg(cmd)})
				},
			},
			{
				Name:      "upd-notename",
				Usage:     "Rename a note",
				ArgsUsage: "<notename> <new-notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{
						Kind:    command.Rename,
						Name:    cmd.Args().Get(0),
						NewName: cmd.Args().Get(1),
					})
				},
			},
			{
				Name:      "display",
				Usage:     "Display one note with its id, notename, and content",
				ArgsUsage: "<notename>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runCommand(ctx, cmd, command.Command{Kind: command.Display, Name: notenameArg(cmd)})
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the notebook REST API over HTTP",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return internal.Run(ctx, internal.WithConfig(cfg), internal.WithServe())
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve notebook tools over MCP stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					return internal.Run(ctx, internal.WithConfig(cfg), internal.WithMCP())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
