package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cpfer/cmd/app/commands"
)

func getCPFCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate valid CPF numbers, optionally completing a partial body",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "body",
					Aliases: []string{"b"},
					Value:   "",
					Usage:   "Nine-slot body mask; '_' or '?' marks a random digit (e.g. 123.456.___)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "Number of CPFs to generate",
				},
				&cli.BoolFlag{
					Name:    "unformatted",
					Aliases: []string{"u"},
					Value:   false,
					Usage:   "Print bare digits instead of DDD.DDD.DDD-DD",
				},
				formatFlag(),
				metricsFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer(cmd)
				if err != nil {
					return err
				}
				defer finishRun(ctx, container, os.Stderr)

				cpfUseCase, err := container.CPFUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					cpfUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("body"),
					int(cmd.Int("count")),
					cmd.Bool("unformatted"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate CPF numbers given as arguments, in a file, or on stdin",
			ArgsUsage: "[CPF...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Value:   "",
					Usage:   "Read one candidate per line from this file ('-' for stdin)",
				},
				formatFlag(),
				metricsFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer(cmd)
				if err != nil {
					return err
				}
				defer finishRun(ctx, container, os.Stderr)

				cpfUseCase, err := container.CPFUseCase()
				if err != nil {
					return err
				}

				stdio := commands.DefaultIO()
				candidates, err := commands.LoadCandidates(cmd.String("file"), stdio.Reader, cmd.Args().Slice())
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					cpfUseCase,
					container.Logger(),
					stdio.Writer,
					candidates,
					cmd.String("format"),
				)
			},
		},
	}
}
