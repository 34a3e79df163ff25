package cli

import (
	"context"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/urfave/cli/v3"
)

func chunkCommand() *cli.Command {
	var (
		cfg    config
		output string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default: stdout)",
			Destination: &output,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "chunk",
		Usage:     "Merge consecutive same-author messages into single records",
		ArgsUsage: "<transcript>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			in, err := openInput(c)
			if err != nil {
				return err
			}
			defer in.Close()

			out, closeOut, err := openOutput(c, output)
			if err != nil {
				return err
			}
			defer closeOut()

			return prep.Chunk(ctx, in, out)
		},
	}
}
