package cli

import (
	"context"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/urfave/cli/v3"
)

func freqCommand() *cli.Command {
	var (
		cfg      config
		mode     string
		minCount int64
		output   string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format (bigrams, words)",
			Value:       string(prep.FrequencyBigrams),
			Destination: &mode,
		},
		&cli.IntFlag{
			Name:        "min-freq",
			Aliases:     []string{"m"},
			Usage:       "Minimum frequency to include",
			Value:       2,
			Destination: &minCount,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file (default: stdout)",
			Destination: &output,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "freq",
		Usage:     "Report word or bigram frequencies in a transcript",
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

			return prep.Frequency(ctx, in, out, prep.FrequencyOptions{
				Mode:     prep.FrequencyMode(mode),
				MinCount: int(minCount),
			})
		},
	}
}
