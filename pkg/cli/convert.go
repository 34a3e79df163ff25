package cli

import (
	"context"
	"io"
	"os"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// openOutput returns the writer for a preprocessing command: the given file,
// or stdout when no path was set.
func openOutput(c *cli.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return c.Root().Writer, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	return f, func() { _ = f.Close() }, nil
}

// openInput opens the command's single positional argument.
func openInput(c *cli.Command) (*os.File, error) {
	path := c.Args().First()
	if path == "" {
		return nil, goerr.New("input file is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open input file", goerr.V("path", path))
	}
	return f, nil
}

func convertCommand() *cli.Command {
	var (
		cfg      config
		username string
		output   string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "Log owner's username (other authors are anonymized)",
			Required:    true,
			Sources:     cli.EnvVars("CAPRICA_USERNAME"),
			Destination: &username,
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
		Name:      "convert",
		Usage:     "Convert a raw AIM chat log to the normalized transcript format",
		ArgsUsage: "<aim-log>",
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

			return prep.Convert(ctx, in, out, prep.ConvertOptions{Username: username})
		},
	}
}
