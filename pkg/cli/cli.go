package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "caprica",
		Usage: "Reconstruct conversations from historical IM transcripts",
		Commands: []*cli.Command{
			chatCommand(),
			autoCommand(),
			convertCommand(),
			chunkCommand(),
			freqCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
