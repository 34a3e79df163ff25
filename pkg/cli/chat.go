package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/usecase/dialogue"
	"github.com/chzyer/readline"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var (
		cfg        config
		persona    string
		transcript string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "persona",
			Aliases:     []string{"p"},
			Usage:       "Persona to talk with",
			Value:       "persona",
			Sources:     cli.EnvVars("CAPRICA_PERSONA"),
			Destination: &persona,
		},
		&cli.StringFlag{
			Name:        "transcript",
			Aliases:     []string{"t"},
			Usage:       "Path to the persona's transcript file",
			Sources:     cli.EnvVars("CAPRICA_TRANSCRIPT"),
			Destination: &transcript,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, lexiconFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive conversation with one persona",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			fc, err := cfg.loadFileConfig()
			if err != nil {
				return err
			}

			path, err := resolveTranscript(transcript, persona, fc)
			if err != nil {
				return err
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " loading transcript and lexicon..."
			sp.Start()

			store, err := loadStore(path)
			if err != nil {
				sp.Stop()
				return err
			}

			scorer, closeLexicon, err := cfg.newScorer(fc)
			if err != nil {
				sp.Stop()
				return err
			}
			defer closeLexicon()
			sp.Stop()

			session, err := dialogue.New(dialogue.NewInput{
				Persona: persona,
				Store:   store,
				Scorer:  scorer,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Talking with %s (%d lines). Type 'quit' or Ctrl-D to exit.\n", persona, store.Len())

			rl, err := readline.New("You say: ")
			if err != nil {
				return err
			}
			defer rl.Close()

			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) {
					continue
				}
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}

				if line == "" {
					continue
				}
				if line == "quit" {
					break
				}

				turn, err := session.Send(ctx, line)
				switch {
				case errors.Is(err, model.ErrNoMatch), errors.Is(err, model.ErrNoResponse):
					// Per-query failures end the turn, not the session.
					fmt.Fprintf(c.Root().Writer, "(no response found)\n")
					continue
				case err != nil:
					return err
				}

				fmt.Fprintf(c.Root().Writer, "%s: %s\n", turn.Speaker, turn.Response)
			}

			fmt.Fprintf(c.Root().Writer, "\nGoodbye!\n")
			return nil
		},
	}
}
