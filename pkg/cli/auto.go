package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/caprica-im/caprica/pkg/model"
	"github.com/caprica-im/caprica/pkg/usecase/dialogue"
	"github.com/urfave/cli/v3"
)

func autoCommand() *cli.Command {
	var (
		cfg         config
		personaA    string
		personaB    string
		transcriptA string
		transcriptB string
		seed        string
		maxTurns    int64
		cycleWindow int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "persona-a",
			Usage:       "First persona (asks first)",
			Value:       "a",
			Sources:     cli.EnvVars("CAPRICA_PERSONA_A"),
			Destination: &personaA,
		},
		&cli.StringFlag{
			Name:        "persona-b",
			Usage:       "Second persona",
			Value:       "b",
			Sources:     cli.EnvVars("CAPRICA_PERSONA_B"),
			Destination: &personaB,
		},
		&cli.StringFlag{
			Name:        "transcript-a",
			Usage:       "Path to the first persona's transcript",
			Sources:     cli.EnvVars("CAPRICA_TRANSCRIPT_A"),
			Destination: &transcriptA,
		},
		&cli.StringFlag{
			Name:        "transcript-b",
			Usage:       "Path to the second persona's transcript",
			Sources:     cli.EnvVars("CAPRICA_TRANSCRIPT_B"),
			Destination: &transcriptB,
		},
		&cli.StringFlag{
			Name:        "seed",
			Aliases:     []string{"s"},
			Usage:       "Seed query for the first turn",
			Value:       "pics",
			Sources:     cli.EnvVars("CAPRICA_SEED"),
			Destination: &seed,
		},
		&cli.IntFlag{
			Name:        "max-turns",
			Usage:       "Maximum number of turns before the dialogue stops",
			Value:       50,
			Sources:     cli.EnvVars("CAPRICA_MAX_TURNS"),
			Destination: &maxTurns,
		},
		&cli.IntFlag{
			Name:        "cycle-window",
			Usage:       "How many recent queries per persona are checked for loops",
			Value:       10,
			Sources:     cli.EnvVars("CAPRICA_CYCLE_WINDOW"),
			Destination: &cycleWindow,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, lexiconFlags(&cfg)...)

	return &cli.Command{
		Name:  "auto",
		Usage: "Unattended dialogue between two personas' transcripts",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupContext(ctx)

			fc, err := cfg.loadFileConfig()
			if err != nil {
				return err
			}

			pathA, err := resolveTranscript(transcriptA, personaA, fc)
			if err != nil {
				return err
			}
			pathB, err := resolveTranscript(transcriptB, personaB, fc)
			if err != nil {
				return err
			}

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " loading transcripts and lexicon..."
			sp.Start()

			storeA, err := loadStore(pathA)
			if err != nil {
				sp.Stop()
				return err
			}
			storeB, err := loadStore(pathB)
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

			session, err := dialogue.NewAuto(dialogue.AutoInput{
				PersonaA:    personaA,
				StoreA:      storeA,
				PersonaB:    personaB,
				StoreB:      storeB,
				Scorer:      scorer,
				Seed:        seed,
				MaxTurns:    int(maxTurns),
				CycleWindow: int(cycleWindow),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s: %s\n", personaA, seed)

			for {
				turn, err := session.Next(ctx)
				if errors.Is(err, model.ErrNoMatch) || errors.Is(err, model.ErrNoResponse) {
					fmt.Fprintf(c.Root().Writer, "No more responses available.\n")
					break
				}
				if err != nil {
					return err
				}
				if turn == nil {
					break
				}

				fmt.Fprintf(c.Root().Writer, "%s: %s\n", turn.Speaker, turn.Response)
			}

			switch session.EndReason() {
			case dialogue.EndReasonCycle:
				fmt.Fprintf(c.Root().Writer, "\nDialogue ended: conversational loop detected.\n")
			case dialogue.EndReasonMaxTurns:
				fmt.Fprintf(c.Root().Writer, "\nDialogue ended: turn limit reached.\n")
			}

			return nil
		},
	}
}
