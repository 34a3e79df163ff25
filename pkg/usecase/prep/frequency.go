package prep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/m-mizutani/goerr/v2"
)

// FrequencyMode selects what a frequency report counts.
type FrequencyMode string

const (
	// FrequencyWords counts individual tokens.
	FrequencyWords FrequencyMode = "words"
	// FrequencyBigrams counts adjacent token pairs across the whole
	// transcript, with pure-number tokens excluded.
	FrequencyBigrams FrequencyMode = "bigrams"
)

// FrequencyOptions configures a frequency report.
type FrequencyOptions struct {
	Mode FrequencyMode
	// MinCount is the smallest count included in the report. Values below 1
	// are treated as 1.
	MinCount int
}

// Frequency reads a normalized transcript and writes an "item,count" report
// sorted by descending count (ties alphabetically). Tokenization is the same
// normalization the engine scores with, so the report reflects what the
// matcher actually sees. Malformed records are skipped; this is an analysis
// tool, not a loader.
func Frequency(ctx context.Context, r io.Reader, w io.Writer, opts FrequencyOptions) error {
	switch opts.Mode {
	case FrequencyWords, FrequencyBigrams:
	case "":
		opts.Mode = FrequencyBigrams
	default:
		return goerr.New("unknown frequency mode", goerr.V("mode", opts.Mode))
	}
	if opts.MinCount < 1 {
		opts.MinCount = 1
	}

	var tokens []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 4)
		if len(parts) < 4 {
			continue
		}
		tokens = append(tokens, transcript.Tokenize(parts[3])...)
	}
	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read transcript")
	}

	counts := map[string]int{}
	switch opts.Mode {
	case FrequencyWords:
		for _, token := range tokens {
			counts[token]++
		}
	case FrequencyBigrams:
		for i := 0; i+1 < len(tokens); i++ {
			if isNumeric(tokens[i]) || isNumeric(tokens[i+1]) {
				continue
			}
			counts[tokens[i]+" "+tokens[i+1]]++
		}
	}

	type entry struct {
		item  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for item, count := range counts {
		if count >= opts.MinCount {
			entries = append(entries, entry{item: item, count: count})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].item < entries[j].item
	})

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s,%d\n", e.item, e.count); err != nil {
			return goerr.Wrap(err, "failed to write report")
		}
	}

	return nil
}

func isNumeric(token string) bool {
	for _, r := range token {
		if !unicode.IsNumber(r) {
			return false
		}
	}
	return len(token) > 0
}
