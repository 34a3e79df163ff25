package prep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// chunkSeparator joins merged message texts.
const chunkSeparator = " ... "

// Chunk merges consecutive records by the same author within the same chat
// into single records, so that the response walk lands on one combined reply
// instead of the first fragment of several. The chunk keeps the id,
// timestamp and author of its first record. Records that don't split into
// four fields are dropped — this tool produces the cleaned file the engine
// later refuses to load partially.
func Chunk(ctx context.Context, r io.Reader, w io.Writer) error {
	type pending struct {
		chatID    string
		timestamp string
		author    string
		text      string
	}

	var current *pending

	flush := func() error {
		if current == nil {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s,%s,%s,%s\n", current.chatID, current.timestamp, current.author, current.text)
		current = nil
		if err != nil {
			return goerr.Wrap(err, "failed to write chunked record")
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 4)
		if len(parts) < 4 {
			logging.From(ctx).Debug("dropping malformed record", "record", line)
			continue
		}

		if current != nil && parts[2] == current.author && parts[0] == current.chatID {
			current.text += chunkSeparator + parts[3]
			continue
		}

		if err := flush(); err != nil {
			return err
		}
		current = &pending{
			chatID:    parts[0],
			timestamp: parts[1],
			author:    parts[2],
			text:      parts[3],
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read transcript")
	}

	return flush()
}
