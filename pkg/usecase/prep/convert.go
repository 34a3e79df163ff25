// Package prep holds the offline preprocessing pipelines that produce and
// analyze the normalized transcript format: AIM log conversion, same-author
// chunking, and frequency reporting. None of these affect retrieval
// semantics; they run before a transcript is ever loaded by the engine.
package prep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// aimDateLayout matches the trailing date of AIM session markers, e.g.
// "Session Start (obrigado:ollHONDAllo): Tue Mar 30 16:22:16 2004".
const aimDateLayout = "Jan 2 15:04:05 2006"

// ConvertOptions configures AIM log conversion.
type ConvertOptions struct {
	// Username is the log owner. Every other author is anonymized to
	// "other"; the owner keeps their (lower-cased) name.
	Username string
}

// Convert reads a raw AIM chat log and writes normalized
// CHATID,TIMESTAMP,AUTHOR,TEXT records. Session-start markers bump the chat
// id and set the timestamp for the lines that follow; meta lines (banners,
// separators, session ends) are dropped; anything else is expected to be an
// "author: text" line, and lines without a colon are skipped as cruft.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts ConvertOptions) error {
	if opts.Username == "" {
		return goerr.New("username is required")
	}
	owner := strings.ToLower(opts.Username)

	chatID := 0
	var unixTime int64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", strings.HasPrefix(line, "*"), strings.HasPrefix(line, "-"):
			continue

		case strings.HasPrefix(line, "Start of"), strings.HasPrefix(line, "Session Start"):
			chatID++
			if ts, ok := parseSessionDate(line); ok {
				unixTime = ts
			}
			// A failed date parse keeps the previous timestamp; timestamps
			// are provenance only.

		case strings.HasPrefix(line, "End of"), strings.HasPrefix(line, "Session Close"):
			continue

		default:
			author, text, found := strings.Cut(line, ":")
			if !found {
				logging.From(ctx).Debug("skipping colonless line", "line", line)
				continue
			}

			author = strings.ToLower(strings.TrimSpace(author))
			if author != owner {
				author = "other"
			}

			if _, err := fmt.Fprintf(w, "%d,%d,%s,%s\n", chatID, unixTime, author, strings.TrimSpace(text)); err != nil {
				return goerr.Wrap(err, "failed to write record")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return goerr.Wrap(err, "failed to read AIM log")
	}

	return nil
}

// parseSessionDate extracts the Unix timestamp from the trailing date of a
// session marker. AIM writes the date as the last 20 characters of the line.
func parseSessionDate(line string) (int64, bool) {
	if len(line) < 20 {
		return 0, false
	}

	// UTC keeps the output reproducible across machines; the engine treats
	// timestamps as opaque provenance anyway.
	t, err := time.ParseInLocation(aimDateLayout, strings.TrimSpace(line[len(line)-20:]), time.UTC)
	if err != nil {
		return 0, false
	}
	return t.Unix(), true
}
