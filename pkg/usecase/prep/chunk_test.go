package prep_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/m-mizutani/gt"
)

func TestChunk(t *testing.T) {
	input := strings.Join([]string{
		"1,100,a,hey",
		"1,101,a,you there",
		"1,102,a,hello??",
		"1,103,b,sorry was afk",
		"1,104,a,np",
	}, "\n")

	var out bytes.Buffer
	gt.NoError(t, prep.Chunk(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, lines, []string{
		"1,100,a,hey ... you there ... hello??",
		"1,103,b,sorry was afk",
		"1,104,a,np",
	})
}

func TestChunkRespectsChatBoundary(t *testing.T) {
	// Same author across different chats must not merge.
	input := strings.Join([]string{
		"1,100,a,see ya",
		"2,200,a,hey again",
	}, "\n")

	var out bytes.Buffer
	gt.NoError(t, prep.Chunk(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, len(lines), 2)
}

func TestChunkDropsMalformed(t *testing.T) {
	input := strings.Join([]string{
		"1,100,a,hello",
		"garbage line",
		"1,101,b,hi",
	}, "\n")

	var out bytes.Buffer
	gt.NoError(t, prep.Chunk(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, lines, []string{
		"1,100,a,hello",
		"1,101,b,hi",
	})
}

func TestChunkEmptyInput(t *testing.T) {
	var out bytes.Buffer
	gt.NoError(t, prep.Chunk(context.Background(), strings.NewReader(""), &out))
	gt.Equal(t, out.Len(), 0)
}
