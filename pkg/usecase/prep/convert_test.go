package prep_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/m-mizutani/gt"
)

func TestConvert(t *testing.T) {
	input := strings.Join([]string{
		"Session Start (obrigado:ollHONDAllo): Tue Mar 30 16:22:16 2004",
		"*** system notice",
		"--- separator",
		"",
		"Obrigado: hey man",
		"ollHONDAllo: what's up",
		"line without any colon marker is cruft",
		"Session Close (ollHONDAllo): Tue Mar 30 16:40:01 2004",
		"Start of ollHONDAllo buffer: Sat Sep 29 02:07:00 2001",
		"obrigado: you there",
	}, "\n")

	var out bytes.Buffer
	err := prep.Convert(context.Background(), strings.NewReader(input), &out, prep.ConvertOptions{
		Username: "obrigado",
	})
	gt.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, len(lines), 3)

	// The owner keeps their name, everyone else becomes "other".
	gt.Equal(t, lines[0], "1,1080663736,obrigado,hey man")
	gt.Equal(t, lines[1], "1,1080663736,other,what's up")

	// The second session marker bumps the chat id and rewinds the timestamp.
	gt.Equal(t, lines[2], "2,1001729220,obrigado,you there")
}

func TestConvertKeepsTimestampOnBadDate(t *testing.T) {
	input := strings.Join([]string{
		"Session Start (obrigado:x): Tue Mar 30 16:22:16 2004",
		"obrigado: first",
		"Session Start (obrigado:x): not a date at all!!",
		"obrigado: second",
	}, "\n")

	var out bytes.Buffer
	err := prep.Convert(context.Background(), strings.NewReader(input), &out, prep.ConvertOptions{
		Username: "obrigado",
	})
	gt.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, len(lines), 2)
	gt.S(t, lines[0]).Contains("1,1080663736,")
	gt.S(t, lines[1]).Contains("2,1080663736,")
}

func TestConvertRequiresUsername(t *testing.T) {
	var out bytes.Buffer
	err := prep.Convert(context.Background(), strings.NewReader(""), &out, prep.ConvertOptions{})
	gt.Error(t, err)
}
