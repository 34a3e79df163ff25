package prep_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/caprica-im/caprica/pkg/usecase/prep"
	"github.com/m-mizutani/gt"
)

func TestFrequencyWords(t *testing.T) {
	input := strings.Join([]string{
		"1,100,a,the weather the weather",
		"1,101,b,nice weather",
	}, "\n")

	var out bytes.Buffer
	err := prep.Frequency(context.Background(), strings.NewReader(input), &out, prep.FrequencyOptions{
		Mode:     prep.FrequencyWords,
		MinCount: 2,
	})
	gt.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, lines, []string{
		"weather,3",
		"the,2",
	})
}

func TestFrequencyBigrams(t *testing.T) {
	input := strings.Join([]string{
		"1,100,a,the weather is nice",
		"1,101,b,the weather sucks",
	}, "\n")

	var out bytes.Buffer
	err := prep.Frequency(context.Background(), strings.NewReader(input), &out, prep.FrequencyOptions{
		Mode:     prep.FrequencyBigrams,
		MinCount: 2,
	})
	gt.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	gt.Equal(t, lines, []string{"the weather,2"})
}

func TestFrequencyBigramsSkipNumbers(t *testing.T) {
	input := "1,100,a,call me at 8 at 8 at 8\n"

	var out bytes.Buffer
	err := prep.Frequency(context.Background(), strings.NewReader(input), &out, prep.FrequencyOptions{
		Mode:     prep.FrequencyBigrams,
		MinCount: 2,
	})
	gt.NoError(t, err)

	gt.S(t, out.String()).NotContains("8")
}

func TestFrequencyUnknownMode(t *testing.T) {
	var out bytes.Buffer
	err := prep.Frequency(context.Background(), strings.NewReader(""), &out, prep.FrequencyOptions{
		Mode: "trigrams",
	})
	gt.Error(t, err)
}
