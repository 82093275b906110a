package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompt(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_Text(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("  hello world  \n")
	got, err := p.Text("Слово")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestPrompter_Text_BlankCancels(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("   \n")
	_, err := p.Text("Слово")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestPrompter_Text_LastLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("cat")
	got, err := p.Text("Слово")
	require.NoError(t, err)
	assert.Equal(t, "cat", got)
}

func TestPrompter_ID_RetriesUntilValid(t *testing.T) {
	t.Parallel()

	p, out := newPrompt("abc\n-5\n0\n42\n")
	id, err := p.ID("ID")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 3, strings.Count(out.String(), "додатне ціле"))
}

func TestPrompter_ID_BlankCancels(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("\n")
	_, err := p.ID("ID")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestPrompter_Confirm(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"так\n": true,
		"Т\n":   true,
		"yes\n": true,
		"y\n":   true,
		"1\n":   true,
		"ні\n":  false,
		"no\n":  false,
		"\n":    false,
		"2\n":   false,
	}

	for input, want := range cases {
		p, _ := newPrompt(input)
		got, err := p.Confirm("Видалити?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestPrompter_Choice(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("3\n")
	n, err := p.Choice("Ваш вибір", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPrompter_Choice_BlankMeansBack(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("\n")
	n, err := p.Choice("Ваш вибір", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPrompter_Choice_OutOfRange(t *testing.T) {
	t.Parallel()

	p, _ := newPrompt("9\n2\n")
	n, err := p.Choice("Ваш вибір", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
