package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  Blinding Lights  \n"))

	got, err := promptText(reader, &out, "Title")
	require.NoError(t, err)

	assert.Equal(t, "Blinding Lights", got)
	assert.Contains(t, out.String(), "Title")
}

func TestPromptText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	got, err := promptText(reader, &out, "Title")
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestPromptText_EOFEmpty(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := promptText(reader, &out, "Title")
	assert.Error(t, err)
}

func TestPromptPassword_UsesSeam(t *testing.T) {
	restore := readPassword
	defer func() { readPassword = restore }()
	readPassword = func() ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	got, err := promptPassword(&out, "Password")
	require.NoError(t, err)

	assert.Equal(t, "secret", got)
	assert.Contains(t, out.String(), "Password: ")
}
