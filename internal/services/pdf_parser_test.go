package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResumeParserService(t *testing.T) {
	parser := NewResumeParserService()

	t.Run(`missing file reports a clear error`, func(t *testing.T) {
		_, err := parser.Extract(filepath.Join(t.TempDir(), "nope.pdf"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "does not exist")
	})

	t.Run(`non-pdf content fails to open`, func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fake.pdf")
		require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0644))

		_, err := parser.Extract(path)
		require.Error(t, err)
	})
}

func TestCleanText(t *testing.T) {
	t.Run(`collapses blank lines and trims whitespace`, func(t *testing.T) {
		got := cleanText("  Ivan Petrov  \n\n\n  Go Developer \n\n 3 years experience ")
		require.Equal(t, "Ivan Petrov\nGo Developer\n3 years experience", got)
	})

	t.Run(`empty input stays empty`, func(t *testing.T) {
		require.Equal(t, "", cleanText("   \n \n "))
	})
}
