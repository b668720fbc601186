package label

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	r, _ := newTestRenderer(t)
	_, err := r.Compose(kitProduct(), "499")
	require.NoError(t, err)

	path, err := r.WritePDF("ABC123")

	require.NoError(t, err)
	assert.Equal(t, r.PDFPath("ABC123"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "pdf header missing")
}

func TestWritePDFMissingLabelImage(t *testing.T) {
	r, _ := newTestRenderer(t)

	_, err := r.WritePDF("GHOST")

	assert.Error(t, err)
}
