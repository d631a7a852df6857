package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestPDF builds a minimal two-page PDF. Page one inherits its
// media box from the page tree; page two overrides it.
func writeTestPDF(t *testing.T) string {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 /MediaBox [0 0 612 792] >>",
		"<< /Type /Page /Parent 2 0 R >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 400 200] >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefOffset)

	path := filepath.Join(t.TempDir(), "test.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestPDFSource(t *testing.T) {
	doc, err := Open(writeTestPDF(t))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.PageCount())
	assert.Equal(t, "test.pdf", doc.Name())

	t.Run("media box inherited from page tree", func(t *testing.T) {
		w, h, ok := doc.PageSize(0)
		require.True(t, ok)
		assert.Equal(t, 612.0, w)
		assert.Equal(t, 792.0, h)
	})

	t.Run("media box on the page itself", func(t *testing.T) {
		w, h, ok := doc.PageSize(1)
		require.True(t, ok)
		assert.Equal(t, 400.0, w)
		assert.Equal(t, 200.0, h)
	})

	t.Run("out of range", func(t *testing.T) {
		_, _, ok := doc.PageSize(2)
		assert.False(t, ok)
		_, _, ok = doc.PageSize(-1)
		assert.False(t, ok)
	})
}
