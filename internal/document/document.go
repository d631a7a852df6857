package document

import (
	"fmt"
	"path/filepath"

	"rsc.io/pdf"
)

// Letter-size fallback for pages with no resolvable MediaBox, in
// PDF points.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// Source is the document capability the HTTP layer needs: how many
// pages there are and how big each one is. Page numbers are 0-indexed;
// PageSize reports ok=false for an out-of-range page.
type Source interface {
	PageCount() int
	PageSize(page int) (width, height float64, ok bool)
}

// PDF is a Source backed by a PDF file.
type PDF struct {
	path   string
	reader *pdf.Reader
}

// Open opens the PDF at path. Failure here is fatal to startup; there
// is nothing to present without a document.
func Open(path string) (*PDF, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	return &PDF{path: path, reader: reader}, nil
}

// Name returns the document's base file name.
func (d *PDF) Name() string {
	return filepath.Base(d.path)
}

// Path returns the document's path on disk.
func (d *PDF) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *PDF) PageCount() int {
	return d.reader.NumPage()
}

// PageSize returns the media-box dimensions of a 0-indexed page in PDF
// points. The media box may live on an ancestor in the page tree, so
// the parent chain is walked; a page with no resolvable box reports
// US-Letter dimensions.
func (d *PDF) PageSize(page int) (width, height float64, ok bool) {
	if page < 0 || page >= d.reader.NumPage() {
		return 0, 0, false
	}
	v := d.reader.Page(page + 1).V
	for !v.IsNull() {
		if box := v.Key("MediaBox"); box.Len() == 4 {
			w := box.Index(2).Float64() - box.Index(0).Float64()
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if w > 0 && h > 0 {
				return w, h, true
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageWidth, defaultPageHeight, true
}
