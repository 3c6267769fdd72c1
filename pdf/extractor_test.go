package pdf_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docchat"
	"github.com/fwojciec/docchat/pdf"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns an error for data that is not a pdf", func(t *testing.T) {
		t.Parallel()
		e := pdf.NewExtractor()
		_, err := e.Extract(context.Background(), docchat.File{
			Name: "broken.pdf",
			Kind: docchat.KindPDF,
			Data: []byte("this is not a pdf"),
		})
		assert.Error(t, err)
	})

	t.Run("returns an error for truncated pdf data", func(t *testing.T) {
		t.Parallel()
		e := pdf.NewExtractor()
		_, err := e.Extract(context.Background(), docchat.File{
			Name: "truncated.pdf",
			Kind: docchat.KindPDF,
			Data: []byte("%PDF-1.4\n1 0 obj\n"),
		})
		assert.Error(t, err)
	})
}
