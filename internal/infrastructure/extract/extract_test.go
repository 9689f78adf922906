package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorsahyog/riskguard-api/internal/domain"
)

func TestExtract_TXT(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.Extract("politica.txt", []byte("  nuestra política de continuidad  "))
	require.NoError(t, err)
	assert.Equal(t, "nuestra política de continuidad", text)
}

func TestExtract_ExtensionMayuscula(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract("POLITICA.TXT", []byte("texto"))
	assert.NoError(t, err)
}

func TestExtract_FormatoNoSoportado(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract("politica.docx", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_PDFCorrupto(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract("politica.pdf", []byte("esto no es un pdf"))
	assert.Error(t, err)
}

func TestExtract_TXTVacio(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract("vacio.txt", []byte("   "))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
