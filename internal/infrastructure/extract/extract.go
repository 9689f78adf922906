// Package extract obtiene texto plano de documentos de políticas subidos.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
	"github.com/vendorsahyog/riskguard-api/internal/domain"
)

var _ ports.TextExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor implementa TextExtractor para archivos .pdf y .txt.
// Cualquier otra extensión devuelve domain.ErrInvalidInput.
type DocumentExtractor struct{}

// NewDocumentExtractor construye el extractor.
func NewDocumentExtractor() *DocumentExtractor { return &DocumentExtractor{} }

// Extract devuelve el texto plano del documento según su extensión.
func (e *DocumentExtractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".txt":
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("%w: el archivo no contiene texto", domain.ErrInvalidInput)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: tipo de archivo no soportado (solo .pdf y .txt)", domain.ErrInvalidInput)
	}
}

// extractPDF concatena el texto de todas las páginas del PDF.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: PDF ilegible", domain.ErrInvalidInput)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue // página corrupta: seguir con las demás
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%w: el PDF no contiene texto extraíble", domain.ErrInvalidInput)
	}
	return text, nil
}
