package ports

// TextExtractor extrae texto plano de un documento subido (.pdf o .txt).
// Un tipo de archivo no soportado devuelve domain.ErrInvalidInput.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}
