package ports

import "context"

// CompletionService define el puerto de salida hacia el servicio de
// completado de texto (LLM). Cualquier adaptador (Groq, Gemini, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato.
//
// Complete envía un prompt y devuelve el texto crudo del modelo. El contexto
// debe llevar un timeout: la llamada externa es el único punto de suspensión
// largo del request.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
	// ModelName identifica el modelo usado, para auditoría del registro.
	ModelName() string
}
