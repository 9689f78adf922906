package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vendorsahyog/riskguard-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa CompletionService.
var _ ports.CompletionService = (*GroqService)(nil)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1/chat/completions"
	groqDefaultModel = "llama-3.1-8b-instant"

	// Temperatura baja: los prompts exigen JSON con esquema fijo y queremos
	// respuestas lo más deterministas posible.
	groqTemperature = 0.2
)

// GroqService adaptador que implementa CompletionService contra la API de
// Groq (compatible con el formato chat/completions de OpenAI). Usa net/http
// de la librería estándar.
type GroqService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGroqService construye el adaptador. model vacío usa llama-3.1-8b-instant;
// baseURL vacío usa el endpoint público de Groq.
func NewGroqService(apiKey, model, baseURL string) *GroqService {
	if model == "" {
		model = groqDefaultModel
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return &GroqService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ModelName devuelve el identificador del modelo configurado.
func (s *GroqService) ModelName() string {
	return s.model
}

// ── Estructuras internas para la API de Groq ──────────────────────────────────

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía el prompt como único mensaje de usuario y devuelve el texto
// de la primera choice tal cual lo produjo el modelo.
func (s *GroqService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GROQ_API_KEY no configurado")
	}

	payload := groqRequest{
		Model:       s.model,
		Messages:    []groqMessage{{Role: "user", Content: prompt}},
		Temperature: groqTemperature,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp groqResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Groq error %s: %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Groq HTTP %d", resp.StatusCode)
	}

	var groqResp groqResponse
	if err := json.Unmarshal(rawBody, &groqResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("AI: Groq devolvió respuesta vacía")
	}
	return groqResp.Choices[0].Message.Content, nil
}
