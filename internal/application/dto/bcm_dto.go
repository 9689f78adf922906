package dto

// AnalyzeBCMPolicyRequest entrada alternativa de texto plano para
// POST /api/bcm-policy/upload (cuando no se sube archivo).
type AnalyzeBCMPolicyRequest struct {
	RawTextInput string `json:"rawTextInput"`
}
