package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje legible"}.
// Nunca incluye stack traces ni detalles internos.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse respuesta de operaciones de escritura simples.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
	ID      int64  `json:"id,omitempty"`
}
