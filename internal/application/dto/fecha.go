package dto

import "time"

// layouts aceptados para fechas de entrada (el SPA envía fecha simple).
var fechaLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// ParseFecha interpreta la fecha de un request probando los layouts aceptados.
func ParseFecha(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range fechaLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
