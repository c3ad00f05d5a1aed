package service

import "github.com/microcosm-cc/bluemonday"

// Política de sanitización para contenido generado por usuarios.
var sanitizer = bluemonday.UGCPolicy()

func sanitizeUGC(input string) string {
	return sanitizer.Sanitize(input)
}
