package utils

import (
	"strings"
	"time"
)

// Formatos aceitos pelas fontes de dados (CSV e células de planilha)
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"1/2/06",
}

// ParseFlexibleDate tenta interpretar uma data em qualquer dos formatos das
// fontes. Retorna o sentinela time.Time zero e false quando o valor é vazio
// ou inválido. Quem agrupa por data precisa testar a validade antes de usar.
func ParseFlexibleDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}
