package datasource

import "strings"

// ParseCSV converte o texto de uma fonte delimitada em registros brutos.
// A primeira linha é o cabeçalho e define as colunas de todas as demais.
//
// O parser é deliberadamente tolerante: aspas alternam um estado
// "dentro de aspas" (sem aninhamento nem pares de escape), separadores
// dentro de aspas não quebram o campo e linhas curtas deixam as colunas
// finais vazias. Entrada malformada nunca interrompe a carga.
func ParseCSV(text string) []Row {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")

	headers := strings.Split(strings.TrimSuffix(lines[0], "\r"), ",")
	for i, header := range headers {
		headers[i] = strings.TrimSpace(header)
	}

	values := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values = append(values, splitFields(strings.TrimSuffix(line, "\r")))
	}

	return buildRows(headers, values)
}

// splitFields separa uma linha nos separadores fora de aspas
func splitFields(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
