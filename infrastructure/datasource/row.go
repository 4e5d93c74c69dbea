package datasource

// Row é um registro bruto de uma fonte tabular: a lista de colunas do
// cabeçalho mais o valor de cada célula como string. Colunas ausentes na
// linha ficam como string vazia.
type Row struct {
	Headers []string
	Cells   map[string]string
}

// Get retorna o valor bruto da coluna, ou "" quando a coluna não existe
func (r Row) Get(column string) string {
	return r.Cells[column]
}

// Has indica se a coluna existe no cabeçalho da fonte
func (r Row) Has(column string) bool {
	_, ok := r.Cells[column]
	return ok
}

func buildRows(headers []string, lines [][]string) []Row {
	rows := make([]Row, 0, len(lines))

	for _, values := range lines {
		cells := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(values) {
				cells[header] = values[i]
			} else {
				// Linha mais curta que o cabeçalho: colunas finais vazias
				cells[header] = ""
			}
		}

		rows = append(rows, Row{Headers: headers, Cells: cells})
	}

	return rows
}
