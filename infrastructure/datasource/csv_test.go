package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, rows []Row)
	}{
		{
			name:  "Entrada vazia - deve retornar nil",
			input: "   \n  ",
			validate: func(t *testing.T, rows []Row) {
				assert.Nil(t, rows)
			},
		},
		{
			name:  "Apenas cabeçalho - deve retornar zero registros",
			input: "cod_agencia,nome,uf",
			validate: func(t *testing.T, rows []Row) {
				assert.Empty(t, rows)
			},
		},
		{
			name:  "Linhas simples - deve preservar ordem e valores",
			input: "cod_agencia,nome,uf\n1,Centro,SP\n2,Norte,RJ",
			validate: func(t *testing.T, rows []Row) {
				assert.Len(t, rows, 2)
				assert.Equal(t, "1", rows[0].Get("cod_agencia"))
				assert.Equal(t, "Centro", rows[0].Get("nome"))
				assert.Equal(t, "RJ", rows[1].Get("uf"))
			},
		},
		{
			name:  "Separador dentro de aspas - não deve quebrar o campo",
			input: "cod_agencia,endereco,uf\n1,\"Rua A, 100\",SP",
			validate: func(t *testing.T, rows []Row) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "Rua A, 100", rows[0].Get("endereco"))
				assert.Equal(t, "SP", rows[0].Get("uf"))
			},
		},
		{
			name:  "Linha mais curta que o cabeçalho - colunas finais vazias",
			input: "cod_agencia,nome,uf\n7,Sul",
			validate: func(t *testing.T, rows []Row) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "Sul", rows[0].Get("nome"))
				assert.True(t, rows[0].Has("uf"))
				assert.Equal(t, "", rows[0].Get("uf"))
			},
		},
		{
			name:  "Espaços e CRLF - cabeçalho e células devem sair aparados",
			input: "cod_agencia , nome \r\n 3 , Leste \r\n",
			validate: func(t *testing.T, rows []Row) {
				assert.Len(t, rows, 1)
				assert.Equal(t, "3", rows[0].Get("cod_agencia"))
				assert.Equal(t, "Leste", rows[0].Get("nome"))
			},
		},
		{
			name:  "Aspas desbalanceadas - não deve interromper o parse",
			input: "cod_agencia,nome\n1,\"Oeste\n2,Norte",
			validate: func(t *testing.T, rows []Row) {
				assert.Len(t, rows, 2)
				assert.Equal(t, "Norte", rows[1].Get("nome"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseCSV(tt.input))
		})
	}
}

func TestRowGetMissingColumn(t *testing.T) {
	rows := ParseCSV("a,b\n1,2")

	assert.Len(t, rows, 1)
	assert.False(t, rows[0].Has("c"))
	assert.Equal(t, "", rows[0].Get("c"))
}
