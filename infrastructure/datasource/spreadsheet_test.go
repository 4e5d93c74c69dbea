package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook monta um XLSX em memória com as abas e linhas informadas
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) []byte {
	t.Helper()

	file := excelize.NewFile()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, file.SetSheetName(file.GetSheetName(0), name))
		} else {
			_, err := file.NewSheet(name)
			require.NoError(t, err)
		}

		for rowIdx, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, file.SetSheetRow(name, cell, &row))
		}
	}

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}

func TestWorkbookRows(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		"Agencias": {
			{"cod_agencia", "nome", "uf"},
			{1, "Centro", "SP"},
		},
		"Pedidos 2024": {
			{"cod_pedido", "valor_total"},
			{10, 99.9},
			{11, 50},
		},
	}, []string{"Agencias", "Pedidos 2024"})

	workbook, err := OpenWorkbook(data)
	require.NoError(t, err)
	defer workbook.Close()

	t.Run("Resolução por posição", func(t *testing.T) {
		rows := workbook.Rows(0, "")

		assert.Len(t, rows, 1)
		assert.Equal(t, "1", rows[0].Get("cod_agencia"))
		assert.Equal(t, "Centro", rows[0].Get("nome"))
	})

	t.Run("Posição inexistente cai na busca por nome", func(t *testing.T) {
		rows := workbook.Rows(5, "pedido")

		assert.Len(t, rows, 2)
		assert.Equal(t, "10", rows[0].Get("cod_pedido"))
		assert.Equal(t, "99.9", rows[0].Get("valor_total"))
	})

	t.Run("Aba ausente degrada para coleção vazia", func(t *testing.T) {
		rows := workbook.Rows(5, "inexistente")

		assert.Empty(t, rows)
	})
}

func TestWorkbookRowsShortLine(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		"Pedidos": {
			{"cod_pedido", "status", "dias_atraso"},
			{1, "Entregue"},
		},
	}, []string{"Pedidos"})

	workbook, err := OpenWorkbook(data)
	require.NoError(t, err)
	defer workbook.Close()

	rows := workbook.Rows(0, "")

	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Has("dias_atraso"))
	assert.Equal(t, "", rows[0].Get("dias_atraso"))
}

func TestOpenWorkbookInvalid(t *testing.T) {
	_, err := OpenWorkbook([]byte("isso não é uma planilha"))

	assert.Error(t, err)
}
