package datasource

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
)

// Workbook é uma planilha multi-abas carregada em memória
type Workbook struct {
	file *excelize.File
}

// OpenWorkbook abre um binário XLSX já baixado
func OpenWorkbook(data []byte) (*Workbook, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}

	return &Workbook{file: file}, nil
}

// Close libera os recursos da planilha
func (w *Workbook) Close() error {
	return w.file.Close()
}

// Rows resolve uma tabela lógica para uma aba pela posição. Quando a aba
// esperada não existe, procura pelo nome (sem diferenciar maiúsculas) antes
// de desistir e devolver uma sequência vazia. Aba ausente degrada para
// coleção vazia, nunca para erro.
func (w *Workbook) Rows(index int, nameKeyword string) []Row {
	sheets := w.file.GetSheetList()

	name := ""
	if index >= 0 && index < len(sheets) {
		name = sheets[index]
	} else if nameKeyword != "" {
		for _, sheet := range sheets {
			if strings.Contains(strings.ToLower(sheet), strings.ToLower(nameKeyword)) {
				name = sheet
				break
			}
		}
	}

	if name == "" {
		log.L.WithFields(log.Fields{
			"index":   index,
			"keyword": nameKeyword,
		}).Warn("datasource: aba não encontrada na planilha, seguindo com coleção vazia")
		return nil
	}

	cells, err := w.file.GetRows(name)
	if err != nil {
		log.L.WithError(err).WithField("sheet", name).Warn("datasource: erro ao ler aba da planilha")
		return nil
	}

	if len(cells) == 0 {
		return nil
	}

	headers := make([]string, len(cells[0]))
	for i, header := range cells[0] {
		headers[i] = strings.TrimSpace(header)
	}

	return buildRows(headers, cells[1:])
}
