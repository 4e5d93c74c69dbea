package domain

import "time"

// Transaction representa um lançamento em conta. Valores positivos são
// depósitos e negativos são saques.
type Transaction struct {
	CodTransacao   int       `json:"cod_transacao"`
	NumConta       int       `json:"num_conta"`
	DataTransacao  time.Time `json:"data_transacao"`
	NomeTransacao  string    `json:"nome_transacao"`
	ValorTransacao float64   `json:"valor_transacao"`
}
