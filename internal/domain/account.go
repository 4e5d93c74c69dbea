package domain

import "time"

// Account representa uma conta bancária vinculada a um cliente e uma agência
type Account struct {
	NumConta             int       `json:"num_conta"`
	CodCliente           int       `json:"cod_cliente"`
	CodAgencia           int       `json:"cod_agencia"`
	CodColaborador       int       `json:"cod_colaborador"`
	TipoConta            string    `json:"tipo_conta"`
	DataAbertura         time.Time `json:"data_abertura"`
	SaldoTotal           float64   `json:"saldo_total"`
	SaldoDisponivel      float64   `json:"saldo_disponivel"`
	DataUltimoLancamento time.Time `json:"data_ultimo_lancamento"`
}
