package domain

import "time"

// Agency representa uma agência (bancária ou loja, conforme a variante)
type Agency struct {
	CodAgencia   int       `json:"cod_agencia"`
	Nome         string    `json:"nome"`
	Endereco     string    `json:"endereco"`
	Cidade       string    `json:"cidade"`
	UF           string    `json:"uf"`
	DataAbertura time.Time `json:"data_abertura"`
	TipoAgencia  string    `json:"tipo_agencia"`
}
