package domain

import "time"

// Employee representa um colaborador
type Employee struct {
	CodColaborador int       `json:"cod_colaborador"`
	PrimeiroNome   string    `json:"primeiro_nome"`
	UltimoNome     string    `json:"ultimo_nome"`
	Email          string    `json:"email"`
	CPF            string    `json:"cpf"`
	DataNascimento time.Time `json:"data_nascimento"`
	Endereco       string    `json:"endereco"`
	CEP            string    `json:"cep"`
}
