package domain

import "time"

// Customer representa um cliente cadastrado
type Customer struct {
	CodCliente     int       `json:"cod_cliente"`
	PrimeiroNome   string    `json:"primeiro_nome"`
	UltimoNome     string    `json:"ultimo_nome"`
	Email          string    `json:"email"`
	TipoCliente    string    `json:"tipo_cliente"`
	DataInclusao   time.Time `json:"data_inclusao"`
	CPFCNPJ        string    `json:"cpfcnpj"`
	DataNascimento time.Time `json:"data_nascimento"`
	Endereco       string    `json:"endereco"`
	CEP            string    `json:"cep"`
}

// NomeCompleto retorna o nome de exibição do cliente
func (c Customer) NomeCompleto() string {
	return c.PrimeiroNome + " " + c.UltimoNome
}
