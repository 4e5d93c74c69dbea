package domain

import "time"

// StatusPropostaPadrao é o status atribuído quando a origem não informa um.
// Nunca usamos string vazia: os agrupamentos por status tratariam "" como um
// bucket próprio.
const StatusPropostaPadrao = "Enviada"

// CreditProposal representa uma proposta de crédito
type CreditProposal struct {
	CodProposta         int       `json:"cod_proposta"`
	CodCliente          int       `json:"cod_cliente"`
	CodColaborador      int       `json:"cod_colaborador"`
	DataEntradaProposta time.Time `json:"data_entrada_proposta"`
	TaxaJurosMensal     float64   `json:"taxa_juros_mensal"`
	ValorProposta       float64   `json:"valor_proposta"`
	ValorFinanciamento  float64   `json:"valor_financiamento"`
	ValorEntrada        float64   `json:"valor_entrada"`
	ValorPrestacao      float64   `json:"valor_prestacao"`
	QuantidadeParcelas  int       `json:"quantidade_parcelas"`
	Carencia            int       `json:"carencia"`
	StatusProposta      string    `json:"status_proposta"`
}
