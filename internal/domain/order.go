package domain

import "time"

// StatusPedidoPadrao é o status atribuído a pedidos sem status na origem.
const StatusPedidoPadrao = "Enviada"

// Order representa um pedido de locação (variante varejo)
type Order struct {
	CodPedido  int       `json:"cod_pedido"`
	CodCliente int       `json:"cod_cliente"`
	CodAgencia int       `json:"cod_agencia"`
	DataPedido time.Time `json:"data_pedido"`
	ValorTotal float64   `json:"valor_total"`
	Status     string    `json:"status"`
	DiasAtraso int       `json:"dias_atraso"`
}

// Atrasado indica se o pedido foi devolvido com atraso
func (o Order) Atrasado() bool {
	return o.DiasAtraso > 0
}
