package loading

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Diagnostics acumula, por coluna, quantas células caíram no valor padrão
// durante a normalização. Entrada malformada nunca aborta a carga; este
// canal lateral torna os fallbacks observáveis em logs e testes.
type Diagnostics struct {
	defaults map[string]int
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{defaults: make(map[string]int)}
}

func (d *Diagnostics) mark(table, column string) {
	d.defaults[table+"."+column]++
}

// Defaults retorna o mapa coluna -> quantidade de fallbacks
func (d *Diagnostics) Defaults() map[string]int {
	return d.defaults
}

// Total retorna o total de células que caíram em valores padrão
func (d *Diagnostics) Total() int {
	total := 0
	for _, count := range d.defaults {
		total += count
	}
	return total
}

// intField interpreta o texto numérico inicial da célula; 0 em caso de
// falha ou ausência
func intField(row datasource.Row, table, column string, diag *Diagnostics) int {
	value, ok := parseLeadingInt(row.Get(column))
	if !ok {
		diag.mark(table, column)
		return 0
	}
	return value
}

// floatField interpreta valores monetários e taxas; 0 em caso de falha
func floatField(row datasource.Row, table, column string, diag *Diagnostics) float64 {
	value, ok := parseLeadingFloat(row.Get(column))
	if !ok {
		diag.mark(table, column)
		return 0
	}
	return value
}

// stringField repassa o valor; "" quando a coluna não existe na fonte
func stringField(row datasource.Row, table, column string, diag *Diagnostics) string {
	if !row.Has(column) {
		diag.mark(table, column)
		return ""
	}
	return row.Get(column)
}

// statusField nunca devolve string vazia: agrupamentos por status tratariam
// "" como um bucket próprio (e errado)
func statusField(row datasource.Row, table, column, fallback string, diag *Diagnostics) string {
	value := strings.TrimSpace(row.Get(column))
	if value == "" {
		diag.mark(table, column)
		return fallback
	}
	return value
}

// dateField produz o sentinela time.Time zero para datas inválidas; toda
// agregação que agrupa por data testa a validade antes de usar
func dateField(row datasource.Row, table, column string, diag *Diagnostics) time.Time {
	date, ok := utils.ParseFlexibleDate(row.Get(column))
	if !ok {
		diag.mark(table, column)
		return time.Time{}
	}
	return date
}

func parseLeadingInt(s string) (int, bool) {
	prefix := leadingNumber(s, false)
	if prefix == "" {
		return 0, false
	}

	value, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return value, true
}

func parseLeadingFloat(s string) (float64, bool) {
	prefix := leadingNumber(s, true)
	if prefix == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// leadingNumber extrai o prefixo numérico da célula (sinal opcional,
// dígitos e, para decimais, um único ponto)
func leadingNumber(s string, decimal bool) string {
	s = strings.TrimSpace(s)

	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	j := i
	seenDot := false
	seenDigit := false
	for j < len(s) {
		char := s[j]
		if char >= '0' && char <= '9' {
			seenDigit = true
			j++
			continue
		}
		if decimal && char == '.' && !seenDot {
			seenDot = true
			j++
			continue
		}
		break
	}

	if !seenDigit {
		return ""
	}
	return s[:j]
}

// As normalizações abaixo são 1:1 com as linhas de entrada, preservando a
// ordem. Linha inválida vira entidade com campos padrão, nunca é descartada.

func normalizeAgencies(rows []datasource.Row, diag *Diagnostics) []domain.Agency {
	agencies := make([]domain.Agency, 0, len(rows))

	for _, row := range rows {
		agencies = append(agencies, domain.Agency{
			CodAgencia:   intField(row, "agencias", "cod_agencia", diag),
			Nome:         stringField(row, "agencias", "nome", diag),
			Endereco:     stringField(row, "agencias", "endereco", diag),
			Cidade:       stringField(row, "agencias", "cidade", diag),
			UF:           stringField(row, "agencias", "uf", diag),
			DataAbertura: dateField(row, "agencias", "data_abertura", diag),
			TipoAgencia:  stringField(row, "agencias", "tipo_agencia", diag),
		})
	}

	return agencies
}

func normalizeCustomers(rows []datasource.Row, diag *Diagnostics) []domain.Customer {
	customers := make([]domain.Customer, 0, len(rows))

	for _, row := range rows {
		customers = append(customers, domain.Customer{
			CodCliente:     intField(row, "clientes", "cod_cliente", diag),
			PrimeiroNome:   stringField(row, "clientes", "primeiro_nome", diag),
			UltimoNome:     stringField(row, "clientes", "ultimo_nome", diag),
			Email:          stringField(row, "clientes", "email", diag),
			TipoCliente:    stringField(row, "clientes", "tipo_cliente", diag),
			DataInclusao:   dateField(row, "clientes", "data_inclusao", diag),
			CPFCNPJ:        stringField(row, "clientes", "cpfcnpj", diag),
			DataNascimento: dateField(row, "clientes", "data_nascimento", diag),
			Endereco:       stringField(row, "clientes", "endereco", diag),
			CEP:            stringField(row, "clientes", "cep", diag),
		})
	}

	return customers
}

func normalizeEmployees(rows []datasource.Row, diag *Diagnostics) []domain.Employee {
	employees := make([]domain.Employee, 0, len(rows))

	for _, row := range rows {
		employees = append(employees, domain.Employee{
			CodColaborador: intField(row, "colaboradores", "cod_colaborador", diag),
			PrimeiroNome:   stringField(row, "colaboradores", "primeiro_nome", diag),
			UltimoNome:     stringField(row, "colaboradores", "ultimo_nome", diag),
			Email:          stringField(row, "colaboradores", "email", diag),
			CPF:            stringField(row, "colaboradores", "cpf", diag),
			DataNascimento: dateField(row, "colaboradores", "data_nascimento", diag),
			Endereco:       stringField(row, "colaboradores", "endereco", diag),
			CEP:            stringField(row, "colaboradores", "cep", diag),
		})
	}

	return employees
}

func normalizeAccounts(rows []datasource.Row, diag *Diagnostics) []domain.Account {
	accounts := make([]domain.Account, 0, len(rows))

	for _, row := range rows {
		accounts = append(accounts, domain.Account{
			NumConta:             intField(row, "contas", "num_conta", diag),
			CodCliente:           intField(row, "contas", "cod_cliente", diag),
			CodAgencia:           intField(row, "contas", "cod_agencia", diag),
			CodColaborador:       intField(row, "contas", "cod_colaborador", diag),
			TipoConta:            stringField(row, "contas", "tipo_conta", diag),
			DataAbertura:         dateField(row, "contas", "data_abertura", diag),
			SaldoTotal:           floatField(row, "contas", "saldo_total", diag),
			SaldoDisponivel:      floatField(row, "contas", "saldo_disponivel", diag),
			DataUltimoLancamento: dateField(row, "contas", "data_ultimo_lancamento", diag),
		})
	}

	return accounts
}

func normalizeTransactions(rows []datasource.Row, diag *Diagnostics) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(rows))

	for _, row := range rows {
		transactions = append(transactions, domain.Transaction{
			CodTransacao:   intField(row, "transacoes", "cod_transacao", diag),
			NumConta:       intField(row, "transacoes", "num_conta", diag),
			DataTransacao:  dateField(row, "transacoes", "data_transacao", diag),
			NomeTransacao:  stringField(row, "transacoes", "nome_transacao", diag),
			ValorTransacao: floatField(row, "transacoes", "valor_transacao", diag),
		})
	}

	return transactions
}

func normalizeProposals(rows []datasource.Row, diag *Diagnostics) []domain.CreditProposal {
	proposals := make([]domain.CreditProposal, 0, len(rows))

	for _, row := range rows {
		proposals = append(proposals, domain.CreditProposal{
			CodProposta:         intField(row, "propostas", "cod_proposta", diag),
			CodCliente:          intField(row, "propostas", "cod_cliente", diag),
			CodColaborador:      intField(row, "propostas", "cod_colaborador", diag),
			DataEntradaProposta: dateField(row, "propostas", "data_entrada_proposta", diag),
			TaxaJurosMensal:     floatField(row, "propostas", "taxa_juros_mensal", diag),
			ValorProposta:       floatField(row, "propostas", "valor_proposta", diag),
			ValorFinanciamento:  floatField(row, "propostas", "valor_financiamento", diag),
			ValorEntrada:        floatField(row, "propostas", "valor_entrada", diag),
			ValorPrestacao:      floatField(row, "propostas", "valor_prestacao", diag),
			QuantidadeParcelas:  intField(row, "propostas", "quantidade_parcelas", diag),
			Carencia:            intField(row, "propostas", "carencia", diag),
			StatusProposta:      statusField(row, "propostas", "status_proposta", domain.StatusPropostaPadrao, diag),
		})
	}

	return proposals
}

func normalizeOrders(rows []datasource.Row, diag *Diagnostics) []domain.Order {
	orders := make([]domain.Order, 0, len(rows))

	for _, row := range rows {
		orders = append(orders, domain.Order{
			CodPedido:  intField(row, "pedidos", "cod_pedido", diag),
			CodCliente: intField(row, "pedidos", "cod_cliente", diag),
			CodAgencia: intField(row, "pedidos", "cod_agencia", diag),
			DataPedido: dateField(row, "pedidos", "data_pedido", diag),
			ValorTotal: floatField(row, "pedidos", "valor_total", diag),
			Status:     statusField(row, "pedidos", "status", domain.StatusPedidoPadrao, diag),
			DiasAtraso: intField(row, "pedidos", "dias_atraso", diag),
		})
	}

	return orders
}
