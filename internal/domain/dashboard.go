package domain

// Tipos do contrato de saída com a camada de apresentação. O resultado é
// imutável depois de montado: calculado uma vez por processo e servido do
// cache a partir daí.

// NamedValue é uma linha de agrupamento genérica {nome, valor}
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlyFlow é um bucket mensal de depósitos e saques
type MonthlyFlow struct {
	Month       string  `json:"month"`
	Deposits    float64 `json:"deposits"`
	Withdrawals float64 `json:"withdrawals"`
}

// StatusBreakdown agrupa propostas por status com contagem e valor somado
type StatusBreakdown struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
}

// MonthlyCountValue é um bucket mensal com contagem e valor somado
type MonthlyCountValue struct {
	Month string  `json:"month"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// CustomerBalance é uma linha do ranking de clientes por saldo
type CustomerBalance struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Accounts int     `json:"accounts"`
}

// AgencyCredit é uma linha do agrupamento de crédito por agência
type AgencyCredit struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// RateBucket é uma faixa da distribuição de taxas de juros
type RateBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// StateBalance é uma linha do agrupamento de saldo por UF
type StateBalance struct {
	UF    string  `json:"uf"`
	Value float64 `json:"value"`
}

// BankingKPIs é o conjunto fixo de métricas da variante bancária
type BankingKPIs struct {
	// Contas
	TotalAccounts  int     `json:"totalAccounts"`
	TotalBalance   float64 `json:"totalBalance"`
	AverageBalance float64 `json:"averageBalance"`

	// Transações
	TotalTransactions int     `json:"totalTransactions"`
	TotalDeposits     float64 `json:"totalDeposits"`
	TotalWithdrawals  float64 `json:"totalWithdrawals"`
	NetFlow           float64 `json:"netFlow"`

	// Crédito
	TotalProposals      int     `json:"totalProposals"`
	TotalCreditValue    float64 `json:"totalCreditValue"`
	AverageCreditValue  float64 `json:"averageCreditValue"`
	AverageInterestRate float64 `json:"averageInterestRate"`
	AverageInstallments float64 `json:"averageInstallments"`

	// Clientes
	TotalCustomers int `json:"totalCustomers"`
	TotalEmployees int `json:"totalEmployees"`

	// Agrupamentos
	BalanceByAgency          []NamedValue        `json:"balanceByAgency"`
	TransactionsByMonth      []MonthlyFlow       `json:"transactionsByMonth"`
	ProposalsByStatus        []StatusBreakdown   `json:"proposalsByStatus"`
	ProposalsByMonth         []MonthlyCountValue `json:"proposalsByMonth"`
	TopCustomersByBalance    []CustomerBalance   `json:"topCustomersByBalance"`
	CreditByAgency           []AgencyCredit      `json:"creditByAgency"`
	InterestRateDistribution []RateBucket        `json:"interestRateDistribution"`
	BalanceByState           []StateBalance      `json:"balanceByState"`
}

// BankingDashboard é o resultado completo da variante bancária: coleções
// normalizadas mais o mapeamento de KPIs derivados.
type BankingDashboard struct {
	Agencies     []Agency         `json:"agencies"`
	Customers    []Customer       `json:"customers"`
	Employees    []Employee       `json:"employees"`
	Accounts     []Account        `json:"accounts"`
	Transactions []Transaction    `json:"transactions"`
	Proposals    []CreditProposal `json:"proposals"`
	KPIs         BankingKPIs      `json:"kpis"`
}

// StatusCount agrupa pedidos por status
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthlyValue é um bucket mensal de receita
type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// CustomerRevenue é uma linha do ranking de clientes por receita
type CustomerRevenue struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// RetailKPIs é o conjunto fixo de métricas da variante varejo
type RetailKPIs struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AverageTicket  float64 `json:"averageTicket"`
	TotalCustomers int     `json:"totalCustomers"`

	// Atraso: a média considera apenas pedidos atrasados, medindo a
	// severidade entre eles e não a população inteira.
	LateOrders           int     `json:"lateOrders"`
	OrdersOnTime         int     `json:"ordersOnTime"`
	LateOrdersPercentage float64 `json:"lateOrdersPercentage"`
	AverageDelay         float64 `json:"averageDelay"`

	OrdersByStatus  []StatusCount     `json:"ordersByStatus"`
	RevenueByMonth  []MonthlyValue    `json:"revenueByMonth"`
	RevenueByAgency []NamedValue      `json:"revenueByAgency"`
	TopCustomers    []CustomerRevenue `json:"topCustomers"`
}

// RetailDashboard é o resultado completo da variante varejo
type RetailDashboard struct {
	Agencies  []Agency   `json:"agencies"`
	Customers []Customer `json:"customers"`
	Orders    []Order    `json:"orders"`
	KPIs      RetailKPIs `json:"kpis"`
}
