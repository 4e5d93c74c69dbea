package insighting

import (
	"math"
	"sort"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// Buckets mensais mantidos nas séries temporais
const (
	transactionsMonthLimit = 12
	proposalsMonthLimit    = 24
)

// Faixas semiabertas [min, max) da distribuição de taxas de juros. As faixas
// particionam o domínio: cada proposta cai em exatamente uma.
var interestRateRanges = []struct {
	min   float64
	max   float64
	label string
}{
	{0, 0.015, "0-1.5%"},
	{0.015, 0.018, "1.5-1.8%"},
	{0.018, 0.02, "1.8-2.0%"},
	{0.02, 0.025, "2.0-2.5%"},
	{0.025, math.Inf(1), ">2.5%"},
}

// CalculateBankingKPIs deriva o mapeamento completo de KPIs da variante
// bancária. Função pura das coleções normalizadas: determinística, sem
// efeitos colaterais.
func CalculateBankingKPIs(
	agencies []domain.Agency,
	customers []domain.Customer,
	employees []domain.Employee,
	accounts []domain.Account,
	transactions []domain.Transaction,
	proposals []domain.CreditProposal,
) domain.BankingKPIs {
	agencyIdx := indexAgencies(agencies)
	customerIdx := indexCustomers(customers)

	kpis := domain.BankingKPIs{
		TotalAccounts:     len(accounts),
		TotalTransactions: len(transactions),
		TotalProposals:    len(proposals),
		TotalCustomers:    len(customers),
		TotalEmployees:    len(employees),
	}

	for _, account := range accounts {
		kpis.TotalBalance += account.SaldoTotal
	}
	if kpis.TotalAccounts > 0 {
		kpis.AverageBalance = kpis.TotalBalance / float64(kpis.TotalAccounts)
	}

	for _, transaction := range transactions {
		if transaction.ValorTransacao > 0 {
			kpis.TotalDeposits += transaction.ValorTransacao
		} else {
			kpis.TotalWithdrawals += math.Abs(transaction.ValorTransacao)
		}
	}
	kpis.NetFlow = kpis.TotalDeposits - kpis.TotalWithdrawals

	var totalRate, totalInstallments float64
	for _, proposal := range proposals {
		kpis.TotalCreditValue += proposal.ValorProposta
		totalRate += proposal.TaxaJurosMensal
		totalInstallments += float64(proposal.QuantidadeParcelas)
	}
	if kpis.TotalProposals > 0 {
		count := float64(kpis.TotalProposals)
		kpis.AverageCreditValue = kpis.TotalCreditValue / count
		// Escala 0–100 para exibição direta como percentual
		kpis.AverageInterestRate = totalRate / count * 100
		kpis.AverageInstallments = totalInstallments / count
	}

	kpis.BalanceByAgency = balanceByAgency(accounts, agencyIdx)
	kpis.TransactionsByMonth = transactionsByMonth(transactions)
	kpis.ProposalsByStatus = proposalsByStatus(proposals)
	kpis.ProposalsByMonth = proposalsByMonth(proposals)
	kpis.TopCustomersByBalance = topCustomersByBalance(accounts, customerIdx)
	kpis.CreditByAgency = creditByAgency(proposals, accounts, agencyIdx)
	kpis.InterestRateDistribution = interestRateDistribution(proposals)
	kpis.BalanceByState = balanceByState(accounts, agencyIdx)

	return kpis
}

func balanceByAgency(accounts []domain.Account, agencyIdx agencyIndex) []domain.NamedValue {
	totals := make(map[int]float64)
	for _, account := range accounts {
		totals[account.CodAgencia] += account.SaldoTotal
	}

	result := make([]domain.NamedValue, 0, len(totals))
	for cod, value := range totals {
		result = append(result, domain.NamedValue{
			Name:  agencyIdx.displayName(cod),
			Value: value,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})

	return result
}

func transactionsByMonth(transactions []domain.Transaction) []domain.MonthlyFlow {
	type flow struct {
		deposits    float64
		withdrawals float64
	}

	buckets := make(map[string]*flow)
	for _, transaction := range transactions {
		// Data inválida nunca entra em bucket
		if transaction.DataTransacao.IsZero() {
			continue
		}

		key := transaction.DataTransacao.Format(monthKeyLayout)
		bucket, exists := buckets[key]
		if !exists {
			bucket = &flow{}
			buckets[key] = bucket
		}

		if transaction.ValorTransacao > 0 {
			bucket.deposits += transaction.ValorTransacao
		} else {
			bucket.withdrawals += math.Abs(transaction.ValorTransacao)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	keys = sortedTail(keys, transactionsMonthLimit)

	result := make([]domain.MonthlyFlow, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.MonthlyFlow{
			Month:       key,
			Deposits:    buckets[key].deposits,
			Withdrawals: buckets[key].withdrawals,
		})
	}

	return result
}

func proposalsByStatus(proposals []domain.CreditProposal) []domain.StatusBreakdown {
	type breakdown struct {
		count int
		value float64
	}

	buckets := make(map[string]*breakdown)
	for _, proposal := range proposals {
		status := proposal.StatusProposta
		if status == "" {
			status = "Desconhecido"
		}

		bucket, exists := buckets[status]
		if !exists {
			bucket = &breakdown{}
			buckets[status] = bucket
		}

		bucket.count++
		bucket.value += proposal.ValorProposta
	}

	result := make([]domain.StatusBreakdown, 0, len(buckets))
	for status, bucket := range buckets {
		result = append(result, domain.StatusBreakdown{
			Status: status,
			Count:  bucket.count,
			Value:  bucket.value,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})

	return result
}

func proposalsByMonth(proposals []domain.CreditProposal) []domain.MonthlyCountValue {
	type bucket struct {
		count int
		value float64
	}

	buckets := make(map[string]*bucket)
	for _, proposal := range proposals {
		if proposal.DataEntradaProposta.IsZero() {
			continue
		}

		key := proposal.DataEntradaProposta.Format(monthKeyLayout)
		entry, exists := buckets[key]
		if !exists {
			entry = &bucket{}
			buckets[key] = entry
		}

		entry.count++
		entry.value += proposal.ValorProposta
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	keys = sortedTail(keys, proposalsMonthLimit)

	result := make([]domain.MonthlyCountValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.MonthlyCountValue{
			Month: key,
			Count: buckets[key].count,
			Value: buckets[key].value,
		})
	}

	return result
}

func topCustomersByBalance(accounts []domain.Account, customerIdx customerIndex) []domain.CustomerBalance {
	type holding struct {
		balance  float64
		accounts int
	}

	totals := make(map[int]*holding)
	for _, account := range accounts {
		entry, exists := totals[account.CodCliente]
		if !exists {
			entry = &holding{}
			totals[account.CodCliente] = entry
		}

		entry.balance += account.SaldoTotal
		entry.accounts++
	}

	result := make([]domain.CustomerBalance, 0, len(totals))
	for cod, entry := range totals {
		result = append(result, domain.CustomerBalance{
			Name:     customerIdx.displayName(cod),
			Balance:  entry.balance,
			Accounts: entry.accounts,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Balance > result[j].Balance
	})

	if len(result) > 10 {
		result = result[:10]
	}

	return result
}

// creditByAgency agrega propostas pela agência da primeira conta do cliente
// (junção de dois saltos). Proposta cujo cliente não tem conta é EXCLUÍDA da
// agregação, diferente dos agrupamentos de um salto, que caem no rótulo
// sintético. A assimetria é comportamento observável do relatório original.
func creditByAgency(proposals []domain.CreditProposal, accounts []domain.Account, agencyIdx agencyIndex) []domain.AgencyCredit {
	firstAccountByCustomer := make(map[int]domain.Account)
	for _, account := range accounts {
		if _, exists := firstAccountByCustomer[account.CodCliente]; !exists {
			firstAccountByCustomer[account.CodCliente] = account
		}
	}

	type credit struct {
		value float64
		count int
	}

	totals := make(map[int]*credit)
	for _, proposal := range proposals {
		account, ok := firstAccountByCustomer[proposal.CodCliente]
		if !ok {
			continue
		}

		entry, exists := totals[account.CodAgencia]
		if !exists {
			entry = &credit{}
			totals[account.CodAgencia] = entry
		}

		entry.value += proposal.ValorProposta
		entry.count++
	}

	result := make([]domain.AgencyCredit, 0, len(totals))
	for cod, entry := range totals {
		result = append(result, domain.AgencyCredit{
			Name:  agencyIdx.displayName(cod),
			Value: entry.value,
			Count: entry.count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})

	return result
}

func interestRateDistribution(proposals []domain.CreditProposal) []domain.RateBucket {
	result := make([]domain.RateBucket, 0, len(interestRateRanges))

	for _, r := range interestRateRanges {
		count := 0
		for _, proposal := range proposals {
			if proposal.TaxaJurosMensal >= r.min && proposal.TaxaJurosMensal < r.max {
				count++
			}
		}

		result = append(result, domain.RateBucket{
			Range: r.label,
			Count: count,
		})
	}

	return result
}

// balanceByState descarta contas cuja agência não resolve: sem agência não
// há UF para agrupar
func balanceByState(accounts []domain.Account, agencyIdx agencyIndex) []domain.StateBalance {
	totals := make(map[string]float64)
	for _, account := range accounts {
		agency, ok := agencyIdx.lookup(account.CodAgencia)
		if !ok {
			continue
		}

		totals[agency.UF] += account.SaldoTotal
	}

	result := make([]domain.StateBalance, 0, len(totals))
	for uf, value := range totals {
		result = append(result, domain.StateBalance{
			UF:    uf,
			Value: value,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Value > result[j].Value
	})

	return result
}
