package insighting

import (
	"sort"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

const revenueMonthLimit = 12

// CalculateRetailKPIs deriva o mapeamento de KPIs da variante varejo. Função
// pura das coleções normalizadas.
func CalculateRetailKPIs(
	agencies []domain.Agency,
	customers []domain.Customer,
	orders []domain.Order,
) domain.RetailKPIs {
	agencyIdx := indexAgencies(agencies)
	customerIdx := indexCustomers(customers)

	kpis := domain.RetailKPIs{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
	}

	var totalDelay float64
	for _, order := range orders {
		kpis.TotalRevenue += order.ValorTotal

		if order.Atrasado() {
			kpis.LateOrders++
			totalDelay += float64(order.DiasAtraso)
		}
	}

	kpis.OrdersOnTime = kpis.TotalOrders - kpis.LateOrders

	if kpis.TotalOrders > 0 {
		kpis.AverageTicket = kpis.TotalRevenue / float64(kpis.TotalOrders)
		kpis.LateOrdersPercentage = float64(kpis.LateOrders) / float64(kpis.TotalOrders) * 100
	}

	// Média de atraso mede a severidade ENTRE os pedidos atrasados; pedidos
	// no prazo ficam fora do denominador. Zero atrasos resulta em 0, não NaN.
	if kpis.LateOrders > 0 {
		kpis.AverageDelay = totalDelay / float64(kpis.LateOrders)
	}

	kpis.OrdersByStatus = ordersByStatus(orders)
	kpis.RevenueByMonth = revenueByMonth(orders)
	kpis.RevenueByAgency = revenueByAgency(orders, agencyIdx)
	kpis.TopCustomers = topCustomers(orders, customerIdx)

	return kpis
}

func ordersByStatus(orders []domain.Order) []domain.StatusCount {
	counts := make(map[string]int)
	for _, order := range orders {
		status := order.Status
		if status == "" {
			status = "Desconhecido"
		}
		counts[status]++
	}

	result := make([]domain.StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, domain.StatusCount{
			Status: status,
			Count:  count,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}

func revenueByMonth(orders []domain.Order) []domain.MonthlyValue {
	buckets := make(map[string]float64)
	for _, order := range orders {
		if order.DataPedido.IsZero() {
			continue
		}

		buckets[order.DataPedido.Format(monthKeyLayout)] += order.ValorTotal
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	keys = sortedTail(keys, revenueMonthLimit)

	result := make([]domain.MonthlyValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.MonthlyValue{
			Month: key,
			Value: buckets[key],
		})
	}

	return result
}

func revenueByAgency(orders []domain.Order, agencyIdx agencyIndex) []domain.NamedValue {
	totals := make(map[int]float64)
	for _, order := range orders {
		totals[order.CodAgencia] += order.ValorTotal
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

func topCustomers(orders []domain.Order, customerIdx customerIndex) []domain.CustomerRevenue {
	type activity struct {
		orders  int
		revenue float64
	}

	totals := make(map[int]*activity)
	for _, order := range orders {
		entry, exists := totals[order.CodCliente]
		if !exists {
			entry = &activity{}
			totals[order.CodCliente] = entry
		}

		entry.orders++
		entry.revenue += order.ValorTotal
	}

	result := make([]domain.CustomerRevenue, 0, len(totals))
	for cod, entry := range totals {
		result = append(result, domain.CustomerRevenue{
			Name:    customerIdx.displayName(cod),
			Orders:  entry.orders,
			Revenue: entry.revenue,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	if len(result) > 10 {
		result = result[:10]
	}

	return result
}
