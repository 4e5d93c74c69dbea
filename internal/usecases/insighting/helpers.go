package insighting

import (
	"fmt"
	"sort"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// Chave de bucket mensal; zero-padded, então ordem lexicográfica equivale à
// ordem cronológica
const monthKeyLayout = "2006-01"

// agencyIndex resolve códigos de agência para exibição. Identificadores não
// têm garantia de existir na coleção referenciada: código ausente (ou
// agência sem nome) cai no rótulo sintético.
type agencyIndex map[int]domain.Agency

func indexAgencies(agencies []domain.Agency) agencyIndex {
	index := make(agencyIndex, len(agencies))
	for _, agency := range agencies {
		if _, exists := index[agency.CodAgencia]; !exists {
			index[agency.CodAgencia] = agency
		}
	}
	return index
}

func (idx agencyIndex) displayName(cod int) string {
	if agency, ok := idx[cod]; ok && agency.Nome != "" {
		return agency.Nome
	}
	return fmt.Sprintf("Agência %d", cod)
}

// lookup retorna a agência apenas quando o código resolve; usado pelos
// agrupamentos que descartam registros sem agência em vez de usar o rótulo
// sintético
func (idx agencyIndex) lookup(cod int) (domain.Agency, bool) {
	agency, ok := idx[cod]
	return agency, ok
}

type customerIndex map[int]domain.Customer

func indexCustomers(customers []domain.Customer) customerIndex {
	index := make(customerIndex, len(customers))
	for _, customer := range customers {
		if _, exists := index[customer.CodCliente]; !exists {
			index[customer.CodCliente] = customer
		}
	}
	return index
}

func (idx customerIndex) displayName(cod int) string {
	if customer, ok := idx[cod]; ok {
		return customer.NomeCompleto()
	}
	return fmt.Sprintf("Cliente %d", cod)
}

// sortedTail ordena as chaves lexicograficamente e mantém apenas os últimos
// limit buckets (os mais recentes)
func sortedTail(keys []string, limit int) []string {
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[len(keys)-limit:]
	}
	return keys
}
