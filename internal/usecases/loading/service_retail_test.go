package loading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-analytics-api/infrastructure/datasource/mocks"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// retailWorkbookFixture monta a planilha de varejo em memória: abas de
// agências, clientes e pedidos, nessa ordem
func retailWorkbookFixture(t *testing.T) []byte {
	t.Helper()

	file := excelize.NewFile()

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "Agencias",
			rows: [][]interface{}{
				{"cod_agencia", "nome", "uf"},
				{100, "Centro", "SP"},
			},
		},
		{
			name: "Clientes",
			rows: [][]interface{}{
				{"cod_cliente", "primeiro_nome", "ultimo_nome"},
				{10, "Ana", "Silva"},
			},
		},
		{
			name: "Pedidos",
			rows: [][]interface{}{
				{"cod_pedido", "cod_cliente", "cod_agencia", "data_pedido", "valor_total", "status", "dias_atraso"},
				{1, 10, 100, "2024-01-05", 150, "Enviada", 0},
				{2, 10, 100, "2024-02-10", 120, "Entregue", 5},
				{3, 11, 101, "2024-02-15", 80, "Enviada"},
			},
		},
	}

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, file.SetSheetName(file.GetSheetName(0), sheet.name))
		} else {
			_, err := file.NewSheet(sheet.name)
			require.NoError(t, err)
		}

		for rowIdx, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, file.SetSheetRow(sheet.name, cell, &row))
		}
	}

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}

func TestRetailServiceLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "pedidos.xlsx").
		Return(retailWorkbookFixture(t), nil).
		Times(1)

	service := NewRetailService(bankingConfig(), fetcher)

	data, err := service.Load(context.Background())
	require.NoError(t, err)

	kpis := data.KPIs

	assert.Equal(t, 3, kpis.TotalOrders)
	assert.Equal(t, 350.0, kpis.TotalRevenue)
	assert.InDelta(t, 350.0/3, kpis.AverageTicket, 0.0001)
	assert.Equal(t, 1, kpis.TotalCustomers)

	// Só o pedido 2 está atrasado; a média de atraso ignora os demais
	assert.Equal(t, 1, kpis.LateOrders)
	assert.Equal(t, 2, kpis.OrdersOnTime)
	assert.InDelta(t, 100.0/3, kpis.LateOrdersPercentage, 0.0001)
	assert.Equal(t, 5.0, kpis.AverageDelay)

	require.Len(t, kpis.OrdersByStatus, 2)
	assert.Equal(t, "Enviada", kpis.OrdersByStatus[0].Status)
	assert.Equal(t, 2, kpis.OrdersByStatus[0].Count)
	assert.Equal(t, "Entregue", kpis.OrdersByStatus[1].Status)

	require.Len(t, kpis.RevenueByMonth, 2)
	assert.Equal(t, "2024-01", kpis.RevenueByMonth[0].Month)
	assert.Equal(t, 150.0, kpis.RevenueByMonth[0].Value)
	assert.Equal(t, "2024-02", kpis.RevenueByMonth[1].Month)
	assert.Equal(t, 200.0, kpis.RevenueByMonth[1].Value)

	// Agência sem cadastro cai no rótulo sintético
	require.Len(t, kpis.RevenueByAgency, 2)
	assert.Equal(t, "Centro", kpis.RevenueByAgency[0].Name)
	assert.Equal(t, 270.0, kpis.RevenueByAgency[0].Value)
	assert.Equal(t, "Agência 101", kpis.RevenueByAgency[1].Name)

	// Cliente sem cadastro idem
	require.Len(t, kpis.TopCustomers, 2)
	assert.Equal(t, "Ana Silva", kpis.TopCustomers[0].Name)
	assert.Equal(t, 270.0, kpis.TopCustomers[0].Revenue)
	assert.Equal(t, 2, kpis.TopCustomers[0].Orders)
	assert.Equal(t, "Cliente 11", kpis.TopCustomers[1].Name)

	// Célula de dias_atraso ausente vira 0, nunca erro
	assert.Equal(t, 0, data.Orders[2].DiasAtraso)

	// Segunda chamada responde do cache
	cached, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, data, cached)
}

func TestRetailServiceLoadInvalidWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "pedidos.xlsx").
		Return([]byte("não é uma planilha"), nil).
		Times(1)

	service := NewRetailService(bankingConfig(), fetcher)

	_, err := service.Load(context.Background())
	assert.Error(t, err)
}
