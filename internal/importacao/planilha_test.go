package importacao

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseMoeda(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$ 900,00", 900},
		{"1234.56", 1234.56},
		{"150", 150},
		{"", 0},
		{"n/a", 0},
	}
	for _, c := range casos {
		assert.InDelta(t, c.esperado, parseMoeda(c.entrada), 1e-9, "célula %q", c.entrada)
	}
}

func TestParseNumero(t *testing.T) {
	assert.InDelta(t, 1500.5, parseNumero("1500.5"), 1e-9)
	assert.InDelta(t, 1500.5, parseNumero("1.500,5"), 1e-9)
	assert.Zero(t, parseNumero(""))
	assert.Zero(t, parseNumero("abc"))
}

func TestParseDataRotaSerial(t *testing.T) {
	// 45292 é 2024-01-01 na contagem de dias do Excel.
	assert.Equal(t, "2024-01-01", parseDataRota("45292"))
	assert.Equal(t, "2024-03-20", parseDataRota("45371"))
}

func TestParseDataRotaDiaMesAbreviado(t *testing.T) {
	ano := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("%d-03-15", ano), parseDataRota("15/mar"))
	assert.Equal(t, fmt.Sprintf("%d-12-05", ano), parseDataRota("5/dez"))
	assert.Equal(t, fmt.Sprintf("%d-01-02", ano), parseDataRota("2/janeiro"))
}

func TestParseDataRotaIrreconhecivelViraHoje(t *testing.T) {
	hoje := time.Now().Format("2006-01-02")
	assert.Equal(t, hoje, parseDataRota(""))
	assert.Equal(t, hoje, parseDataRota("???"))
}

func TestParseDataRotaISOPassaDireto(t *testing.T) {
	assert.Equal(t, "2024-03-10", parseDataRota("2024-03-10"))
}

func TestParseDataPagamento(t *testing.T) {
	assert.Equal(t, "2024-03-20", parseDataPagamento("45371"))
	assert.Equal(t, "20/03/2024", parseDataPagamento("20/03/2024"))
	assert.Equal(t, "", parseDataPagamento(""))
}

func planilhaRotas(t *testing.T) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	aba := f.GetSheetName(0)

	// Duas linhas de título antes do cabeçalho, como nas planilhas reais.
	require.NoError(t, f.SetSheetRow(aba, "A1", &[]interface{}{"RELATÓRIO DE VIAGENS"}))
	require.NoError(t, f.SetSheetRow(aba, "A3", &[]interface{}{
		"PLACA", "MOTORISTA", "VIAGEM", "DATA", "KM INICIO", "KM FINAL", "TOTAL", "CIDADE", "PERNOITE", "DESCARGA",
	}))
	require.NoError(t, f.SetSheetRow(aba, "A4", &[]interface{}{
		"abc-1234", "João da Silva", "R-100", "2024-03-10", "1000", "1250", "250", "Barretos", "1", "R$ 900,00",
	}))
	// Sem placa: descartada.
	require.NoError(t, f.SetSheetRow(aba, "A5", &[]interface{}{
		"", "Maria", "R-101", "2024-03-10", "0", "0", "0", "Colina", "0", "",
	}))
	// Sem número de viagem: descartada.
	require.NoError(t, f.SetSheetRow(aba, "A6", &[]interface{}{
		"DEF5678", "Maria", "", "2024-03-10", "0", "0", "0", "Colina", "0", "",
	}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestLerPlanilhaRotas(t *testing.T) {
	linhas, err := LerPlanilhaRotas(planilhaRotas(t))
	require.NoError(t, err)
	require.Len(t, linhas, 1)

	l := linhas[0]
	assert.Equal(t, "ABC-1234", l.Placa)
	assert.Equal(t, "JOÃO DA SILVA", l.NomeMotorista)
	assert.Equal(t, "R-100", l.NumeroRota)
	assert.Equal(t, "2024-03-10", l.Data)
	assert.InDelta(t, 1000, l.KMInicial, 1e-9)
	assert.InDelta(t, 1250, l.KMFinal, 1e-9)
	assert.InDelta(t, 250, l.KMTotal, 1e-9)
	assert.Equal(t, "Barretos", l.Cidade)
	assert.Equal(t, 1, l.QtdPernoites)
	assert.InDelta(t, 900, l.ValorDescarga, 1e-9)
}

func TestLerPlanilhaRotasSemCabecalho(t *testing.T) {
	f := excelize.NewFile()
	aba := f.GetSheetName(0)

	// Planilha de outro relatório: nenhuma coluna PLACA.
	require.NoError(t, f.SetSheetRow(aba, "A1", &[]interface{}{"RESUMO MENSAL"}))
	require.NoError(t, f.SetSheetRow(aba, "A2", &[]interface{}{"VEÍCULO", "VALOR"}))
	require.NoError(t, f.SetSheetRow(aba, "A3", &[]interface{}{"ABC-1234", "R$ 900,00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	linhas, err := LerPlanilhaRotas(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cabeçalho")
	assert.Nil(t, linhas)
}

func TestLerPlanilhaFechamentoAgrupaPorIdentificador(t *testing.T) {
	f := excelize.NewFile()
	aba := f.GetSheetName(0)

	linha := func(numero int, identificador, dataPagamento, valor string) {
		celulas := make([]interface{}, 16)
		celulas[3] = identificador  // coluna D
		celulas[14] = dataPagamento // coluna O
		celulas[15] = valor         // coluna P
		require.NoError(t, f.SetSheetRow(aba, fmt.Sprintf("A%d", numero), &celulas))
	}

	linha(1, "IDENTIFICADOR", "DATA PGTO", "VALOR") // cabeçalho
	linha(2, "R-100", "45371", "R$ 500,00")
	linha(3, "R-200", "45371", "R$ 300,00")
	linha(4, "R-100", "45371", "R$ 250,50")
	linha(5, "", "45371", "R$ 999,99") // sem identificador: descartada

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	dados, err := LerPlanilhaFechamento(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, dados, 2)

	// Ordem de primeira ocorrência é preservada.
	assert.Equal(t, "R-100", dados[0].NumeroRota)
	assert.InDelta(t, 750.50, dados[0].ValorBrutoTotal, 1e-9)
	assert.Equal(t, 2, dados[0].QtdItens)
	assert.Equal(t, "2024-03-20", dados[0].DataPagamento)

	assert.Equal(t, "R-200", dados[1].NumeroRota)
	assert.InDelta(t, 300, dados[1].ValorBrutoTotal, 1e-9)
	assert.Equal(t, 1, dados[1].QtdItens)
}
