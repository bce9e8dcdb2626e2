// Package importacao lê planilhas de operação (rotas em lote e fechamento)
// e concilia as linhas com o cadastro interno de rotas, veículos e
// motoristas. A leitura de células fica isolada aqui: o matcher e o
// fechamento recebem registros já materializados, nunca células cruas.
package importacao

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// LinhaRota é uma linha materializada da planilha de importação em lote.
type LinhaRota struct {
	Placa         string
	NomeMotorista string
	NumeroRota    string
	Data          string // YYYY-MM-DD
	KMInicial     float64
	KMFinal       float64
	KMTotal       float64
	Cidade        string
	QtdPernoites  int
	ValorDescarga float64
}

// DadosFechamento agrega as linhas da planilha de fechamento por
// identificador de rota; várias linhas físicas do mesmo identificador são
// somadas.
type DadosFechamento struct {
	NumeroRota      string
	DataPagamento   string
	ValorBrutoTotal float64
	QtdItens        int
}

// Cabeçalhos reconhecidos na planilha de rotas.
const (
	colPlaca     = "PLACA"
	colMotorista = "MOTORISTA"
	colViagem    = "VIAGEM"
	colData      = "DATA"
	colKMInicio  = "KM INICIO"
	colKMFinal   = "KM FINAL"
	colTotal     = "TOTAL"
	colCidade    = "CIDADE"
	colPernoite  = "PERNOITE"
	colDescarga  = "DESCARGA"
)

// LerPlanilhaRotas lê a primeira aba e localiza a linha de cabeçalho
// procurando uma célula "PLACA" nas primeiras 20 linhas; sem cabeçalho a
// leitura falha. Linhas sem placa ou sem número de viagem são descartadas.
func LerPlanilhaRotas(r io.Reader) ([]LinhaRota, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	linhas, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("ler planilha: %w", err)
	}

	cabecalho := -1
	for i := 0; i < len(linhas) && i < 20 && cabecalho < 0; i++ {
		for _, celula := range linhas[i] {
			if strings.ToUpper(strings.TrimSpace(celula)) == colPlaca {
				cabecalho = i
				break
			}
		}
	}
	if cabecalho < 0 {
		return nil, fmt.Errorf("cabeçalho %q não encontrado na planilha", colPlaca)
	}

	indices := map[string]int{}
	for i, celula := range linhas[cabecalho] {
		indices[strings.ToUpper(strings.TrimSpace(celula))] = i
	}
	valor := func(linha []string, nome string) string {
		idx, ok := indices[nome]
		if !ok || idx >= len(linha) {
			return ""
		}
		return strings.TrimSpace(linha[idx])
	}

	var resultado []LinhaRota
	for _, linha := range linhas[cabecalho+1:] {
		l := LinhaRota{
			Placa:         strings.ToUpper(valor(linha, colPlaca)),
			NomeMotorista: strings.ToUpper(valor(linha, colMotorista)),
			NumeroRota:    valor(linha, colViagem),
			Data:          parseDataRota(valor(linha, colData)),
			KMInicial:     parseNumero(valor(linha, colKMInicio)),
			KMFinal:       parseNumero(valor(linha, colKMFinal)),
			KMTotal:       parseNumero(valor(linha, colTotal)),
			Cidade:        valor(linha, colCidade),
			QtdPernoites:  int(parseNumero(valor(linha, colPernoite))),
			ValorDescarga: parseMoeda(valor(linha, colDescarga)),
		}
		if l.Placa == "" || l.NumeroRota == "" {
			continue
		}
		resultado = append(resultado, l)
	}
	return resultado, nil
}

// LerPlanilhaFechamento lê a planilha de fechamento: identificador na
// coluna D, data de pagamento na O e valor bruto na P, agrupando e somando
// por identificador na ordem de primeira ocorrência.
func LerPlanilhaFechamento(r io.Reader) ([]DadosFechamento, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer f.Close()

	linhas, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("ler planilha: %w", err)
	}

	const (
		idxIdentificador = 3  // coluna D
		idxDataPagamento = 14 // coluna O
		idxValorBruto    = 15 // coluna P
	)

	celula := func(linha []string, idx int) string {
		if idx >= len(linha) {
			return ""
		}
		return strings.TrimSpace(linha[idx])
	}

	var ordem []string
	porNumero := map[string]*DadosFechamento{}

	for i, linha := range linhas {
		if i == 0 {
			continue // cabeçalho
		}
		numero := celula(linha, idxIdentificador)
		if numero == "" {
			continue
		}

		d, ok := porNumero[numero]
		if !ok {
			d = &DadosFechamento{
				NumeroRota:    numero,
				DataPagamento: parseDataPagamento(celula(linha, idxDataPagamento)),
			}
			porNumero[numero] = d
			ordem = append(ordem, numero)
		}
		d.ValorBrutoTotal += parseMoeda(celula(linha, idxValorBruto))
		d.QtdItens++
	}

	resultado := make([]DadosFechamento, 0, len(ordem))
	for _, numero := range ordem {
		resultado = append(resultado, *porNumero[numero])
	}
	return resultado, nil
}

var mesesAbreviados = map[string]string{
	"jan": "01", "fev": "02", "mar": "03", "abr": "04", "mai": "05", "jun": "06",
	"jul": "07", "ago": "08", "set": "09", "out": "10", "nov": "11", "dez": "12",
}

// parseDataRota aceita um serial de Excel ou "DD/mmm" com mês abreviado em
// português (o ano corrente é assumido). Valor irreconhecível vira a data
// de hoje.
func parseDataRota(s string) string {
	if s == "" {
		return time.Now().Format("2006-01-02")
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return dataDeSerial(serial)
	}
	if strings.Contains(s, "/") {
		partes := strings.Split(strings.TrimSpace(s), "/")
		if len(partes) >= 2 {
			dia := partes[0]
			if len(dia) == 1 {
				dia = "0" + dia
			}
			mesAbrev := strings.ToLower(partes[1])
			if len(mesAbrev) > 3 {
				mesAbrev = mesAbrev[:3]
			}
			mes, ok := mesesAbreviados[mesAbrev]
			if !ok {
				mes = "01"
			}
			return fmt.Sprintf("%d-%s-%s", time.Now().Year(), mes, dia)
		}
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s
	}
	return time.Now().Format("2006-01-02")
}

// parseDataPagamento converte serial de Excel em YYYY-MM-DD; qualquer
// outra string é mantida como veio.
func parseDataPagamento(s string) string {
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return dataDeSerial(serial)
	}
	return s
}

// dataDeSerial converte um serial de data do Excel (dias desde 1899-12-30).
func dataDeSerial(serial float64) string {
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(serial)).Format("2006-01-02")
}

// parseNumero lê um número de célula; vírgula decimal é aceita e valor não
// numérico degrada para zero em vez de falhar a importação.
func parseNumero(s string) float64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseMoeda lê uma célula monetária: número cru ou string localizada com
// prefixo de moeda e vírgula decimal ("R$ 1.234,56").
func parseMoeda(s string) float64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(b.String(), ",", "."), 64)
	if err != nil {
		return 0
	}
	return n
}
