package fechamento

import (
	"strings"

	"github.com/rotafacil/api-frota/internal/importacao"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/utils"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

// MontarLinhas concilia os dados agregados da planilha com as rotas e o
// cadastro. O número de rota é comparado sem distinção de caixa; o veículo
// vem do vínculo direto da rota ou, na falta dele, da placa cadastrada do
// motorista. KMSeara começa igual ao quilometrado e pode ser ajustado
// antes do aceite.
func MontarLinhas(dados []importacao.DadosFechamento, rotas []rota.Rota, veiculos []veiculo.Veiculo, motoristas []motorista.Motorista) []Linha {
	linhas := make([]Linha, 0, len(dados))
	for _, d := range dados {
		l := Linha{
			NumeroRota:    d.NumeroRota,
			DataPagamento: d.DataPagamento,
			QtdItens:      d.QtdItens,
			ValorDescarga: d.ValorBrutoTotal,
			Status:        LinhaSemRota,
		}

		if r := buscarRota(rotas, d.NumeroRota); r != nil {
			l.RotaID = &r.ID
			if r.KMFinal != nil && *r.KMFinal > r.KMInicial {
				l.KMReal = *r.KMFinal - r.KMInicial
			}
			l.KMSeara = l.KMReal

			if v := buscarVeiculo(*r, veiculos, motoristas); v != nil {
				copia := *v
				l.Veiculo = &copia
				l.Status = LinhaOk
			} else {
				l.Status = LinhaSemVeiculo
			}
		}

		Recalcular(&l)
		linhas = append(linhas, l)
	}
	return linhas
}

// Recalcular refaz os valores derivados da linha a partir da tarifa
// copiada. Linha sem veículo zera a parte tarifada mas preserva a descarga
// reportada na planilha.
func Recalcular(l *Linha) {
	if l.Veiculo == nil {
		l.ValorDiaria = 0
		l.ValKMSeara = 0
		l.ValKMPerdido = 0
		l.ValTotal = l.ValorDescarga
		return
	}
	l.ValorDiaria = l.Veiculo.ValorDiaria
	l.ValKMSeara = l.KMSeara * l.Veiculo.ValorKM
	l.ValKMPerdido = l.KMReal*l.Veiculo.ValorKM - l.ValKMSeara
	if l.ValKMPerdido < 0 {
		l.ValKMPerdido = 0
	}
	l.ValTotal = l.ValorDiaria + l.ValKMSeara + l.ValorDescarga
}

// Agregar totaliza o fechamento. ValorTotal é o lado calculado da
// conciliação (diária + km remunerado, sem descarga); ValorReceber é o
// lado reportado, a soma das descargas da planilha.
func Agregar(f *Fechamento) {
	f.ValorTotal = 0
	f.ValorReceber = 0
	for _, l := range f.Linhas {
		f.ValorTotal += l.ValorDiaria + l.ValKMSeara
		f.ValorReceber += l.ValorDescarga
	}
	f.Divergencia = f.ValorTotal - f.ValorReceber
}

// AplicarDataPagamento define a mesma data de pagamento para todas as
// linhas da prévia.
func AplicarDataPagamento(linhas []Linha, data string) {
	for i := range linhas {
		linhas[i].DataPagamento = data
	}
}

// AtualizarKmSeara ajusta a quilometragem remunerada de uma linha e refaz
// os derivados.
func AtualizarKmSeara(linhas []Linha, numeroRota string, km float64) bool {
	for i := range linhas {
		if strings.EqualFold(linhas[i].NumeroRota, numeroRota) {
			linhas[i].KMSeara = km
			Recalcular(&linhas[i])
			return true
		}
	}
	return false
}

// VerificarDuplicidade devolve erro se alguma rota da planilha já consta
// em um fechamento gravado. A comparação ignora caixa.
func VerificarDuplicidade(historico []Fechamento, linhas []Linha) *ErroRotasJaFechadas {
	fechadas := map[string]bool{}
	for _, f := range historico {
		for _, l := range f.Linhas {
			fechadas[strings.ToUpper(l.NumeroRota)] = true
		}
	}

	var duplicadas []string
	for _, l := range linhas {
		if fechadas[strings.ToUpper(l.NumeroRota)] {
			duplicadas = append(duplicadas, l.NumeroRota)
		}
	}
	if len(duplicadas) == 0 {
		return nil
	}
	return &ErroRotasJaFechadas{Numeros: duplicadas}
}

func buscarRota(rotas []rota.Rota, numero string) *rota.Rota {
	for i := range rotas {
		if strings.EqualFold(rotas[i].NumeroRota, numero) {
			return &rotas[i]
		}
	}
	return nil
}

func buscarVeiculo(r rota.Rota, veiculos []veiculo.Veiculo, motoristas []motorista.Motorista) *veiculo.Veiculo {
	if r.VeiculoID != nil {
		for i := range veiculos {
			if veiculos[i].ID == *r.VeiculoID {
				return &veiculos[i]
			}
		}
	}
	if r.MotoristaID != nil {
		for i := range motoristas {
			if motoristas[i].ID != *r.MotoristaID {
				continue
			}
			placa := utils.NormalizarPlaca(motoristas[i].Placa)
			if placa == "" {
				return nil
			}
			for j := range veiculos {
				if utils.NormalizarPlaca(veiculos[j].Placa) == placa {
					return &veiculos[j]
				}
			}
		}
	}
	return nil
}
