package statusdiario

import (
	"strings"

	"github.com/rotafacil/api-frota/internal/rota"
)

// MapearStatusRota converte o status de uma rota no código exibido no
// quadro da frota. Rotas pendentes não geram status (célula vazia).
func MapearStatusRota(s rota.Status) (Codigo, bool) {
	switch s {
	case rota.StatusEmAndamento:
		return CodigoEmRota, true
	case rota.StatusPernoite:
		return CodigoPernoite, true
	case rota.StatusFinalizada:
		return CodigoFinalizada, true
	case rota.StatusProblema:
		return CodigoManutencao, true
	}
	return "", false
}

// StatusNoDia resolve o status de um veículo em um dia:
// 1. registro manual para (veículo, data) sempre vence;
// 2. senão, a primeira rota do veículo naquele dia, mapeada pelo status;
// 3. senão, nenhum status.
// Se duas rotas colidirem no mesmo dia, vence a primeira na ordem estável
// da listagem.
func StatusNoDia(veiculoID uint, data string, manuais []StatusDiario, rotas []rota.Rota) (Codigo, bool) {
	for _, m := range manuais {
		if m.VeiculoID == veiculoID && m.Data == data {
			return m.Status, true
		}
	}
	for _, r := range rotas {
		if r.VeiculoID == nil || *r.VeiculoID != veiculoID {
			continue
		}
		// Datas podem vir com sufixo de horário de fontes antigas.
		dataRota := strings.SplitN(r.Data, "T", 2)[0]
		if dataRota != data {
			continue
		}
		if c, ok := MapearStatusRota(r.Status); ok {
			return c, true
		}
	}
	return "", false
}
