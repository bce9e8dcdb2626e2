// Package receita calcula a receita de viagem a partir da tabela de
// tarifas do veículo e da quilometragem rodada.
package receita

import (
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/utils"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

// Calcular retorna diária + km rodado * tarifa de km. Sem km final, vale
// apenas a diária. Delta negativo de km conta como zero — a contribuição
// de km nunca é negativa. Sem veículo resolvido a receita é zero; quem
// chama escolhe o fallback via CalcularComFallback.
func Calcular(v *veiculo.Veiculo, kmInicial float64, kmFinal *float64) float64 {
	if v == nil {
		return 0
	}
	if kmFinal == nil {
		return v.ValorDiaria
	}
	delta := *kmFinal - kmInicial
	if delta < 0 {
		delta = 0
	}
	return v.ValorDiaria + delta*v.ValorKM
}

// CalcularComFallback usa o valor informado quando não há veículo — em
// geral a receita estimada pré-gravada na rota.
func CalcularComFallback(v *veiculo.Veiculo, kmInicial float64, kmFinal *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return Calcular(v, kmInicial, kmFinal)
}

// ResolverVeiculo aplica a precedência de resolução: primeiro o veículo da
// própria rota, depois a placa cadastrada do motorista. Sem resolução o
// retorno é nil — nunca um veículo arbitrário da frota.
func ResolverVeiculo(r rota.Rota, veiculos []veiculo.Veiculo, motoristas []motorista.Motorista) *veiculo.Veiculo {
	if r.VeiculoID != nil {
		for i := range veiculos {
			if veiculos[i].ID == *r.VeiculoID {
				return &veiculos[i]
			}
		}
	}
	if r.MotoristaID != nil {
		for _, m := range motoristas {
			if m.ID != *r.MotoristaID || m.Placa == "" {
				continue
			}
			placa := utils.NormalizarPlaca(m.Placa)
			for i := range veiculos {
				if utils.NormalizarPlaca(veiculos[i].Placa) == placa {
					return &veiculos[i]
				}
			}
		}
	}
	return nil
}

// CalcularRota resolve o veículo e calcula a receita da rota em um passo.
// Sem veículo resolvível vale a receita pré-gravada na própria rota.
func CalcularRota(r rota.Rota, veiculos []veiculo.Veiculo, motoristas []motorista.Motorista) float64 {
	v := ResolverVeiculo(r, veiculos, motoristas)
	return CalcularComFallback(v, r.KMInicial, r.KMFinal, r.ReceitaEstimada)
}
