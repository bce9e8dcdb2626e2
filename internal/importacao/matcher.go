package importacao

import (
	"fmt"
	"strings"

	"github.com/rotafacil/api-frota/internal/despesa"
	"github.com/rotafacil/api-frota/internal/motorista"
	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/utils"
	"github.com/rotafacil/api-frota/internal/veiculo"
)

// OrigemPadrao é a origem atribuída a toda rota criada pela importação.
const OrigemPadrao = "Seara - Bebedouro, SP"

// RotaStore é o recorte do repositório de rotas que a importação usa.
type RotaStore interface {
	Criar(r *rota.Rota) error
	AtualizarCampos(id uint, patch rota.Patch) (*rota.Rota, error)
}

// DespesaStore é o recorte do repositório de despesas que a importação usa.
type DespesaStore interface {
	Criar(d *despesa.Despesa) error
	ContarPernoitesAdmin(rotaID uint) (int64, error)
}

// Matcher concilia linhas de planilha com o cadastro. As consultas de
// contexto (veículos, motoristas, rotas existentes) chegam como snapshot
// para que cada linha seja resolvida contra o mesmo estado — incluindo as
// rotas criadas pelas linhas anteriores da mesma execução.
type Matcher struct {
	Rotas    RotaStore
	Despesas DespesaStore
}

// Resultado resume uma execução de importação. Falhas lista os erros de
// persistência linha a linha; linhas com falha não contam como processadas.
type Resultado struct {
	Processadas int      `json:"processadas"`
	Ignoradas   int      `json:"ignoradas"`
	Falhas      []string `json:"falhas,omitempty"`
}

// ImportarRotas processa as linhas em ordem. Linha sem veículo cadastrado
// (placa normalizada sem correspondente) é ignorada; motorista não
// localizado não impede a importação — a rota é criada sem vínculo e o nome
// original fica registrado no tipo de carga para triagem manual.
func (m *Matcher) ImportarRotas(linhas []LinhaRota, veiculos []veiculo.Veiculo, motoristas []motorista.Motorista, existentes []rota.Rota) Resultado {
	var res Resultado

	for _, linha := range linhas {
		v := buscarVeiculoPorPlaca(veiculos, linha.Placa)
		if v == nil {
			res.Ignoradas++
			continue
		}

		mot := resolverMotorista(motoristas, linha.NomeMotorista, linha.Placa)

		distancia := linha.KMTotal
		if linha.KMFinal > 0 {
			distancia = linha.KMFinal - linha.KMInicial
		}
		receita := v.ValorDiaria + distancia*v.ValorKM + linha.ValorDescarga

		status := rota.StatusEmAndamento
		if linha.KMFinal > 0 {
			status = rota.StatusFinalizada
		}

		var persistida *rota.Rota
		var err error
		if atual := buscarRotaExistente(existentes, linha.NumeroRota, linha.Data); atual != nil {
			patch := rota.Patch{
				VeiculoID:       &v.ID,
				Status:          &status,
				KMInicial:       &linha.KMInicial,
				ReceitaEstimada: &receita,
			}
			if linha.KMFinal > 0 {
				patch.KMFinal = &linha.KMFinal
			}
			// Reimportação nunca desfaz um vínculo de motorista já feito.
			if mot != nil {
				patch.MotoristaID = &mot.ID
			}
			persistida, err = m.Rotas.AtualizarCampos(atual.ID, patch)
			if err == nil {
				*atual = *persistida
			}
		} else {
			nova := rota.Rota{
				VeiculoID:       &v.ID,
				NumeroRota:      linha.NumeroRota,
				Origem:          OrigemPadrao,
				Destino:         linha.Cidade,
				Data:            linha.Data,
				Status:          status,
				TipoCarga:       "Seara",
				ReceitaEstimada: receita,
				KMInicial:       linha.KMInicial,
			}
			if linha.KMFinal > 0 {
				kmFinal := linha.KMFinal
				nova.KMFinal = &kmFinal
			}
			if mot != nil {
				nova.MotoristaID = &mot.ID
			} else if linha.NomeMotorista != "" {
				nova.NomeMotoristaOriginal = linha.NomeMotorista
				nova.TipoCarga = fmt.Sprintf("Seara (PENDENTE: %s)", linha.NomeMotorista)
			}
			err = m.Rotas.Criar(&nova)
			if err == nil {
				existentes = append(existentes, nova)
				persistida = &existentes[len(existentes)-1]
			}
		}
		if err != nil {
			res.Falhas = append(res.Falhas, fmt.Sprintf("rota %s (%s): %v", linha.NumeroRota, linha.Data, err))
			continue
		}

		if linha.QtdPernoites > 0 && mot != nil {
			if err := m.lancarPernoites(persistida.ID, mot.ID, linha); err != nil {
				res.Falhas = append(res.Falhas, fmt.Sprintf("pernoites da rota %s: %v", linha.NumeroRota, err))
			}
		}

		res.Processadas++
	}
	return res
}

// lancarPernoites cria só o déficit entre os pernoites da planilha e as
// despesas administrativas já lançadas para a rota, para que reimportar a
// mesma planilha não duplique lançamentos.
func (m *Matcher) lancarPernoites(rotaID, motoristaID uint, linha LinhaRota) error {
	existentes, err := m.Despesas.ContarPernoitesAdmin(rotaID)
	if err != nil {
		return err
	}
	for i := int64(0); i < int64(linha.QtdPernoites)-existentes; i++ {
		d := despesa.Despesa{
			RotaID:      rotaID,
			MotoristaID: motoristaID,
			Tipo:        despesa.TipoPernoiteAdmin,
			Valor:       0,
			Data:        linha.Data,
			Observacoes: "Pernoite importado via planilha",
		}
		if err := m.Despesas.Criar(&d); err != nil {
			return err
		}
	}
	return nil
}

func buscarVeiculoPorPlaca(veiculos []veiculo.Veiculo, placa string) *veiculo.Veiculo {
	alvo := utils.NormalizarPlaca(placa)
	if alvo == "" {
		return nil
	}
	for i := range veiculos {
		if utils.NormalizarPlaca(veiculos[i].Placa) == alvo {
			return &veiculos[i]
		}
	}
	return nil
}

// resolverMotorista tenta, na ordem: nome normalizado exato, continência
// de nome (em qualquer direção) e por fim a placa cadastrada do motorista.
func resolverMotorista(motoristas []motorista.Motorista, nome, placa string) *motorista.Motorista {
	alvo := utils.NormalizarNome(nome)
	if alvo != "" {
		for i := range motoristas {
			if utils.NormalizarNome(motoristas[i].Nome) == alvo {
				return &motoristas[i]
			}
		}
		for i := range motoristas {
			cadastrado := utils.NormalizarNome(motoristas[i].Nome)
			if cadastrado == "" {
				continue
			}
			if strings.Contains(cadastrado, alvo) || strings.Contains(alvo, cadastrado) {
				return &motoristas[i]
			}
		}
	}

	placaAlvo := utils.NormalizarPlaca(placa)
	if placaAlvo != "" {
		for i := range motoristas {
			if utils.NormalizarPlaca(motoristas[i].Placa) == placaAlvo {
				return &motoristas[i]
			}
		}
	}
	return nil
}

func buscarRotaExistente(rotas []rota.Rota, numero, data string) *rota.Rota {
	for i := range rotas {
		if rotas[i].NumeroRota == numero && rotas[i].Data == data {
			return &rotas[i]
		}
	}
	return nil
}
