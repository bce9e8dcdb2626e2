package automacao

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotafacil/api-frota/internal/rota"
	"github.com/rotafacil/api-frota/internal/statusdiario"
)

type quadroFake struct {
	registros map[string]statusdiario.StatusDiario
	falhar    bool
}

func novoQuadroFake() *quadroFake {
	return &quadroFake{registros: map[string]statusdiario.StatusDiario{}}
}

func chave(veiculoID uint, data string) string {
	return fmt.Sprintf("%d|%s", veiculoID, data)
}

func (q *quadroFake) Upsert(s *statusdiario.StatusDiario) error {
	if q.falhar {
		return errors.New("banco indisponível")
	}
	q.registros[chave(s.VeiculoID, s.Data)] = *s
	return nil
}

func (q *quadroFake) BuscarPorVeiculoEData(veiculoID uint, data string) (*statusdiario.StatusDiario, error) {
	s, ok := q.registros[chave(veiculoID, data)]
	if !ok {
		return nil, errors.New("registro não encontrado")
	}
	return &s, nil
}

func rotaComStatus(veiculoID uint, data string, status rota.Status) rota.Rota {
	return rota.Rota{VeiculoID: &veiculoID, Data: data, Status: status}
}

func TestAoTransicionarEmAndamento(t *testing.T) {
	quadro := novoQuadroFake()
	New(quadro).AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusEmAndamento))

	s, err := quadro.BuscarPorVeiculoEData(1, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoEmRota, s.Status)
	assert.Equal(t, "Em Rota (Automático)", s.StatusTexto)
	assert.Len(t, quadro.registros, 1)
}

func TestAoTransicionarPernoiteMarcaDiaSeguinte(t *testing.T) {
	quadro := novoQuadroFake()
	New(quadro).AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusPernoite))

	hoje, err := quadro.BuscarPorVeiculoEData(1, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoPernoite, hoje.Status)

	amanha, err := quadro.BuscarPorVeiculoEData(1, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoDisponivel, amanha.Status)
	assert.Equal(t, "Disponível (Pós-Pernoite)", amanha.StatusTexto)
}

func TestAoTransicionarFinalizada(t *testing.T) {
	quadro := novoQuadroFake()
	New(quadro).AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusFinalizada))

	hoje, err := quadro.BuscarPorVeiculoEData(1, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoFinalizada, hoje.Status)

	amanha, err := quadro.BuscarPorVeiculoEData(1, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoDisponivel, amanha.Status)
	assert.Equal(t, "Disponível (Pós-Rota)", amanha.StatusTexto)
}

func TestFinalizadaNaoSobrescrevePernoite(t *testing.T) {
	quadro := novoQuadroFake()
	automator := New(quadro)

	automator.AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusPernoite))
	automator.AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusFinalizada))

	hoje, err := quadro.BuscarPorVeiculoEData(1, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoPernoite, hoje.Status, "pernoite do dia permanece")

	amanha, err := quadro.BuscarPorVeiculoEData(1, "2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, statusdiario.CodigoDisponivel, amanha.Status)
}

func TestAoTransicionarIdempotente(t *testing.T) {
	quadro := novoQuadroFake()
	automator := New(quadro)

	automator.AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusEmAndamento))
	automator.AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusEmAndamento))

	assert.Len(t, quadro.registros, 1, "reaplicar a mesma transição não duplica registros")
}

func TestAoTransicionarSemVeiculo(t *testing.T) {
	quadro := novoQuadroFake()
	New(quadro).AoTransicionar(rota.Rota{Data: "2024-03-10", Status: rota.StatusEmAndamento})
	assert.Empty(t, quadro.registros)
}

func TestAoTransicionarDataInvalida(t *testing.T) {
	quadro := novoQuadroFake()
	New(quadro).AoTransicionar(rotaComStatus(1, "10/03/2024", rota.StatusPernoite))

	// O pernoite do próprio dia ainda é gravado com a data como veio; só o
	// dia seguinte é descartado.
	assert.Len(t, quadro.registros, 1)
}

func TestAoTransicionarEngoleErroDePersistencia(t *testing.T) {
	quadro := novoQuadroFake()
	quadro.falhar = true

	assert.NotPanics(t, func() {
		New(quadro).AoTransicionar(rotaComStatus(1, "2024-03-10", rota.StatusPernoite))
	})
	assert.Empty(t, quadro.registros)
}
