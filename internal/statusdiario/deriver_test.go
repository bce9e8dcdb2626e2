package statusdiario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotafacil/api-frota/internal/rota"
)

func TestMapearStatusRota(t *testing.T) {
	casos := []struct {
		status   rota.Status
		esperado Codigo
	}{
		{rota.StatusEmAndamento, CodigoEmRota},
		{rota.StatusPernoite, CodigoPernoite},
		{rota.StatusFinalizada, CodigoFinalizada},
		{rota.StatusProblema, CodigoManutencao},
	}
	for _, c := range casos {
		codigo, ok := MapearStatusRota(c.status)
		require.True(t, ok, "status %q", c.status)
		assert.Equal(t, c.esperado, codigo)
	}

	_, ok := MapearStatusRota(rota.StatusPendente)
	assert.False(t, ok, "rota pendente não gera status no quadro")
}

func TestStatusNoDiaManualVence(t *testing.T) {
	veiculoID := uint(1)
	manuais := []StatusDiario{{VeiculoID: 1, Data: "2024-03-10", Status: CodigoManutencao}}
	rotas := []rota.Rota{{VeiculoID: &veiculoID, Data: "2024-03-10", Status: rota.StatusEmAndamento}}

	codigo, ok := StatusNoDia(1, "2024-03-10", manuais, rotas)
	require.True(t, ok)
	assert.Equal(t, CodigoManutencao, codigo)
}

func TestStatusNoDiaDerivadoDaRota(t *testing.T) {
	veiculoID := uint(1)
	rotas := []rota.Rota{{VeiculoID: &veiculoID, Data: "2024-03-10", Status: rota.StatusPernoite}}

	codigo, ok := StatusNoDia(1, "2024-03-10", nil, rotas)
	require.True(t, ok)
	assert.Equal(t, CodigoPernoite, codigo)

	_, ok = StatusNoDia(1, "2024-03-11", nil, rotas)
	assert.False(t, ok, "dia sem rota e sem manual fica vazio")

	_, ok = StatusNoDia(2, "2024-03-10", nil, rotas)
	assert.False(t, ok, "outro veículo não herda o status")
}

func TestStatusNoDiaIgnoraSufixoDeHorario(t *testing.T) {
	veiculoID := uint(1)
	rotas := []rota.Rota{{VeiculoID: &veiculoID, Data: "2024-03-10T00:00:00", Status: rota.StatusEmAndamento}}

	codigo, ok := StatusNoDia(1, "2024-03-10", nil, rotas)
	require.True(t, ok)
	assert.Equal(t, CodigoEmRota, codigo)
}

func TestStatusNoDiaPrimeiraRotaVence(t *testing.T) {
	veiculoID := uint(1)
	rotas := []rota.Rota{
		{VeiculoID: &veiculoID, Data: "2024-03-10", Status: rota.StatusEmAndamento},
		{VeiculoID: &veiculoID, Data: "2024-03-10", Status: rota.StatusFinalizada},
	}
	codigo, ok := StatusNoDia(1, "2024-03-10", nil, rotas)
	require.True(t, ok)
	assert.Equal(t, CodigoEmRota, codigo)
}

func TestCodigoRotulo(t *testing.T) {
	assert.Equal(t, "Em Rota", CodigoEmRota.Rotulo())
	assert.Equal(t, "Disponível", CodigoDisponivel.Rotulo())
	assert.True(t, CodigoPernoite.Valido())
	assert.False(t, Codigo("X").Valido())
}
