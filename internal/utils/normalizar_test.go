package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarPlaca(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"ABC1234", "ABC1234"},
		{"abc-1234", "ABC1234"},
		{" abc 1234 ", "ABC1234"},
		{"AbC-1D23", "ABC1D23"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, NormalizarPlaca(c.entrada), "placa %q", c.entrada)
	}
}

func TestNormalizarPlacaMesmaChave(t *testing.T) {
	// Grafias diferentes da mesma placa precisam colidir na mesma chave.
	assert.Equal(t, NormalizarPlaca("ABC-1234"), NormalizarPlaca("abc1234"))
	assert.Equal(t, NormalizarPlaca("ABC 1234"), NormalizarPlaca("ABC1234"))
}

func TestNormalizarNome(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"João da Silva", "JOAO DA SILVA"},
		{"  josé antônio  ", "JOSE ANTONIO"},
		{"MARIA", "MARIA"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, NormalizarNome(c.entrada), "nome %q", c.entrada)
	}
}
