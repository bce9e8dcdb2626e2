package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarPlaca remove tudo que não for alfanumérico e coloca em maiúsculas.
// "ABC-1234", "abc1234" e "ABC 1234" normalizam para o mesmo valor.
func NormalizarPlaca(placa string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(placa) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizarNome decompõe acentos (NFD), remove as marcas diacríticas e
// coloca em maiúsculas, para comparação tolerante de nomes de motorista.
func NormalizarNome(nome string) string {
	s, _, err := transform.String(removeAcentos, nome)
	if err != nil {
		s = nome
	}
	return strings.ToUpper(strings.TrimSpace(s))
}
