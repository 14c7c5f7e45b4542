package cpf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmgo/frota-gr-api/pkg/cpf"
)

// CPFs válidos conhecidos (gerados pelo próprio algoritmo da Receita e
// conferidos manualmente).
var validCPFs = []string{
	"52998224725",
	"529.982.247-25",
	"11144477735",
	"111.444.777-35",
}

func TestValidate_CPFsValidos(t *testing.T) {
	for _, c := range validCPFs {
		t.Run(c, func(t *testing.T) {
			require.NoError(t, cpf.Validate(c))
			assert.True(t, cpf.IsValid(c))
		})
	}
}

// Sequências de dígitos repetidos passam na conta do módulo 11 mas não são
// CPFs reais; devem ser rejeitadas explicitamente.
func TestValidate_DigitosRepetidosSempreInvalido(t *testing.T) {
	for d := 0; d <= 9; d++ {
		s := ""
		for i := 0; i < 11; i++ {
			s += fmt.Sprint(d)
		}
		assert.False(t, cpf.IsValid(s), "CPF %s deve ser inválido", s)
	}
}

func TestValidate_DigitoVerificadorErrado(t *testing.T) {
	// Último dígito alterado de um CPF válido.
	assert.Error(t, cpf.Validate("52998224726"))
	// Penúltimo dígito alterado (primeiro verificador).
	assert.Error(t, cpf.Validate("52998224715"))
}

func TestValidate_TamanhoErrado(t *testing.T) {
	assert.Error(t, cpf.Validate(""))
	assert.Error(t, cpf.Validate("123"))
	assert.Error(t, cpf.Validate("529982247250"))
	assert.Error(t, cpf.Validate("abc"))
}

// Dígitos de outros alfabetos não contam como dígitos: o CPF é ASCII. Um
// CPF válido com um dígito trocado por indo-arábico fica com 10 dígitos e
// falha pelo tamanho, nunca entra na conta do módulo 11.
func TestValidate_DigitosNaoASCII(t *testing.T) {
	assert.Error(t, cpf.Validate("5299822472٣"))
	assert.Error(t, cpf.Validate("٥٢٩٩٨٢٢٤٧٢٥"))
	// Misturado com pontuação continua valendo só o que é ASCII.
	assert.Error(t, cpf.Validate("٣529.982.247-2"))
}

func TestValidate_IgnoraPontuacao(t *testing.T) {
	require.NoError(t, cpf.Validate("529.982.247-25"))
	require.Error(t, cpf.Validate("529.982.247-26"))
}
