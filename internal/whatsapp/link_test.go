package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11987654321", OnlyDigits("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", OnlyDigits("+55 11 98765-4321"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestBuildLink(t *testing.T) {
	link, err := BuildLink("(11) 98765-4321", "Maria", "Rex")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="), link)

	// espaços como %20, nunca como "+"
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	// nomes do tutor e do pet entram na mensagem
	assert.Contains(t, link, "Maria")
	assert.Contains(t, link, "Rex")
}

func TestBuildLink_MensagemCompleta(t *testing.T) {
	link, err := BuildLink("11987654321", "Ana", "Bob")
	require.NoError(t, err)

	want := "https://wa.me/5511987654321?text=" +
		"Ol%C3%A1%20Ana%21%20O%20atendimento%20do%20pet%20Bob%20foi%20conclu%C3%ADdo.%20" +
		"Voc%C3%AA%20j%C3%A1%20pode%20vir%20busc%C3%A1-lo%20em%20nossa%20loja.%20Obrigado%21"
	assert.Equal(t, want, link)
}

func TestBuildLink_TelefoneCurto(t *testing.T) {
	_, err := BuildLink("9876-5432", "Maria", "Rex")
	assert.True(t, httperr.IsBusiness(err, "telefone_invalido"))

	_, err = BuildLink("", "Maria", "Rex")
	assert.True(t, httperr.IsBusiness(err, "telefone_invalido"))
}
