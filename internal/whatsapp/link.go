package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
)

// CountryCode prefixado em todo número antes de montar o link (Brasil).
const CountryCode = "55"

const mensagemTemplate = "Olá %s! O atendimento do pet %s foi concluído. Você já pode vir buscá-lo em nossa loja. Obrigado!"

// OnlyDigits remove tudo que não é dígito do telefone.
func OnlyDigits(telefone string) string {
	var b strings.Builder
	for _, r := range telefone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink monta o deep link do WhatsApp com a mensagem de atendimento
// concluído. O telefone precisa ter ao menos 10 dígitos depois de limpo.
func BuildLink(telefone, tutorNome, petNome string) (string, error) {
	digits := OnlyDigits(telefone)
	if len(digits) < 10 {
		return "", httperr.ErrBusiness("telefone_invalido")
	}

	msg := fmt.Sprintf(mensagemTemplate, tutorNome, petNome)

	// QueryEscape usa "+" para espaço; o wa.me espera %20.
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")

	return "https://wa.me/" + CountryCode + digits + "?text=" + encoded, nil
}
