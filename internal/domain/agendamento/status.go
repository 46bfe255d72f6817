package agendamento

import "github.com/BruksfildServices01/petshop-manager/internal/httperr"

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusAgendado    Status = "AGENDADO"
	StatusEmAndamento Status = "EM_ANDAMENTO"
	StatusConcluido   Status = "CONCLUIDO"
	StatusCancelado   Status = "CANCELADO"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAgendado, StatusEmAndamento, StatusConcluido, StatusCancelado:
		return true
	}
	return false
}

// Terminal indica que o agendamento não avança mais.
func (s Status) Terminal() bool {
	return s == StatusConcluido || s == StatusCancelado
}

// ===============================
// Pagamento
// ===============================

type StatusPagamento string

const (
	PagamentoPendente StatusPagamento = "PENDENTE"
	PagamentoPago     StatusPagamento = "PAGO"
)

func (s StatusPagamento) Valid() bool {
	return s == PagamentoPendente || s == PagamentoPago
}

type MetodoPagamento string

const (
	MetodoDinheiro      MetodoPagamento = "DINHEIRO"
	MetodoCartaoCredito MetodoPagamento = "CARTAO_CREDITO"
	MetodoCartaoDebito  MetodoPagamento = "CARTAO_DEBITO"
	MetodoPix           MetodoPagamento = "PIX"
	MetodoTransferencia MetodoPagamento = "TRANSFERENCIA"
)

func (m MetodoPagamento) Valid() bool {
	switch m {
	case MetodoDinheiro, MetodoCartaoCredito, MetodoCartaoDebito, MetodoPix, MetodoTransferencia:
		return true
	}
	return false
}

// ===============================
// Transporte
// ===============================

type TransporteEntrada string

const (
	EntradaDonoTraz TransporteEntrada = "DONO_TRAZ"
	EntradaTaxiDog  TransporteEntrada = "TAXI_DOG"
)

func (t TransporteEntrada) Valid() bool {
	return t == EntradaDonoTraz || t == EntradaTaxiDog
}

type TransporteSaida string

const (
	SaidaDonoBusca TransporteSaida = "DONO_BUSCA"
	SaidaTaxiDog   TransporteSaida = "TAXI_DOG"
)

func (t TransporteSaida) Valid() bool {
	return t == SaidaDonoBusca || t == SaidaTaxiDog
}

// ===============================
// Validações de transição
// ===============================

// CanIniciar define se o atendimento pode começar.
func CanIniciar(current Status) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness("estado_invalido")
	}
	return nil
}

// CanCancelar: qualquer estado não terminal pode ser cancelado.
func CanCancelar(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("estado_invalido")
	}
	return nil
}

// CanPagar: o pagamento é registrado uma única vez.
func CanPagar(current StatusPagamento) error {
	if current == PagamentoPago {
		return httperr.ErrBusiness("pagamento_ja_registrado")
	}
	return nil
}

func InitialStatus() Status {
	return StatusAgendado
}
