package pipeline

import "fmt"

// Status is a pipeline stage a lead occupies. The board renders one
// column per status, in the order of Columns.
type Status string

const (
	StatusNovoLead      Status = "novo_lead"
	StatusEmAtendimento Status = "em_atendimento"
	StatusVisita        Status = "visita"
	StatusAgendamento   Status = "agendamento"
	StatusProposta      Status = "proposta"
	StatusVendaFechada  Status = "venda_fechada"
	StatusVendaPerdida  Status = "venda_perdida"
)

// Columns returns all statuses in board display order.
func Columns() []Status {
	return []Status{
		StatusNovoLead,
		StatusEmAtendimento,
		StatusVisita,
		StatusAgendamento,
		StatusProposta,
		StatusVendaFechada,
		StatusVendaPerdida,
	}
}

// Valid reports whether s is one of the seven defined statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNovoLead, StatusEmAtendimento, StatusVisita,
		StatusAgendamento, StatusProposta, StatusVendaFechada,
		StatusVendaPerdida:
		return true
	}
	return false
}

// Terminal reports whether s represents pipeline closure (won/lost).
// Terminal statuses are terminal in intended use only: the service does
// not block transitions out of them, the board just hides their columns
// by default.
func (s Status) Terminal() bool {
	return s == StatusVendaFechada || s == StatusVendaPerdida
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}
