package domain

import "github.com/webyte/ploutos-ledger-api/pkg/money"

// Mutações dos sub-livros que mantêm o campo agregado em sincronia com a
// lista itemizada (cheques, outros, brindes, VR e VA). As demais listas não
// espelham o agregado: a conferência entre elas é feita sob demanda pelos
// validadores de conciliação.

// AdicionarCheque acrescenta um cheque ao sub-livro e soma o valor ao
// agregado cheque.
func (e *Entradas) AdicionarCheque(c Cheque) {
	e.Cheques = append(e.Cheques, c)
	e.Cheque = money.Add(e.Cheque, c.Valor)
}

// RemoverCheque remove o cheque pelo índice, devolvendo o valor do agregado.
// Índices fora da lista são ignorados.
func (e *Entradas) RemoverCheque(index int) {
	if index < 0 || index >= len(e.Cheques) {
		return
	}
	removido := e.Cheques[index]
	e.Cheques = append(e.Cheques[:index], e.Cheques[index+1:]...)
	e.Cheque = money.Subtract(e.Cheque, removido.Valor)
}

// AdicionarOutroLancamento acrescenta um lançamento de "outros" e soma o
// valor ao escalar outros.
func (e *Entradas) AdicionarOutroLancamento(descricao string, valor float64) {
	e.OutrosLancamentos = append(e.OutrosLancamentos, Lancamento{Descricao: descricao, Valor: valor})
	e.Outros = money.Add(e.Outros, valor)
}

// RemoverOutroLancamento remove o lançamento pelo índice.
func (e *Entradas) RemoverOutroLancamento(index int) {
	if index < 0 || index >= len(e.OutrosLancamentos) {
		return
	}
	removido := e.OutrosLancamentos[index]
	e.OutrosLancamentos = append(e.OutrosLancamentos[:index], e.OutrosLancamentos[index+1:]...)
	e.Outros = money.Subtract(e.Outros, removido.Valor)
}

// AdicionarBrindeLancamento acrescenta um lançamento de brinde.
func (e *Entradas) AdicionarBrindeLancamento(descricao string, valor float64) {
	e.BrindesLancamentos = append(e.BrindesLancamentos, Lancamento{Descricao: descricao, Valor: valor})
	e.Brindes = money.Add(e.Brindes, valor)
}

// RemoverBrindeLancamento remove o lançamento pelo índice.
func (e *Entradas) RemoverBrindeLancamento(index int) {
	if index < 0 || index >= len(e.BrindesLancamentos) {
		return
	}
	removido := e.BrindesLancamentos[index]
	e.BrindesLancamentos = append(e.BrindesLancamentos[:index], e.BrindesLancamentos[index+1:]...)
	e.Brindes = money.Subtract(e.Brindes, removido.Valor)
}

// AdicionarVRLancamento acrescenta um vale refeição.
func (e *Entradas) AdicionarVRLancamento(l ValeLancamento) {
	e.VRLancamentos = append(e.VRLancamentos, l)
	e.ValeRefeicao = money.Add(e.ValeRefeicao, l.Valor)
}

// RemoverVRLancamento remove o vale refeição pelo índice.
func (e *Entradas) RemoverVRLancamento(index int) {
	if index < 0 || index >= len(e.VRLancamentos) {
		return
	}
	removido := e.VRLancamentos[index]
	e.VRLancamentos = append(e.VRLancamentos[:index], e.VRLancamentos[index+1:]...)
	e.ValeRefeicao = money.Subtract(e.ValeRefeicao, removido.Valor)
}

// AdicionarVALancamento acrescenta um vale alimentação.
func (e *Entradas) AdicionarVALancamento(l ValeLancamento) {
	e.VALancamentos = append(e.VALancamentos, l)
	e.ValeAlimentacao = money.Add(e.ValeAlimentacao, l.Valor)
}

// RemoverVALancamento remove o vale alimentação pelo índice.
func (e *Entradas) RemoverVALancamento(index int) {
	if index < 0 || index >= len(e.VALancamentos) {
		return
	}
	removido := e.VALancamentos[index]
	e.VALancamentos = append(e.VALancamentos[:index], e.VALancamentos[index+1:]...)
	e.ValeAlimentacao = money.Subtract(e.ValeAlimentacao, removido.Valor)
}

// AdicionarSaidaRetirada acrescenta uma retirada itemizada.
func (s *Saidas) AdicionarSaidaRetirada(sr SaidaRetirada) {
	s.SaidasRetiradas = append(s.SaidasRetiradas, sr)
}

// RemoverSaidaRetirada remove a retirada pelo índice.
func (s *Saidas) RemoverSaidaRetirada(index int) {
	if index < 0 || index >= len(s.SaidasRetiradas) {
		return
	}
	s.SaidasRetiradas = append(s.SaidasRetiradas[:index], s.SaidasRetiradas[index+1:]...)
}

// AtualizarSaidaRetirada substitui a retirada no índice informado.
func (s *Saidas) AtualizarSaidaRetirada(index int, sr SaidaRetirada) {
	if index < 0 || index >= len(s.SaidasRetiradas) {
		return
	}
	s.SaidasRetiradas[index] = sr
}
