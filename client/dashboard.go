package client

import (
	"context"
	"sort"
	"time"
)

type Stats struct {
	TotalRecados       int
	PessoasCadastradas int
	RecadosHoje        int
	RecadosNaoLidos    int
}

type GrowthStats struct {
	// RecadosOntem counts yesterday's recados.
	RecadosOntem int
	// PessoasEstaSemana counts registrations in the last seven days.
	PessoasEstaSemana int
}

type RecentMessage struct {
	ID     uint64
	Titulo string
	De     string
	Para   string
	Data   time.Time
	Lido   bool
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// GetStats derives the dashboard counters from full listings, the same way
// the web frontend does.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	recados, err := c.ListRecados(ctx)
	if err != nil {
		return nil, err
	}
	pessoas, err := c.ListPessoas(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalRecados:       len(recados),
		PessoasCadastradas: len(pessoas),
	}
	hoje := time.Now()
	for _, recado := range recados {
		if sameDay(recado.Data, hoje) {
			stats.RecadosHoje++
		}
		if !recado.Lido {
			stats.RecadosNaoLidos++
		}
	}
	return stats, nil
}

func (c *Client) GetGrowthStats(ctx context.Context) (*GrowthStats, error) {
	recados, err := c.ListRecados(ctx)
	if err != nil {
		return nil, err
	}
	pessoas, err := c.ListPessoas(ctx)
	if err != nil {
		return nil, err
	}

	growth := &GrowthStats{}
	ontem := time.Now().AddDate(0, 0, -1)
	semanaPassada := time.Now().AddDate(0, 0, -7)
	for _, recado := range recados {
		if sameDay(recado.Data, ontem) {
			growth.RecadosOntem++
		}
	}
	for _, pessoa := range pessoas {
		if !pessoa.CreatedAt.Before(semanaPassada) {
			growth.PessoasEstaSemana++
		}
	}
	return growth, nil
}

// GetRecentMessages returns up to limit recados, newest first, with the body
// truncated to 50 characters for display.
func (c *Client) GetRecentMessages(ctx context.Context, limit int) ([]RecentMessage, error) {
	if limit <= 0 {
		limit = 5
	}
	recados, err := c.ListRecados(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(recados, func(i, j int) bool {
		return recados[i].Data.After(recados[j].Data)
	})
	if len(recados) > limit {
		recados = recados[:limit]
	}

	recent := make([]RecentMessage, 0, len(recados))
	for _, recado := range recados {
		titulo := recado.Texto
		if len([]rune(titulo)) > 50 {
			titulo = string([]rune(titulo)[:50]) + "..."
		}
		recent = append(recent, RecentMessage{
			ID:     recado.ID,
			Titulo: titulo,
			De:     recado.De.Nome,
			Para:   recado.Para.Nome,
			Data:   recado.Data,
			Lido:   recado.Lido,
		})
	}
	return recent, nil
}
