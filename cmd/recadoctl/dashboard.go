package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Width(24)
	panelTitle = lipgloss.NewStyle().Bold(true)
	unreadMark = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func panel(title string, value int) string {
	return panelStyle.Render(fmt.Sprintf("%s\n%d", panelTitle.Render(title), value))
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := api.GetStats(cmd.Context())
		if err != nil {
			return err
		}
		growth, err := api.GetGrowthStats(cmd.Context())
		if err != nil {
			return err
		}

		row1 := lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Recados", stats.TotalRecados),
			panel("Pessoas", stats.PessoasCadastradas),
		)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Hoje", stats.RecadosHoje),
			panel("Não lidos", stats.RecadosNaoLidos),
		)
		row3 := lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Ontem", growth.RecadosOntem),
			panel("Novas na semana", growth.PessoasEstaSemana),
		)
		fmt.Println(lipgloss.JoinVertical(lipgloss.Left, row1, row2, row3))

		recent, err := api.GetRecentMessages(cmd.Context(), 5)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			return nil
		}

		var b strings.Builder
		b.WriteString(panelTitle.Render("Recentes") + "\n")
		for _, msg := range recent {
			mark := " "
			if !msg.Lido {
				mark = unreadMark.Render("*")
			}
			fmt.Fprintf(&b, "%s %s -> %s: %s\n", mark, msg.De, msg.Para, msg.Titulo)
		}
		fmt.Print(b.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
