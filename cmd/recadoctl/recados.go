package main

import (
	"fmt"
	"strconv"

	"github.com/k0kubun/pp/v3"
	"github.com/recadosapp/recados/client"
	"github.com/spf13/cobra"
)

var (
	recadoTexto string
	recadoDe    uint64
	recadoPara  uint64
)

var recadosCmd = &cobra.Command{
	Use:   "recados",
	Short: "Manage recados",
}

var recadosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recados in id order",
	RunE: func(cmd *cobra.Command, args []string) error {
		recados, err := api.ListRecados(cmd.Context())
		if err != nil {
			return err
		}
		for _, recado := range recados {
			mark := " "
			if !recado.Lido {
				mark = "*"
			}
			fmt.Printf("%4d %s %s -> %s: %s\n", recado.ID, mark, recado.De.Nome, recado.Para.Nome, recado.Texto)
		}
		return nil
	},
}

var recadosSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a recado from one pessoa to another",
	RunE: func(cmd *cobra.Command, args []string) error {
		recado, err := api.CreateRecado(cmd.Context(), client.CreateRecadoData{
			Texto:  recadoTexto,
			DeID:   recadoDe,
			ParaID: recadoPara,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recado %d enviado\n", recado.ID)
		return nil
	},
}

var recadosShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Dump a recado record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		recado, err := api.GetRecado(cmd.Context(), id)
		if err != nil {
			return err
		}
		pp.Println(recado)
		return nil
	},
}

var recadosReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Print a recado and mark it as lido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		recado, err := api.GetRecado(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("de %s para %s em %s:\n%s\n", recado.De.Nome, recado.Para.Nome,
			recado.Data.Format("02/01/2006 15:04"), recado.Texto)

		if !recado.Lido {
			if _, err := api.MarkLido(cmd.Context(), id); err != nil {
				return err
			}
		}
		return nil
	},
}

var recadosRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recado",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api.DeleteRecado(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("recado %d removido\n", id)
		return nil
	},
}

func init() {
	recadosSendCmd.Flags().StringVar(&recadoTexto, "texto", "", "Message body (2-200 characters)")
	recadosSendCmd.Flags().Uint64Var(&recadoDe, "de", 0, "Sender pessoa id")
	recadosSendCmd.Flags().Uint64Var(&recadoPara, "para", 0, "Recipient pessoa id")
	recadosSendCmd.MarkFlagRequired("texto")
	recadosSendCmd.MarkFlagRequired("de")
	recadosSendCmd.MarkFlagRequired("para")

	recadosCmd.AddCommand(recadosListCmd, recadosSendCmd, recadosShowCmd, recadosReadCmd, recadosRmCmd)
	rootCmd.AddCommand(recadosCmd)
}
