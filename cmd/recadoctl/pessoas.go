package main

import (
	"fmt"
	"strconv"

	"github.com/k0kubun/pp/v3"
	"github.com/recadosapp/recados/client"
	"github.com/spf13/cobra"
)

var (
	pessoaNome     string
	pessoaEmail    string
	pessoaPassword string
)

var pessoasCmd = &cobra.Command{
	Use:   "pessoas",
	Short: "Manage registered pessoas",
}

var pessoasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pessoas",
	RunE: func(cmd *cobra.Command, args []string) error {
		pessoas, err := api.ListPessoas(cmd.Context())
		if err != nil {
			return err
		}
		for _, pessoa := range pessoas {
			fmt.Printf("%4d  %-30s %s\n", pessoa.ID, pessoa.Nome, pessoa.Email)
		}
		return nil
	},
}

var pessoasAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new pessoa",
	RunE: func(cmd *cobra.Command, args []string) error {
		pessoa, err := api.CreatePessoa(cmd.Context(), client.CreatePessoaData{
			Nome:     pessoaNome,
			Email:    pessoaEmail,
			Password: pessoaPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("pessoa %d criada\n", pessoa.ID)
		return nil
	},
}

var pessoasShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Dump a pessoa record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		pessoa, err := api.GetPessoa(cmd.Context(), id)
		if err != nil {
			return err
		}
		pp.Println(pessoa)
		return nil
	},
}

var pessoasRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a pessoa and every recado referencing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api.DeletePessoa(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("pessoa %d removida\n", id)
		return nil
	},
}

func init() {
	pessoasAddCmd.Flags().StringVar(&pessoaNome, "nome", "", "Name (4-100 characters)")
	pessoasAddCmd.Flags().StringVar(&pessoaEmail, "email", "", "E-mail address")
	pessoasAddCmd.Flags().StringVar(&pessoaPassword, "password", "", "Password (at least 4 characters)")
	pessoasAddCmd.MarkFlagRequired("nome")
	pessoasAddCmd.MarkFlagRequired("email")
	pessoasAddCmd.MarkFlagRequired("password")

	pessoasCmd.AddCommand(pessoasListCmd, pessoasAddCmd, pessoasShowCmd, pessoasRmCmd)
	rootCmd.AddCommand(pessoasCmd)
}
