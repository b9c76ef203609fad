package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/recadosapp/recados/model"
	"github.com/recadosapp/recados/service"
)

func (h *Handler) listPessoas(c echo.Context) error {
	pessoas, err := h.pessoas.List(c.Request().Context())
	if err != nil {
		return pessoaError(c, err)
	}
	if pessoas == nil {
		pessoas = []model.Pessoa{}
	}
	return c.JSON(http.StatusOK, pessoas)
}

func (h *Handler) getPessoa(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	pessoa, err := h.pessoas.Get(c.Request().Context(), id)
	if err != nil {
		return pessoaError(c, err)
	}
	return c.JSON(http.StatusOK, pessoa)
}

func (h *Handler) createPessoa(c echo.Context) error {
	var in service.CreatePessoaInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if ok, err := checkInput(c, in); !ok {
		return err
	}
	pessoa, err := h.pessoas.Create(c.Request().Context(), in)
	if err != nil {
		return pessoaError(c, err)
	}
	return c.JSON(http.StatusCreated, pessoa)
}

func (h *Handler) updatePessoa(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in service.UpdatePessoaInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if ok, err := checkInput(c, in); !ok {
		return err
	}
	pessoa, err := h.pessoas.Update(c.Request().Context(), id, in)
	if err != nil {
		return pessoaError(c, err)
	}
	return c.JSON(http.StatusOK, pessoa)
}

func (h *Handler) deletePessoa(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	pessoa, err := h.pessoas.Delete(c.Request().Context(), id)
	if err != nil {
		return pessoaError(c, err)
	}
	return c.JSON(http.StatusOK, pessoa)
}

func pessoaError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrPessoaNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrEmailCadastrado):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "erro interno"})
	}
}
