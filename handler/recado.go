package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/recadosapp/recados/model"
	"github.com/recadosapp/recados/service"
)

// pessoaRef is the reduced pessoa shape embedded in recado responses:
// {id, nome} on listings and reads, {id} only right after creation.
type pessoaRef struct {
	ID   uint64 `json:"id"`
	Nome string `json:"nome,omitempty"`
}

type recadoJSON struct {
	ID        uint64    `json:"id"`
	Texto     string    `json:"texto"`
	De        pessoaRef `json:"de"`
	Para      pessoaRef `json:"para"`
	Lido      bool      `json:"lido"`
	Data      time.Time `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func shapeRecado(r *model.Recado, withNames bool) recadoJSON {
	out := recadoJSON{
		ID:        r.ID,
		Texto:     r.Texto,
		De:        pessoaRef{ID: r.DeID},
		Para:      pessoaRef{ID: r.ParaID},
		Lido:      r.Lido,
		Data:      r.Data,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if withNames {
		out.De.Nome = r.De.Nome
		out.Para.Nome = r.Para.Nome
	}
	return out
}

func (h *Handler) listRecados(c echo.Context) error {
	recados, err := h.recados.List(c.Request().Context())
	if err != nil {
		return recadoError(c, err)
	}
	out := make([]recadoJSON, 0, len(recados))
	for i := range recados {
		out = append(out, shapeRecado(&recados[i], true))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) getRecado(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	recado, err := h.recados.Get(c.Request().Context(), id)
	if err != nil {
		return recadoError(c, err)
	}
	return c.JSON(http.StatusOK, shapeRecado(recado, true))
}

func (h *Handler) createRecado(c echo.Context) error {
	var in service.CreateRecadoInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if ok, err := checkInput(c, in); !ok {
		return err
	}
	recado, err := h.recados.Create(c.Request().Context(), in)
	if err != nil {
		return recadoError(c, err)
	}
	return c.JSON(http.StatusCreated, shapeRecado(recado, false))
}

func (h *Handler) updateRecado(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in service.UpdateRecadoInput
	if err := c.Bind(&in); err != nil {
		return badBody(c)
	}
	if ok, err := checkInput(c, in); !ok {
		return err
	}
	recado, err := h.recados.Update(c.Request().Context(), id, in)
	if err != nil {
		return recadoError(c, err)
	}
	return c.JSON(http.StatusOK, shapeRecado(recado, true))
}

func (h *Handler) deleteRecado(c echo.Context) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	recado, err := h.recados.Delete(c.Request().Context(), id)
	if err != nil {
		return recadoError(c, err)
	}
	return c.JSON(http.StatusOK, shapeRecado(recado, true))
}

func recadoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrRecadoNotFound), errors.Is(err, service.ErrPessoaNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "erro interno"})
	}
}
