// Package handler exposes the pessoa and recado services over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/recadosapp/recados/service"
	"github.com/recadosapp/recados/validate"
)

type Handler struct {
	pessoas *service.PessoaService
	recados *service.RecadoService
}

func Register(e *echo.Echo, pessoas *service.PessoaService, recados *service.RecadoService) {
	h := &Handler{pessoas: pessoas, recados: recados}

	e.GET("/pessoas", h.listPessoas)
	e.GET("/pessoas/:id", h.getPessoa)
	e.POST("/pessoas", h.createPessoa)
	e.PATCH("/pessoas/:id", h.updatePessoa)
	e.DELETE("/pessoas/:id", h.deletePessoa)

	e.GET("/recados", h.listRecados)
	e.GET("/recados/:id", h.getRecado)
	e.POST("/recados", h.createRecado)
	e.PATCH("/recados/:id", h.updateRecado)
	e.DELETE("/recados/:id", h.deleteRecado)
}

// paramID parses the :id path parameter. ParseUint rejects both non-numeric
// and negative values, so those never reach the services.
func paramID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "id deve ser um inteiro não negativo"})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
}

// checkInput binds nothing; it validates an already-bound payload and, on
// failure, writes the 400 response. The bool reports whether the request may
// proceed.
func checkInput(c echo.Context, in interface{}) (bool, error) {
	fields, err := validate.Struct(in)
	if err != nil {
		return false, c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha na validação"})
	}
	if len(fields) > 0 {
		return false, c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "dados inválidos",
			"fields": fields,
		})
	}
	return true, nil
}
