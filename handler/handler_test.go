package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/recadosapp/recados/model"
	"github.com/recadosapp/recados/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupEcho(t *testing.T) *echo.Echo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, model.Migrate(db))

	pessoas := service.NewPessoaService(db)
	recados := service.NewRecadoService(db, pessoas)

	e := echo.New()
	Register(e, pessoas, recados)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreatePessoa(t *testing.T) {
	e := setupEcho(t)

	rec := do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "ana@x.com", body["email"])
	// the stored credential never leaves the API
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "password")
}

func TestCreatePessoaDuplicateEmail(t *testing.T) {
	e := setupEcho(t)

	rec := do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/pessoas", `{"nome":"Outra Ana","email":"ana@x.com","password":"abcd"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "cadastrado")
}

func TestCreatePessoaValidation(t *testing.T) {
	e := setupEcho(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "nome too short", body: `{"nome":"Ana","email":"ana@x.com","password":"1234"}`, field: "nome"},
		{name: "bad email", body: `{"nome":"Ana Silva","email":"nope","password":"1234"}`, field: "email"},
		{name: "short password", body: `{"nome":"Ana Silva","email":"ana@x.com","password":"12"}`, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/pessoas", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			fields, ok := body["fields"].([]interface{})
			require.True(t, ok)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.field, fields[0].(map[string]interface{})["field"])
		})
	}
}

func TestGetPessoa(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)

	rec := do(t, e, http.MethodGet, "/pessoas/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana Silva", decode(t, rec)["nome"])

	rec = do(t, e, http.MethodGet, "/pessoas/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBadIDParam(t *testing.T) {
	e := setupEcho(t)

	for _, path := range []string{"/pessoas/abc", "/pessoas/-1", "/recados/abc", "/recados/-7"} {
		rec := do(t, e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestUpdatePessoa(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)

	rec := do(t, e, http.MethodPatch, "/pessoas/1", `{"nome":"Ana Souza"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Ana Souza", body["nome"])
	assert.Equal(t, "ana@x.com", body["email"])

	rec = do(t, e, http.MethodPatch, "/pessoas/999", `{"nome":"Ana Souza"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPatch, "/pessoas/1", `{"nome":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePessoa(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)

	rec := do(t, e, http.MethodDelete, "/pessoas/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodDelete, "/pessoas/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRecado(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Bruno Dias","email":"bruno@x.com","password":"1234"}`)

	rec := do(t, e, http.MethodPost, "/recados", `{"texto":"oi","deId":1,"paraId":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "oi", body["texto"])
	assert.Equal(t, false, body["lido"])

	// creation responses carry the id only, no nome
	de := body["de"].(map[string]interface{})
	assert.Equal(t, float64(1), de["id"])
	assert.NotContains(t, de, "nome")
}

func TestCreateRecadoMissingPessoa(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)

	rec := do(t, e, http.MethodPost, "/recados", `{"texto":"oi","deId":1,"paraId":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/recados", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateRecadoValidation(t *testing.T) {
	e := setupEcho(t)

	rec := do(t, e, http.MethodPost, "/recados", `{"texto":"x","deId":1,"paraId":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/recados", `{"texto":"oi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRecadosShape(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Bruno Dias","email":"bruno@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/recados", `{"texto":"oi","deId":1,"paraId":2}`)
	do(t, e, http.MethodPost, "/recados", `{"texto":"olá","deId":2,"paraId":1}`)

	rec := do(t, e, http.MethodGet, "/recados", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, float64(2), list[1]["id"])

	de := list[0]["de"].(map[string]interface{})
	assert.Equal(t, float64(1), de["id"])
	assert.Equal(t, "Ana Silva", de["nome"])
	para := list[0]["para"].(map[string]interface{})
	assert.Equal(t, "Bruno Dias", para["nome"])
}

func TestMarkRecadoLido(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Bruno Dias","email":"bruno@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/recados", `{"texto":"oi","deId":1,"paraId":2}`)

	rec := do(t, e, http.MethodPatch, "/recados/1", `{"lido":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["lido"])

	rec = do(t, e, http.MethodGet, "/recados/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["lido"])

	rec = do(t, e, http.MethodPatch, "/recados/999", `{"lido":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRecado(t *testing.T) {
	e := setupEcho(t)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Ana Silva","email":"ana@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/pessoas", `{"nome":"Bruno Dias","email":"bruno@x.com","password":"1234"}`)
	do(t, e, http.MethodPost, "/recados", `{"texto":"oi","deId":1,"paraId":2}`)

	rec := do(t, e, http.MethodDelete, "/recados/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodDelete, "/recados/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// pessoas survive the recado delete
	rec = do(t, e, http.MethodGet, "/pessoas/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
