// Package client talks to the recados REST API and derives the dashboard
// statistics the web frontend computes from full listings.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the status code and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

type PessoaRef struct {
	ID   uint64 `json:"id"`
	Nome string `json:"nome,omitempty"`
}

type Pessoa struct {
	ID        uint64    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Recado struct {
	ID        uint64    `json:"id"`
	Texto     string    `json:"texto"`
	De        PessoaRef `json:"de"`
	Para      PessoaRef `json:"para"`
	Lido      bool      `json:"lido"`
	Data      time.Time `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePessoaData struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePessoaData struct {
	Nome     *string `json:"nome,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateRecadoData struct {
	Texto  string `json:"texto"`
	DeID   uint64 `json:"deId"`
	ParaID uint64 `json:"paraId"`
}

type UpdateRecadoData struct {
	Texto *string `json:"texto,omitempty"`
	Lido  *bool   `json:"lido,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) ListPessoas(ctx context.Context) ([]Pessoa, error) {
	var pessoas []Pessoa
	if err := c.do(ctx, http.MethodGet, "/pessoas", nil, &pessoas); err != nil {
		return nil, err
	}
	return pessoas, nil
}

func (c *Client) GetPessoa(ctx context.Context, id uint64) (*Pessoa, error) {
	var pessoa Pessoa
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pessoas/%d", id), nil, &pessoa); err != nil {
		return nil, err
	}
	return &pessoa, nil
}

func (c *Client) CreatePessoa(ctx context.Context, data CreatePessoaData) (*Pessoa, error) {
	var pessoa Pessoa
	if err := c.do(ctx, http.MethodPost, "/pessoas", data, &pessoa); err != nil {
		return nil, err
	}
	return &pessoa, nil
}

func (c *Client) UpdatePessoa(ctx context.Context, id uint64, data UpdatePessoaData) (*Pessoa, error) {
	var pessoa Pessoa
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/pessoas/%d", id), data, &pessoa); err != nil {
		return nil, err
	}
	return &pessoa, nil
}

func (c *Client) DeletePessoa(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pessoas/%d", id), nil, nil)
}

func (c *Client) ListRecados(ctx context.Context) ([]Recado, error) {
	var recados []Recado
	if err := c.do(ctx, http.MethodGet, "/recados", nil, &recados); err != nil {
		return nil, err
	}
	return recados, nil
}

func (c *Client) GetRecado(ctx context.Context, id uint64) (*Recado, error) {
	var recado Recado
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recados/%d", id), nil, &recado); err != nil {
		return nil, err
	}
	return &recado, nil
}

func (c *Client) CreateRecado(ctx context.Context, data CreateRecadoData) (*Recado, error) {
	var recado Recado
	if err := c.do(ctx, http.MethodPost, "/recados", data, &recado); err != nil {
		return nil, err
	}
	return &recado, nil
}

func (c *Client) UpdateRecado(ctx context.Context, id uint64, data UpdateRecadoData) (*Recado, error) {
	var recado Recado
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/recados/%d", id), data, &recado); err != nil {
		return nil, err
	}
	return &recado, nil
}

func (c *Client) DeleteRecado(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recados/%d", id), nil, nil)
}

// MarkLido flags a recado as read, as the frontend does on first view.
func (c *Client) MarkLido(ctx context.Context, id uint64) (*Recado, error) {
	lido := true
	return c.UpdateRecado(ctx, id, UpdateRecadoData{Lido: &lido})
}
