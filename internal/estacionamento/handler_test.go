package estacionamento_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estacionamento-backend/internal/app"
	"estacionamento-backend/internal/estacionamento"
	"estacionamento-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, a *fiber.App, method, path, token, payload string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if payload != "" {
		reader = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestEstacionamentoCRUD(t *testing.T) {
	db := testutil.OpenDB(t)
	cfg := testutil.NewConfig()
	a := app.New(cfg)

	admin := testutil.CreateAdmin(t, db, "dono")
	func1 := testutil.CreateFuncionario(t, db, "func1", admin.ID)
	token := testutil.TokenFor(t, cfg, admin)
	tokenFunc := testutil.TokenFor(t, cfg, func1)

	var criado estacionamento.EstacionamentoResponse

	t.Run("admin cria estacionamento proprio", func(t *testing.T) {
		payload := `{"nome":"Centro","endereco":"Av. Principal, 1","total_vagas":50,
			"valor_primeira_hora":12,"valor_demais_horas":6,"valor_diaria":40}`
		resp, body := do(t, a, http.MethodPost, "/estacionamentos", token, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NoError(t, json.Unmarshal(body, &criado))
		require.Equal(t, "Centro", criado.Nome)
		require.Equal(t, 50, criado.TotalVagas)
		require.NotNil(t, criado.AdminID)
		require.Equal(t, admin.ID, *criado.AdminID)
	})

	t.Run("funcionario nao cria estacionamento", func(t *testing.T) {
		resp, _ := do(t, a, http.MethodPost, "/estacionamentos", tokenFunc, `{"nome":"X","total_vagas":5}`)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("funcionario consulta o patio do seu admin", func(t *testing.T) {
		resp, _ := do(t, a, http.MethodGet, fmt.Sprintf("/estacionamentos/%d", criado.ID), tokenFunc, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("listagem traz apenas os patios do admin", func(t *testing.T) {
		outro := testutil.CreateAdmin(t, db, "outro")
		testutil.CreateEstacionamento(t, db, outro.ID, 5)

		resp, body := do(t, a, http.MethodGet, "/estacionamentos", token, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var lista []estacionamento.EstacionamentoResponse
		require.NoError(t, json.Unmarshal(body, &lista))
		require.Len(t, lista, 1)
		require.Equal(t, criado.ID, lista[0].ID)
	})

	t.Run("update parcial preserva os demais campos", func(t *testing.T) {
		resp, body := do(t, a, http.MethodPut, fmt.Sprintf("/estacionamentos/%d", criado.ID), token, `{"total_vagas":60}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var res estacionamento.EstacionamentoResponse
		require.NoError(t, json.Unmarshal(body, &res))
		require.Equal(t, 60, res.TotalVagas)
		require.Equal(t, "Centro", res.Nome)
		require.Equal(t, 12.0, res.ValorPrimeiraHora)
	})

	t.Run("total_vagas invalido retorna 400", func(t *testing.T) {
		resp, _ := do(t, a, http.MethodPut, fmt.Sprintf("/estacionamentos/%d", criado.ID), token, `{"total_vagas":0}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete remove e passa a responder 404", func(t *testing.T) {
		resp, _ := do(t, a, http.MethodDelete, fmt.Sprintf("/estacionamentos/%d", criado.ID), token, "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = do(t, a, http.MethodGet, fmt.Sprintf("/estacionamentos/%d", criado.ID), token, "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestFuncionarios(t *testing.T) {
	db := testutil.OpenDB(t)
	cfg := testutil.NewConfig()
	a := app.New(cfg)

	admin := testutil.CreateAdmin(t, db, "dono")
	token := testutil.TokenFor(t, cfg, admin)

	payload := `{"nome":"Carlos","cpf":"987.654.321-00","login":"carlos","password":"outra-senha"}`
	resp, body := do(t, a, http.MethodPost, "/funcionarios", token, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var criado struct {
		ID      uint   `json:"id"`
		Role    string `json:"role"`
		AdminID *uint  `json:"admin_id"`
	}
	require.NoError(t, json.Unmarshal(body, &criado))
	require.Equal(t, "funcionario", criado.Role)
	require.NotNil(t, criado.AdminID)
	require.Equal(t, admin.ID, *criado.AdminID)

	resp, body = do(t, a, http.MethodGet, "/funcionarios", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `"login":"carlos"`)

	// funcionário não cria outros funcionários
	tokenFunc := testutil.TokenFor(t, cfg, testutil.CreateFuncionario(t, db, "mais-um", admin.ID))
	resp, _ = do(t, a, http.MethodPost, "/funcionarios", tokenFunc, payload)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
