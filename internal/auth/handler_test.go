package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"estacionamento-backend/internal/app"
	"estacionamento-backend/internal/auth"
	"estacionamento-backend/internal/models"
	"estacionamento-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func postToken(t *testing.T, a *fiber.App, username, password string) (*http.Response, string) {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestToken(t *testing.T) {
	db := testutil.OpenDB(t)
	cfg := testutil.NewConfig()
	a := app.New(cfg)

	user := testutil.CreateAdmin(t, db, "maria")

	t.Run("credenciais corretas emitem bearer token", func(t *testing.T) {
		resp, body := postToken(t, a, "maria", testutil.SenhaPadrao)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body, `"token_type":"bearer"`)
		require.Contains(t, body, `"access_token"`)
	})

	t.Run("senha errada retorna 401 generico com WWW-Authenticate", func(t *testing.T) {
		resp, body := postToken(t, a, "maria", "senha-errada")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Bearer", resp.Header.Get(fiber.HeaderWWWAuthenticate))
		require.Contains(t, body, "Login ou senha incorretos")
	})

	t.Run("usuario inexistente produz resposta identica a senha errada", func(t *testing.T) {
		respSenha, bodySenha := postToken(t, a, "maria", "senha-errada")
		respLogin, bodyLogin := postToken(t, a, "ninguem", testutil.SenhaPadrao)

		require.Equal(t, respSenha.StatusCode, respLogin.StatusCode)
		require.Equal(t, bodySenha, bodyLogin)
		require.Equal(t, "Bearer", respLogin.Header.Get(fiber.HeaderWWWAuthenticate))
	})

	t.Run("login diferencia maiusculas", func(t *testing.T) {
		resp, _ := postToken(t, a, "Maria", testutil.SenhaPadrao)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("campos vazios retornam 400", func(t *testing.T) {
		resp, _ := postToken(t, a, "", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("claims carregam identidade e papel", func(t *testing.T) {
		token, err := auth.GenerateToken(cfg.JWTSecret, user)
		require.NoError(t, err)

		parsed, err := jwt.ParseWithClaims(token, &auth.JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		claims := parsed.Claims.(*auth.JWTCustomClaims)
		require.Equal(t, user.ID, claims.UserID)
		require.Equal(t, "maria", claims.Login)
		require.Equal(t, models.RoleAdmin, claims.Role)
		require.Nil(t, claims.AdminID)
	})
}

func TestRegisterAdmin(t *testing.T) {
	testutil.OpenDB(t)
	cfg := testutil.NewConfig()
	a := app.New(cfg)

	payload := `{"nome":"João","cpf":"123.456.789-00","login":"joao","password":"uma-senha"}`

	req := httptest.NewRequest(http.MethodPost, "/auth/register-admin", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// o usuário criado consegue autenticar
	respTok, _ := postToken(t, a, "joao", "uma-senha")
	require.Equal(t, http.StatusOK, respTok.StatusCode)

	// login duplicado é recusado
	req2 := httptest.NewRequest(http.MethodPost, "/auth/register-admin", strings.NewReader(payload))
	req2.Header.Set("Content-Type", "application/json")
	resp2, err := a.Test(req2, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, resp2.StatusCode)
}
