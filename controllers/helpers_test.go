package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Eabaitua/Nutriox-app/controllers"
	"github.com/Eabaitua/Nutriox-app/mocks"
	"github.com/Eabaitua/Nutriox-app/routes"
	"github.com/Eabaitua/Nutriox-app/services"
)

const testSecret = "test-secret-long-enough-for-hs256"

type testEnv struct {
	router *gin.Engine
}

// envelope mirrors the response wrapper with data left raw for per-test
// decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Mensaje string          `json:"mensaje"`
	Errores []struct {
		Campo   string `json:"campo"`
		Mensaje string `json:"mensaje"`
	} `json:"errores"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := mocks.NewUserRepo()
	alimentoRepo := mocks.NewAlimentoRepo()
	recetaRepo := mocks.NewRecetaRepo()
	dietaRepo := mocks.NewDietaRepo()

	authSvc := services.NewAuthService(userRepo, testSecret)
	userSvc := services.NewUserService(userRepo)

	router := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc, userSvc),
		Users:     controllers.NewUserController(userSvc),
		Alimentos: controllers.NewAlimentoController(services.NewAlimentoService(alimentoRepo)),
		Recetas:   controllers.NewRecetaController(services.NewRecetaService(recetaRepo)),
		Dietas:    controllers.NewDietaController(services.NewDietaService(dietaRepo, recetaRepo)),
		JWTSecret: testSecret,
	})

	return &testEnv{router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (e *testEnv) register(t *testing.T, nombre, email, password string) string {
	t.Helper()
	w, env := e.do(t, http.MethodPost, "/api/auth/registro", gin.H{
		"nombre":   nombre,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.ID
}
