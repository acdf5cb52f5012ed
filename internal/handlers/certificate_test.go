package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCertificateHandler_Generate(t *testing.T) {
	env := setupTestEnv(t)
	cookies := loginAna(t, env)

	added := env.postForm(t, "/agregar_historial_empleo", recordForm(), cookies)
	require.Equal(t, http.StatusSeeOther, added.Code)

	w := env.postForm(t, "/generar_certificado", nil, added.Result().Cookies())
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "Ana_Perez_123456789_1.pdf")
	require.Greater(t, w.Body.Len(), 0)
}

func TestCertificateHandler_Generate_SpecificRecord(t *testing.T) {
	env := setupTestEnv(t)
	cookies := loginAna(t, env)

	older := recordForm()
	older.Set("fecha_ingreso", "2015-02-01")
	older.Set("fecha_retiro", "2018-12-31")
	added := env.postForm(t, "/agregar_historial_empleo", older, cookies)
	added = env.postForm(t, "/agregar_historial_empleo", recordForm(), added.Result().Cookies())

	w := env.postForm(t, "/generar_certificado", url.Values{
		"id_historial": {"1"},
	}, added.Result().Cookies())
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "Ana_Perez_123456789_1.pdf")
}

func TestCertificateHandler_Generate_NoHistory(t *testing.T) {
	env := setupTestEnv(t)
	cookies := loginAna(t, env)

	w := env.postForm(t, "/generar_certificado", nil, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	dashboard := env.get(t, "/dashboard", w.Result().Cookies())
	require.Contains(t, dashboard.Body.String(), "No se encontró historial de empleo")
}

func TestCertificateHandler_Generate_UnknownRecord(t *testing.T) {
	env := setupTestEnv(t)
	cookies := loginAna(t, env)

	w := env.postForm(t, "/generar_certificado", url.Values{
		"id_historial": {"42"},
	}, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestCertificateHandler_Generate_RequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/generar_certificado", nil, nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}
