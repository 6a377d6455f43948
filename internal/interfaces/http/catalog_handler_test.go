package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acmeData() map[string]any {
	return map[string]any{
		"name":          "Acme",
		"ref_link":      "https://acme.example",
		"addToHomePage": "yes",
		"categories":    []string{"2", "5"},
		"faq":           []map[string]string{{"question": "Q1", "answer": "A1"}},
	}
}

func seededCatalog() *memCatalog {
	db := newMemCatalog()
	db.seedCategories("Moda", "Hogar", "Viajes", "Comida", "Tecnología")
	return db
}

func TestCreateStore_Acme(t *testing.T) {
	db := seededCatalog()
	up := &stubUploader{}
	app := newTestServer(t, db, up)

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), []byte("jpeg-bytes"))

	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Equal(t, true, body["success"])
	store := body["store"].(map[string]any)
	assert.Equal(t, "Acme", store["name"])
	assert.Equal(t, "https://img.test/store_images/1.jpg", store["logo_url"])
	assert.Equal(t, true, store["addToHomePage"])
	assert.Equal(t, []any{float64(2), float64(5)}, store["categories"])
	assert.Equal(t, []any{map[string]any{"question": "Q1", "answer": "A1"}}, store["faq"])

	assert.Equal(t, []string{"store_images"}, up.folders)
	assert.Equal(t, []byte("jpeg-bytes"), up.data[0])
	require.Len(t, db.stores, 1)
	assert.Equal(t, []int64{2, 5}, db.stores[0].CategoryIDs)
}

func TestCreateStore_SinLogo_NoLlamaAlHost(t *testing.T) {
	db := seededCatalog()
	up := &stubUploader{}
	app := newTestServer(t, db, up)

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)

	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Nil(t, body["store"].(map[string]any)["logo_url"])
	assert.Empty(t, up.folders)
}

func TestCreateStore_NombreDuplicado(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})

	resp, _ := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Store with the name Acme already exists", body["error"])
	assert.Len(t, db.stores, 1)
}

func TestCreateStore_MismoSlugNombreDistinto(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})
	before := len(db.stores)

	for _, name := range []string{"Acme", "ACME", "Café", "Cafe", "A+B", "A-B"} {
		data := acmeData()
		data["name"] = name
		resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), data, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode, name)
		assert.Equal(t, true, body["success"], name)
	}
	assert.Len(t, db.stores, before+6)
}

func TestCreateStore_FalloDeSubida_NadaPersistido(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{err: errors.New("timeout")})

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), []byte("jpeg"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error uploading image", body["error"])
	assert.Empty(t, db.stores)
}

func TestCreateStore_HostSinURL_Es500(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{empty: true})

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), []byte("jpeg"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Error uploading image", body["error"])
	assert.Empty(t, db.stores)
}

func TestCreateStore_ValidacionDevuelveCampos(t *testing.T) {
	app := newTestServer(t, seededCatalog(), &stubUploader{})
	data := acmeData()
	data["name"] = "   "
	data["ref_link"] = "no-es-url"

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), data, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body["fields"].([]any)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].(map[string]any)["field"])
	assert.Equal(t, "ref_link", fields[1].(map[string]any)["field"])
}

func TestCreateStore_CategoriaInexistente(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})
	data := acmeData()
	data["categories"] = []string{"2", "99"}

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), data, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, db.stores)
}

func TestCreateStore_SinParteData(t *testing.T) {
	app := newTestServer(t, seededCatalog(), &stubUploader{})

	resp, body := postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), nil, []byte("jpeg"))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing data field", body["error"])
}

func TestCreateStore_CuerpoNoMultipart(t *testing.T) {
	app := newTestServer(t, seededCatalog(), &stubUploader{})
	req := httptest.NewRequest(http.MethodPost, "/api/createstore", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateStore_SoloAdmin(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})

	resp, _ := postMultipart(t, app, "/api/createstore", tokenForRole(t, "user"), acmeData(), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = postMultipart(t, app, "/api/createstore", "", acmeData(), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, db.stores)
}

func TestGetStores(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})
	postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)

	resp, body := getJSON(t, app, "/api/getstores")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{map[string]any{"id": float64(1), "name": "Acme"}}, body["stores"])
}

func TestGetStores_ErrorDeBase(t *testing.T) {
	db := seededCatalog()
	db.listErr = errors.New("conexión cerrada")
	app := newTestServer(t, db, &stubUploader{})

	resp, body := getJSON(t, app, "/api/getstores")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestCreateCategory_YListado(t *testing.T) {
	db := seededCatalog()
	up := &stubUploader{}
	app := newTestServer(t, db, up)
	postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)

	data := map[string]any{
		"name":              "Deportes",
		"description":       "Todo para el deporte",
		"stores":            []string{"1"},
		"similarCategories": []string{"1", "3"},
	}
	resp, body := postMultipart(t, app, "/api/createcategory", tokenForRole(t, "admin"), data, []byte("png"))

	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	category := body["category"].(map[string]any)
	assert.Equal(t, "https://img.test/category_images/1.jpg", category["logo_url"])
	assert.Equal(t, []any{float64(1)}, category["stores"])

	resp, body = getJSON(t, app, "/api/getcategories")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["categories"], 6)
}

func TestCreateCategory_Duplicada(t *testing.T) {
	app := newTestServer(t, seededCatalog(), &stubUploader{})

	resp, body := postMultipart(t, app, "/api/createcategory", tokenForRole(t, "admin"), map[string]any{"name": "Moda"}, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category with the name Moda already exists", body["error"])

	resp, _ = postMultipart(t, app, "/api/createcategory", tokenForRole(t, "admin"), map[string]any{"name": "moda"}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateCoupon(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})
	postMultipart(t, app, "/api/createstore", tokenForRole(t, "admin"), acmeData(), nil)

	data := map[string]any{
		"title":      "10% en todo",
		"type":       "code",
		"code":       "ACME10",
		"discount":   "10.50",
		"due_date":   "2026-12-31",
		"store":      "1",
		"categories": []string{"2"},
	}
	resp, body := postMultipart(t, app, "/api/createcoupon", tokenForRole(t, "admin"), data, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	coupon := body["coupon"].(map[string]any)
	assert.Equal(t, "ACME10", coupon["code"])
	assert.Equal(t, "10.5", coupon["discount"])

	resp, body = postMultipart(t, app, "/api/createcoupon", tokenForRole(t, "admin"), data, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Coupon with the title 10% en todo already exists for this store", body["error"])
}

func TestCreateCoupon_CodigoRequerido(t *testing.T) {
	db := seededCatalog()
	app := newTestServer(t, db, &stubUploader{})

	data := map[string]any{"title": "Envío gratis", "type": "code", "store": "1"}
	resp, body := postMultipart(t, app, "/api/createcoupon", tokenForRole(t, "admin"), data, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body["fields"].([]any)
	assert.Equal(t, "code", fields[0].(map[string]any)["field"])
}

func TestCreateCoupon_TiendaInexistente(t *testing.T) {
	app := newTestServer(t, seededCatalog(), &stubUploader{})

	data := map[string]any{"title": "Envío gratis", "store": "42"}
	resp, _ := postMultipart(t, app, "/api/createcoupon", tokenForRole(t, "admin"), data, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
