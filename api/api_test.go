package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/raushankrgupta/skincare-storefront/checkout"
	"github.com/raushankrgupta/skincare-storefront/config"
	"github.com/raushankrgupta/skincare-storefront/session"
	"github.com/raushankrgupta/skincare-storefront/storage"
	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	dir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerOn(t, storage.NewMemoryStorage())
}

// newTestServerOn starts a server over base; servers sharing base behave like
// instances behind one load balancer.
func newTestServerOn(t *testing.T, base storage.Storage) *testServer {
	t.Helper()
	config.JWTSecret = "test-secret"
	dir := t.TempDir()
	uploads := upload.NewService(upload.NewLocalSink(dir))
	h := &Handler{
		Sessions:   session.NewManager(base, session.Options{}),
		Checkout:   checkout.NewService(uploads),
		Uploads:    uploads,
		SessionTTL: time.Hour,
		UploadDir:  dir,
	}
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, dir: dir}
}

func (s *testServer) newSession(t *testing.T) string {
	t.Helper()
	resp, err := http.Post(s.URL+"/session", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (s *testServer) do(t *testing.T, token, method, path string, payload any) (int, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.send(t, req)
}

func (s *testServer) send(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func multipartBody(t *testing.T, filename, contentType string, data []byte, orderID string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("orderId", orderID))
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestSessionRequired(t *testing.T) {
	s := newTestServer(t)
	status, body := s.do(t, "", http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])

	status, _ = s.do(t, "garbage", http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestEndSessionKeepsPersistedState(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)

	s.do(t, token, http.MethodPost, "/cart/items", map[string]any{"product_id": "2", "quantity": 3})
	status, _ := s.do(t, token, http.MethodDelete, "/session", nil)
	require.Equal(t, http.StatusOK, status)

	_, body := s.do(t, token, http.MethodGet, "/cart", nil)
	assert.EqualValues(t, 3, body["total_items"])
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, "", http.MethodGet, "/products/gentle-foaming-cleanser", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Rp 189.000", body["formatted_price"])

	for _, path := range []string{"/products/niacinamide-10%25-%2B-zinc-1%25", "/products/niacinamide-10%25-+-zinc-1%25"} {
		status, body = s.do(t, "", http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "6", body["product"].(map[string]any)["id"], path)
	}

	status, _ = s.do(t, "", http.MethodGet, "/products/unknown-slug", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.do(t, "", http.MethodGet, "/products?collection=featured&limit=3", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])

	status, body = s.do(t, "", http.MethodGet, "/categories/serums", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["products"], 3)

	status, body = s.do(t, "", http.MethodGet, "/search?q=niacinamide", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])
}

func TestCartAndWishlistFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)

	status, body := s.do(t, token, http.MethodPost, "/cart/items", map[string]any{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["total_items"])
	assert.EqualValues(t, 378000, body["total_price"])

	status, body = s.do(t, token, http.MethodPatch, "/cart/items/1", map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["total_items"])

	status, _ = s.do(t, token, http.MethodPost, "/cart/items", map[string]any{"product_id": "999"})
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.do(t, token, http.MethodPost, "/wishlist/5/toggle", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["in_wishlist"])
	notices := body["notices"].([]any)
	require.Len(t, notices, 1)
	assert.Equal(t, "Vitamin C Serum ditambahkan ke wishlist", notices[0].(map[string]any)["title"])

	status, body = s.do(t, token, http.MethodPost, "/wishlist", map[string]any{"product_id": "5"})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "info", body["notices"].([]any)[0].(map[string]any)["level"])

	// Another session sees none of it.
	other := s.newSession(t)
	_, body = s.do(t, other, http.MethodGet, "/wishlist", nil)
	assert.EqualValues(t, 0, body["count"])
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)
	creds := map[string]any{"name": "Rina", "email": "rina@example.com", "password": "pw"}

	status, body := s.do(t, token, http.MethodPost, "/auth/signup", creds)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Pendaftaran berhasil", body["message"])

	other := s.newSession(t)
	status, body = s.do(t, other, http.MethodPost, "/auth/signup", creds)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email sudah terdaftar", body["message"])

	status, body = s.do(t, other, http.MethodPost, "/auth/signin", map[string]any{"email": "rina@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Email atau kata sandi salah", body["message"])

	status, body = s.do(t, other, http.MethodPost, "/auth/signin", map[string]any{"email": "RINA@example.com", "password": "pw"})
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.NotContains(t, user, "password")

	_, body = s.do(t, other, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, true, body["authenticated"])
	s.do(t, other, http.MethodPost, "/auth/signout", nil)
	_, body = s.do(t, other, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, false, body["authenticated"])
}

func TestCheckoutPaymentFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)

	form := map[string]any{
		"shipping_address": map[string]any{
			"name": "Rina", "phone": "0812", "address": "Jl. Melati 1",
			"city": "Bandung", "province": "Jawa Barat", "postal_code": "40111",
		},
		"shipping_method": "regular",
		"payment_method":  "transfer",
	}

	status, _ := s.do(t, token, http.MethodPost, "/checkout", form)
	assert.Equal(t, http.StatusUnauthorized, status)

	s.do(t, token, http.MethodPost, "/auth/signup", map[string]any{"name": "Rina", "email": "rina@example.com", "password": "pw"})

	status, body := s.do(t, token, http.MethodPost, "/checkout", form)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, checkout.MsgEmptyCart, body["error"])

	s.do(t, token, http.MethodPost, "/cart/items", map[string]any{"product_id": "5"})
	_, body = s.do(t, token, http.MethodPost, "/checkout/quote", map[string]any{"shipping_method": "regular", "payment_method": "transfer"})
	assert.EqualValues(t, 477500, body["quote"].(map[string]any)["total"])

	status, body = s.do(t, token, http.MethodPost, "/checkout", form)
	require.Equal(t, http.StatusCreated, status)
	payment := body["payment"].(map[string]any)
	orderID := payment["orderId"].(string)
	assert.EqualValues(t, 477500, payment["total"])
	assert.Contains(t, body["redirect"], "orderId="+orderID)

	_, body = s.do(t, token, http.MethodGet, "/cart", nil)
	assert.EqualValues(t, 0, body["total_items"])

	status, body = s.do(t, token, http.MethodGet, "/payment?orderId="+orderID+"&total=477500&method=transfer&shipping=regular", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["payment"].(map[string]any)["fromSnapshot"])
	assert.Equal(t, true, body["countdown_started"])
	assert.Equal(t, "24:00:00", body["time_left"])

	buf, ct := multipartBody(t, "bukti.png", "image/png", []byte("png"), orderID)
	req, err := http.NewRequest(http.MethodPost, s.URL+"/payment/"+orderID+"/proof", buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)
	status, body = s.send(t, req)
	require.Equal(t, http.StatusOK, status)
	order := body["order"].(map[string]any)
	assert.Equal(t, "paid", order["status"])
	assert.Equal(t, "Pembayaran Dikonfirmasi", order["status_label"])
	assert.Equal(t, checkout.MsgProofSent, body["notices"].([]any)[0].(map[string]any)["title"])

	status, body = s.do(t, token, http.MethodGet, "/orders?status=paid", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, body = s.do(t, token, http.MethodPost, "/orders/"+orderID+"/tracking", map[string]any{"tracking_number": "JNE123"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "shipped", body["order"].(map[string]any)["status"])

	status, _ = s.do(t, token, http.MethodPatch, "/orders/YLS0/status", map[string]any{"status": "delivered"})
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(t, token, http.MethodPatch, "/orders/"+orderID+"/status", map[string]any{"status": "lost"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUploadEndpoint(t *testing.T) {
	s := newTestServer(t)

	post := func(buf *bytes.Buffer, ct string) (int, map[string]any) {
		req, err := http.NewRequest(http.MethodPost, s.URL+"/api/upload", buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", ct)
		return s.send(t, req)
	}

	buf, ct := multipartBody(t, "proof.pdf", "application/pdf", []byte("%PDF-1.4"), "YLS1")
	status, body := post(buf, ct)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	url := body["url"].(string)
	assert.Regexp(t, `^/uploads/payment-YLS1-\d+\.pdf$`, url)

	resp, err := http.Get(s.URL + url)
	require.NoError(t, err)
	served, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "%PDF-1.4", string(served))

	buf, ct = multipartBody(t, "", "", nil, "YLS1")
	status, body = post(buf, ct)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, upload.MsgNoFile, body["error"])

	buf, ct = multipartBody(t, "a.gif", "image/gif", []byte("GIF89a"), "YLS1")
	status, body = post(buf, ct)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, upload.MsgTypeNotAllow, body["error"])

	before, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	buf, ct = multipartBody(t, "big.jpg", "image/jpeg", make([]byte, 6*1024*1024), "YLS2")
	status, body = post(buf, ct)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, upload.MsgTooLarge, body["error"])
	after, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	matches, _ := filepath.Glob(filepath.Join(s.dir, "payment-YLS2-*"))
	assert.Empty(t, matches)
}

func TestUploadClientAgainstEndpoint(t *testing.T) {
	s := newTestServer(t)
	c := upload.NewClient(s.URL + "/api/upload")
	res, err := c.Upload(t.Context(), "YLS7", upload.NewBytesFile("a.webp", "image/webp", []byte("RIFF")))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Contains(t, res.Filename, "payment-YLS7-")
}

func TestListOrdersRequiresSignIn(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)

	status, body := s.do(t, token, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Silakan masuk terlebih dahulu untuk melihat pesanan", body["error"])
}

func TestListOrdersReloadsFromStorage(t *testing.T) {
	base := storage.NewMemoryStorage()
	a := newTestServerOn(t, base)
	b := newTestServerOn(t, base)

	token := a.newSession(t)
	status, _ := a.do(t, token, http.MethodPost, "/auth/signup", map[string]any{"name": "Rina", "email": "rina@example.com", "password": "pw"})
	require.Equal(t, http.StatusCreated, status)

	_, body := a.do(t, token, http.MethodGet, "/orders", nil)
	assert.EqualValues(t, 0, body["total"])

	// The same session places an order through the other instance.
	b.do(t, token, http.MethodPost, "/cart/items", map[string]any{"product_id": "7"})
	status, body = b.do(t, token, http.MethodPost, "/checkout", map[string]any{
		"shipping_address": map[string]any{
			"name": "Rina", "phone": "0812", "address": "Jl. Melati 1",
			"city": "Bandung", "province": "Jawa Barat", "postal_code": "40111",
		},
		"shipping_method": "express",
		"payment_method":  "cod",
	})
	require.Equal(t, http.StatusCreated, status)
	orderID := body["order"].(map[string]any)["order_id"]

	status, body = a.do(t, token, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])
	orders := body["orders"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].(map[string]any)["order_id"])
}

func TestListOrdersPageOutOfRange(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)
	s.do(t, token, http.MethodPost, "/auth/signup", map[string]any{"name": "Rina", "email": "rina@example.com", "password": "pw"})

	for _, page := range []string{"2", "92233720368547760", "9223372036854775807"} {
		status, body := s.do(t, token, http.MethodGet, "/orders?limit=100&page="+page, nil)
		require.Equal(t, http.StatusOK, status, page)
		assert.Empty(t, body["orders"], page)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		n, page, limit int
		start, end     int
	}{
		{n: 0, page: 1, limit: 10, start: 0, end: 0},
		{n: 25, page: 1, limit: 10, start: 0, end: 10},
		{n: 25, page: 3, limit: 10, start: 20, end: 25},
		{n: 25, page: 4, limit: 10, start: 25, end: 25},
		{n: 25, page: 1 << 62, limit: 100, start: 25, end: 25},
	}
	for _, c := range cases {
		start, end := pageBounds(c.n, c.page, c.limit)
		assert.Equal(t, c.start, start, "n=%d page=%d", c.n, c.page)
		assert.Equal(t, c.end, end, "n=%d page=%d", c.n, c.page)
	}
}

func TestPaymentWithoutOrderStartsNoCountdown(t *testing.T) {
	s := newTestServer(t)
	token := s.newSession(t)

	for range 2 {
		status, body := s.do(t, token, http.MethodGet, "/payment?total=100000", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["countdown_started"])
		assert.Equal(t, false, body["payment"].(map[string]any)["fromSnapshot"])
	}
}
