//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON; a non-empty authToken goes out as a Bearer header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithCookies(t, router, method, path, body, nil, authToken)
}

// PerformRequestWithCookies is PerformRequest for the cookie-authenticated admin routes.
func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, jsonBody(t, body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(router, authorize(req, cookies, authToken))
}

// Upload is a multipart form carrying one image under the "file" field.
type Upload struct {
	Filename string
	Content  []byte
	Fields   map[string]string
}

// NewMultipartRequest builds a POST whose body is the encoded upload.
// A nil Content leaves the file part out.
func NewMultipartRequest(t *testing.T, path string, upload Upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if upload.Content != nil {
		name := upload.Filename
		if name == "" {
			name = "upload.jpg"
		}
		part, err := w.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = part.Write(upload.Content)
		require.NoError(t, err)
	}
	for k, v := range upload.Fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func PerformUpload(t *testing.T, router *gin.Engine, path string, upload Upload, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, authorize(NewMultipartRequest(t, path, upload), cookies, ""))
}

// ExtractCookie returns the named Set-Cookie from the response, or nil.
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func jsonBody(t *testing.T, body any) io.Reader {
	t.Helper()
	if body == nil {
		return http.NoBody
	}
	b, err := json.Marshal(body)
	require.NoError(t, err, "Failed to encode request body to JSON")
	return bytes.NewReader(b)
}

func authorize(req *http.Request, cookies []*http.Cookie, authToken string) *http.Request {
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
