package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafathanna/invento-app/internal/config"
	"github.com/rafathanna/invento-app/internal/core/apperror"
	"github.com/rafathanna/invento-app/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(config.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.Default())
}

func TestGetJSON_UnwrapsEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Customer/GetAll", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{"statusCode":200,"succeeded":true,"message":"ok","errors":null,"data":[{"id":1,"name":"Acme"}]}`))
	})

	var out []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	err := client.GetJSON(context.Background(), "/Customer/GetAll", nil, &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Acme", out[0].Name)
}

func TestGetJSON_NullDataLeavesOutUntouched(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"statusCode":200,"succeeded":true,"message":"","errors":null,"data":null}`))
	})

	out := []int{1, 2, 3}
	err := client.GetJSON(context.Background(), "/x", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestDo_FailedEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"succeeded":false,"message":"Validation failed","errors":["Name is required","Phone is required"],"data":null}`))
	})

	err := client.PostJSON(context.Background(), "/Customer/Create", map[string]string{}, nil)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Equal(t, []string{"Name is required", "Phone is required"}, appErr.ServerErrors)
}

func TestDo_SucceededFalseWith200(t *testing.T) {
	// The wrapper's succeeded flag wins over the HTTP status.
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"statusCode":200,"succeeded":false,"message":"Customer has invoices","errors":null,"data":null}`))
	})

	err := client.Delete(context.Background(), "/Customer/Delete/3", nil)

	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "Customer has invoices", appErr.Message)
}

func TestDo_MapErrors(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"succeeded":false,"message":"Validation failed","errors":{"Name":["required"],"Phone":["too short","digits only"]},"data":null}`))
	})

	err := client.GetJSON(context.Background(), "/x", nil, nil)

	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Len(t, appErr.ServerErrors, 3)
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("Bad Gateway"))
	})

	err := client.GetJSON(context.Background(), "/x", nil, nil)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.HTTPStatus)
	assert.Equal(t, "Bad Gateway", appErr.Message)
}

func TestPutQuery_EncodesFieldsInURL(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "7", r.URL.Query().Get("Id"))
		assert.Equal(t, "Acme & Co", r.URL.Query().Get("Name"))
		w.Write([]byte(`{"statusCode":200,"succeeded":true,"message":"","errors":null,"data":{"id":7}}`))
	})

	q := url.Values{}
	q.Set("Id", "7")
	q.Set("Name", "Acme & Co")

	err := client.PutQuery(context.Background(), "/Customer/Edit", q, nil)
	require.NoError(t, err)
}

func TestPostMultipart_SendsFileField(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Olive Oil", r.FormValue("Name"))

		file, header, err := r.FormFile("ImageUrl")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "oil.png", header.Filename)

		w.Write([]byte(`{"statusCode":200,"succeeded":true,"message":"","errors":null,"data":null}`))
	})

	upload := &FileUpload{Field: "ImageUrl", Filename: "oil.png", Content: strings.NewReader("png-bytes")}
	err := client.PostMultipart(context.Background(), "/Products/Create",
		map[string]string{"Name": "Olive Oil"}, upload, nil)

	require.NoError(t, err)
}

func TestTolerateStatus_AcceptsDataBearing400(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"succeeded":false,"message":"","errors":null,"data":{"totalExpiredProducts":2}}`))
	})

	var out struct {
		TotalExpiredProducts int `json:"totalExpiredProducts"`
	}
	err := client.GetJSON(context.Background(), "/Reports/expiry", nil, &out, TolerateStatus(400))

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalExpiredProducts)
}

func TestTolerateStatus_EmptyBodyStillFails(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"statusCode":400,"succeeded":false,"message":"bad","errors":null,"data":null}`))
	})

	err := client.GetJSON(context.Background(), "/Reports/expiry", nil, nil, TolerateStatus(400))

	require.Error(t, err)
}

func TestDo_TransportError(t *testing.T) {
	client := New(config.Config{BaseURL: "http://127.0.0.1:1", Timeout: 100 * time.Millisecond}, logger.Default())

	err := client.GetJSON(context.Background(), "/x", nil, nil)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeTransport, appErr.Code)
}
