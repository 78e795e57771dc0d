package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	sthttp "github.com/shipthis-co/shipthis-go/internal/http"
	"github.com/shipthis-co/shipthis-go/pkg/shipthis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHeaderSource for testing.
type MockHeaderSource struct {
	headers map[string]string
}

func (m *MockHeaderSource) Headers() map[string]string {
	return m.headers
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/incollection/job", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "acme", request.Header.Get("organisation"))
			assert.Equal(t, "test-key", request.Header.Get("x-api-key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_, _ = writer.Write([]byte(`{"success":true,"data":{"items":[{"_id":"1"}]},"meta":{"total":1}}`))
		}))
		defer server.Close()

		source := &MockHeaderSource{headers: map[string]string{
			"organisation": "acme",
			"x-api-key":    "test-key",
		}}
		client := sthttp.NewClient(server.URL, source)

		req := &sthttp.Request{
			Method: "GET",
			Path:   "incollection/job",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var data map[string]interface{}

		err = json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Len(t, data["items"], 1)
		assert.JSONEq(t, `{"total":1}`, string(resp.Meta))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/incollection/job", request.URL.Path)
			assert.Equal(t, "count=20&page=2", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`{"success":true,"data":{}}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		req := &sthttp.Request{
			Method: "GET",
			Path:   "incollection/job",
			Query:  url.Values{"page": []string{"2"}, "count": []string{"20"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "test-job", body["name"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"success":true,"data":{"_id":"1","name":"test-job"}}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		req := &sthttp.Request{
			Method: "POST",
			Path:   "incollection/job",
			Body:   map[string]string{"name": "test-job"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("per-call headers win", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "override", request.Header.Get("x-api-key"))
			assert.Equal(t, "acme", request.Header.Get("organisation"))
			_, _ = writer.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		source := &MockHeaderSource{headers: map[string]string{
			"organisation": "acme",
			"x-api-key":    "from-source",
		}}
		client := sthttp.NewClient(server.URL, source)

		req := &sthttp.Request{
			Method:  "GET",
			Path:    "user-auth/info",
			Headers: map[string]string{"x-api-key": "override"},
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("unauthorized response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"success":false,"errors":[{"message":"bad key"}]}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "user-auth/info"})
		require.Error(t, err)
		assert.True(t, shipthis.IsAuthError(err))

		authErr := &shipthis.AuthError{}
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 401, authErr.StatusCode)
		assert.Contains(t, authErr.Message, "authentication failed")
	})

	t.Run("forbidden response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "user-auth/info"})
		require.Error(t, err)

		authErr := &shipthis.AuthError{}
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, 403, authErr.StatusCode)
		assert.Contains(t, authErr.Message, "access denied")
	})

	t.Run("success false envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"success":false,"errors":[{"message":"job_name is required"},{"message":"second"}]}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "POST", Path: "incollection/job"})
		require.Error(t, err)

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "job_name is required", reqErr.Message)
		assert.Equal(t, 200, reqErr.StatusCode)
		assert.NotNil(t, reqErr.Details)
	})

	t.Run("success false falls back to message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"success":false,"message":"quota exceeded"}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "incollection/job"})
		require.Error(t, err)

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "quota exceeded", reqErr.Message)
	})

	t.Run("non-JSON response body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("<html>gateway error</html>"))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "incollection/job"})
		require.Error(t, err)

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Contains(t, reqErr.Message, "invalid JSON response")
		assert.Contains(t, reqErr.Message, "<html>gateway error</html>")
	})

	t.Run("error status with JSON details", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"success":false,"message":"no such document"}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "incollection/job/x"})
		require.Error(t, err)
		assert.True(t, shipthis.IsNotFound(err))

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 404, reqErr.StatusCode)
		assert.Equal(t, "no such document", reqErr.Details["message"])
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = writer.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		req := &sthttp.Request{
			Method:  "GET",
			Path:    "incollection/job",
			Timeout: 20 * time.Millisecond,
		}

		_, err := client.Do(context.Background(), req)
		require.Error(t, err)
		assert.True(t, shipthis.IsTimeout(err))

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 408, reqErr.StatusCode)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		client := sthttp.NewClient("http://127.0.0.1:1", nil)

		_, err := client.Do(context.Background(), &sthttp.Request{Method: "GET", Path: "incollection/job"})
		require.Error(t, err)
		assert.True(t, shipthis.IsRequestError(err))
		assert.False(t, shipthis.IsTimeout(err))

		reqErr := &shipthis.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 0, reqErr.StatusCode)
	})

	t.Run("raw mode returns body untouched", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Contains(t, request.Header.Get("Content-Type"), "multipart/form-data")
			_, _ = writer.Write([]byte("https://cdn.example.com/file.pdf"))
		}))
		defer server.Close()

		client := sthttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &sthttp.Request{
			Method:      "POST",
			Path:        "api/v3/file-upload",
			RawBody:     []byte("--boundary--"),
			ContentType: "multipart/form-data; boundary=boundary",
			Raw:         true,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/file.pdf", string(resp.Body))
	})

	t.Run("absolute URL overrides path", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v3/file-upload", request.URL.Path)
			_, _ = writer.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		client := sthttp.NewClient("http://base-url-not-used.invalid", nil)

		_, err := client.Do(context.Background(), &sthttp.Request{
			Method: "GET",
			URL:    server.URL + "/api/v3/file-upload",
		})
		require.NoError(t, err)
	})
}

func TestClient_VerbHelpers(t *testing.T) {
	t.Parallel()

	var gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		gotMethod = request.Method
		_, _ = writer.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := sthttp.NewClient(server.URL, nil)
	ctx := context.Background()

	_, err := client.Get(ctx, "incollection/job", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", gotMethod)

	_, err = client.Post(ctx, "incollection/job", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "POST", gotMethod)

	_, err = client.Put(ctx, "incollection/job/abc", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", gotMethod)

	_, err = client.Patch(ctx, "incollection/job/abc", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "PATCH", gotMethod)

	_, err = client.Delete(ctx, "incollection/job/abc")
	require.NoError(t, err)
	assert.Equal(t, "DELETE", gotMethod)
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := sthttp.NewClient(server.URL, nil,
		sthttp.WithLogger(logger),
		sthttp.WithDebug(true),
	)

	_, err := client.Get(context.Background(), "user-auth/info", nil)
	require.NoError(t, err)

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
	assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "custom-agent/1.0", request.Header.Get("User-Agent"))
		_, _ = writer.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := sthttp.NewClient(server.URL, nil, sthttp.WithUserAgent("custom-agent/1.0"))

	_, err := client.Get(context.Background(), "user-auth/info", nil)
	require.NoError(t, err)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "injected", request.Header.Get("x-trace-id"))
		_, _ = writer.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	var sawResponse bool

	chain := shipthis.NewInterceptorChain()
	chain.AddRequestInterceptor(shipthis.HeaderInterceptor(map[string]string{"x-trace-id": "injected"}))
	chain.AddResponseInterceptor(func(ctx context.Context, req *shipthis.Request, resp *shipthis.Response) error {
		sawResponse = true

		assert.Equal(t, 200, resp.StatusCode)

		return nil
	})

	client := sthttp.NewClient(server.URL, nil, sthttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "user-auth/info", nil)
	require.NoError(t, err)
	assert.True(t, sawResponse)
}
