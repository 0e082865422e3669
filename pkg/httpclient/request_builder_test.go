package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_BuildContentTypeJson(t *testing.T) {
	body := map[string]any{"frames": []any{"YQ=="}}
	ctx := context.Background()

	req, err := NewHttpRequestBuilder().
		WithHost("embedding-service").
		WithPort(9090).
		WithPath("/v1/embed").
		WithMethod(http.MethodPost).
		WithHeader("Authorization", "Bearer token").
		WithBody(body).
		WithContext(ctx).
		BuildContentTypeJson()

	require.NoError(t, err)
	assert.Equal(t, "embedding-service:9090", req.Host)
	assert.Equal(t, "/v1/embed", req.URL.Path)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, ctx, req.Context())

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(req.Body).Decode(&decoded))
	assert.Equal(t, body, decoded)
}

func TestRequestBuilder_BuildContentTypeJson_IncompleteBuilder(t *testing.T) {
	complete := func() *RequestBuilder {
		return NewHttpRequestBuilder().
			WithHost("embedding-service").
			WithPort(9090).
			WithPath("/v1/embed").
			WithMethod(http.MethodPost).
			WithContext(context.Background())
	}

	tests := []struct {
		name    string
		builder *RequestBuilder
		wantErr string
	}{
		{"missing host", complete().WithHost(""), "host is required"},
		{"missing port", complete().WithPort(0), "invalid port"},
		{"missing path", complete().WithPath(""), "path is required"},
		{"missing method", complete().WithMethod(""), "method is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.BuildContentTypeJson()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestRequestBuilder_BuildContentTypeJson_NoContext(t *testing.T) {
	_, err := NewHttpRequestBuilder().
		WithHost("embedding-service").
		WithPort(9090).
		WithPath("/v1/embed").
		WithMethod(http.MethodPost).
		BuildContentTypeJson()

	require.Error(t, err)
	assert.Equal(t, "context is required, pass context.Background() if not required", err.Error())
}
