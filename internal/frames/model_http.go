package frames

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/viper"

	httpHelper "github.com/framesight/framesight/pkg/api/http"
	"github.com/framesight/framesight/pkg/httpclient"
)

const (
	// Env prefix for the inference sidecar connection, e.g.
	// EMBEDDING_SERVICE_HOST, EMBEDDING_SERVICE_TIMEOUT_IN_MS.
	embeddingServicePrefix = "EMBEDDING_SERVICE"

	embedPath = "/v1/embed"
)

// HTTPModel talks to the embedding inference sidecar. The sidecar decodes the
// frames and runs them through the vision encoder in one forward pass; a null
// row in its response marks a frame it could not decode.
type HTTPModel struct {
	client *httpclient.HTTPClient
	host   string
	port   int
}

func NewHTTPModel() *HTTPModel {
	return &HTTPModel{
		client: httpclient.NewConn(embeddingServicePrefix),
		host:   viper.GetString(embeddingServicePrefix + httpHelper.Host),
		port:   viper.GetInt(embeddingServicePrefix + httpHelper.Port),
	}
}

type embedRequest struct {
	Frames [][]byte `json:"frames"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func (m *HTTPModel) Infer(ctx context.Context, batch [][]byte) ([][]float32, error) {
	req, err := httpclient.NewHttpRequestBuilder().
		WithContext(ctx).
		WithHost(m.host).
		WithPort(m.port).
		WithPath(embedPath).
		WithMethod(http.MethodPost).
		WithBody(embedRequest{Frames: batch}).
		BuildContentTypeJson()
	if err != nil {
		return nil, err
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !httpHelper.IsStandard2xx(resp.StatusCode) {
		return nil, fmt.Errorf("embedding service returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var parsed embedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Embeddings) != len(batch) {
		return nil, fmt.Errorf("embedding service returned %d rows for %d frames",
			len(parsed.Embeddings), len(batch))
	}
	return parsed.Embeddings, nil
}
