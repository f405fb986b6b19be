package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/filesmanager/image-upload/pkg/files/model"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TokenHeader = "X-Token"

type RestClient struct {
	token      string
	server     string // http://server:port
	httpClient *http.Client
	timeout    time.Duration
}

type RestClientOption func(*RestClient)

// WithHTTPClient replaces the default client. A nil client keeps the default.
func WithHTTPClient(httpClient *http.Client) RestClientOption {
	return func(c *RestClient) {
		if httpClient == nil {
			httpClient = &http.Client{}
		}
		c.httpClient = httpClient
	}
}

// WithTimeout bounds the whole exchange, whatever client is in use. Zero means no timeout.
func WithTimeout(timeout time.Duration) RestClientOption {
	return func(c *RestClient) {
		c.timeout = timeout
	}
}

func NewRestClient(server, token string, options ...RestClientOption) *RestClient {
	c := &RestClient{
		token:      token,
		server:     strings.TrimRight(server, "/"),
		httpClient: &http.Client{},
	}
	for _, option := range options {
		option(c)
	}
	if c.timeout > 0 {
		httpClient := *c.httpClient
		httpClient.Timeout = c.timeout
		c.httpClient = &httpClient
	}
	return c
}

// CreateFile posts req to /files and returns the JSON body the server answered with.
func (r *RestClient) CreateFile(ctx context.Context, req model.UploadRequest) (json.RawMessage, error) {
	ctx, span := otlp_util.Start(ctx, "files/client.CreateFile",
		trace.WithAttributes(
			attribute.String("file_name", req.Name),
			attribute.String("parent_id", req.ParentID),
		),
	)
	defer span.End()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal upload request: %v%w", err, model.ErrInvalidParameter)
	}

	result := json.RawMessage{}
	if err := r.execute(ctx, http.MethodPost, "/files", bytes.NewReader(body), &result); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}

func (r *RestClient) execute(ctx context.Context, method, path string, body io.Reader, result *json.RawMessage) error {
	endPoint := r.server + path
	req, err := http.NewRequestWithContext(ctx, method, endPoint, body)
	if err != nil {
		return fmt.Errorf("create http request: %v%w", err, model.ErrRequestFailed)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, r.token)

	logrus.Debugf("Request %s %s started.", method, endPoint)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send http request: %w%w", err, model.ErrRequestFailed)
	}
	defer func() { _ = resp.Body.Close() }()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %v%w", err, model.ErrRequestFailed)
	}
	logrus.Debugf("Request %s %s returned %d", method, endPoint, resp.StatusCode)

	status := resp.StatusCode
	if status/100 != 2 {
		return &model.APIError{Status: status, Message: errorMessage(content)}
	}

	if !json.Valid(content) {
		return fmt.Errorf("response is not JSON: %q%w", truncate(string(content), 256), model.ErrInvalidResponse)
	}
	*result = content
	return nil
}

// errorMessage extracts the "error" field the files manager puts in 4xx bodies and
// falls back to the raw body for anything else.
func errorMessage(content []byte) string {
	errResp := model.ErrorResponse{}
	if err := json.Unmarshal(content, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(content))
}

// truncate keeps at most n bytes of s without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
