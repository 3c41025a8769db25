package synnexclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 60 * time.Second
	maxErrorBody   = 512
)

var ErrTransport = errors.New("transport error")

// Transport envia o XML da requisição e devolve o corpo da resposta.
//
//go:generate mockgen -source=transport.go -destination=../mocks/mock_transport.go -package=mocks
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

// StatusError representa uma resposta HTTP fora da faixa 2xx.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %s", e.Status)
	}
	return fmt.Sprintf("request failed with status %s: %s", e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrTransport
}

type httpTransport struct {
	httpClient *http.Client
}

func NewHTTPTransport(timeout time.Duration) Transport {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpTransport{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (t *httpTransport) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Accept", "application/xml")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: executing request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet := string(data)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: snippet}
	}

	return data, nil
}
