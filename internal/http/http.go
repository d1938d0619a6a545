package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/umbracle/batchdeposit/internal/server/proto"
)

// HttpClient is a client of the batchdeposit http api
type HttpClient struct {
	addr string
}

// NewHttpClient creates a new http client
func NewHttpClient(addr string) *HttpClient {
	return &HttpClient{addr: addr}
}

// StatusError is returned when the api replies with a non 200 status
type StatusError struct {
	Code    int
	Message string
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", s.Code, s.Message)
}

func (h *HttpClient) do(resp *http.Response, objResp interface{}) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var obj struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			obj.Error = string(data)
		}
		return &StatusError{Code: resp.StatusCode, Message: obj.Error}
	}
	if err := json.Unmarshal(data, objResp); err != nil {
		return err
	}
	return nil
}

// Pack sends a deposit file and returns its calldata
func (h *HttpClient) Pack(name string, data []byte) (*proto.PackResponse, error) {
	fullURL := h.addr + "/v1/pack?name=" + url.QueryEscape(name)

	resp, err := http.Post(fullURL, "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var out *proto.PackResponse
	err = h.do(resp, &out)
	return out, err
}

// Current returns the calldata of the last file loaded by the server
func (h *HttpClient) Current() (*proto.PackResponse, error) {
	resp, err := http.Get(h.addr + "/v1/current")
	if err != nil {
		return nil, err
	}
	var out *proto.PackResponse
	err = h.do(resp, &out)
	return out, err
}
