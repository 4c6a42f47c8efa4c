// Package client provides http GET / POST and json rpc request helpers.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 60 * time.Second

var (
	httpClient     *resty.Client
	initClientOnce sync.Once
)

// InitHTTPClient init http client
func InitHTTPClient() {
	initClientOnce.Do(func() {
		httpClient = resty.New().
			SetTimeout(defaultRequestTimeout).
			SetHeader("Content-Type", "application/json")
	})
}

// RPCGet does a http GET and unmarshals the json body into result.
func RPCGet(result interface{}, url string) error {
	InitHTTPClient()
	resp, err := httpClient.R().Get(url)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("wrong response status %v of GET %v", resp.StatusCode(), url)
	}
	return json.Unmarshal(resp.Body(), result)
}

type jsonrpcRequest struct {
	Version string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *jsonrpcError) Error() string {
	return fmt.Sprintf("json-rpc error %v: %v", e.Code, e.Message)
}

type jsonrpcResponse struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *jsonrpcError   `json:"error,omitempty"`
	ID     uint64          `json:"id"`
}

// RPCPost does a json rpc 2.0 POST and unmarshals the result into result.
func RPCPost(result interface{}, url, method string, params ...interface{}) error {
	InitHTTPClient()
	if params == nil {
		params = []interface{}{}
	}
	req := &jsonrpcRequest{
		Version: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
	resp, err := httpClient.R().SetBody(req).Post(url)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("wrong response status %v of POST %v %v", resp.StatusCode(), url, method)
	}
	var rpcResp jsonrpcResponse
	if err := json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return err
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if rpcResp.Result == nil {
		return errors.New("empty json-rpc result")
	}
	return json.Unmarshal(rpcResp.Result, result)
}
