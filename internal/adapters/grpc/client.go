package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"

	"github.com/ib-77/results/internal/tenant"
	"github.com/ib-77/results/pkg/rop/grpcx"
	"github.com/ib-77/results/pkg/rop/schema"
)

// Client calls a remote tenant service. It satisfies tenant.Service, so
// callers cannot tell it from the local implementation.
type Client struct {
	conn      grpc.ClientConnInterface
	validator *schema.Validator
}

var _ tenant.Service = (*Client)(nil)

// NewClient wraps conn. A non-nil validator checks every result payload
// against the wire schema before decoding.
func NewClient(conn grpc.ClientConnInterface, validator *schema.Validator) *Client {
	return &Client{conn: conn, validator: validator}
}

func (c *Client) GetUser(ctx context.Context, id int) (tenant.Result[string], error) {
	var out tenant.Result[string]
	err := c.call(ctx, methodGetUser, &GetUserRequest{ID: id}, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id int, name string) (tenant.Status, error) {
	var out tenant.Status
	err := c.call(ctx, methodUpdateUser, &UpdateUserRequest{ID: id, Name: name}, &out)
	return out, err
}

func (c *Client) GetUsersAtAddress(ctx context.Context, zip, nr string) (tenant.Result[[]int], error) {
	var out tenant.Result[[]int]
	err := c.call(ctx, methodGetUsersAtAddress, &AddressRequest{Zip: zip, HouseNr: nr}, &out)
	return out, err
}

func (c *Client) GetUsers(ctx context.Context, ids []int) ([]tenant.Result[string], error) {
	raw, err := c.invoke(ctx, methodGetUsers, &GetUsersRequest{IDs: ids})
	if err != nil {
		return nil, err
	}
	var resp struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode %s: %w", methodGetUsers, err)
	}

	out := make([]tenant.Result[string], len(resp.Results))
	for i, item := range resp.Results {
		if err := c.decode(methodGetUsers, item, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *Client) call(ctx context.Context, method string, in, out any) error {
	raw, err := c.invoke(ctx, method, in)
	if err != nil {
		return err
	}
	return c.decode(method, raw, out)
}

func (c *Client) invoke(ctx context.Context, method string, in any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.conn.Invoke(ctx, method, in, &raw, grpc.CallContentSubtype(grpcx.Name)); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	return raw, nil
}

func (c *Client) decode(method string, raw json.RawMessage, out any) error {
	if c.validator != nil {
		if err := c.validator.Validate(raw); err != nil {
			return fmt.Errorf("decode %s: %w", method, err)
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", method, err)
	}
	return nil
}
