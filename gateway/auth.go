package gateway

import (
	"context"
	"net/http"

	"examgen_client/models"
)

// Register creates an account. A Success=false response is not an error at
// this level; the backend uses it for business rejections (email taken and
// the like) and puts the reason in Message.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(ctx, "register", http.MethodPost, "/Auth/register", "", nil, req, &resp)
	return resp, err
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(ctx, "login", http.MethodPost, "/Auth/login", "", nil, req, &resp)
	return resp, err
}
