package client

import (
	"context"
	"net/http"
	"net/url"

	"la-cave/internal/api"
	"la-cave/internal/model"
)

type AuthService struct {
	c *Client
}

func (s *AuthService) session(ctx context.Context, method, path string, body any) (*Session, error) {
	var out api.AuthResponse
	if err := s.c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return &Session{Token: out.Token, User: out.User}, nil
}

func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) (*Session, error) {
	return s.session(ctx, http.MethodPost, "/auth/register", req)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	return s.session(ctx, http.MethodPost, "/auth/login", api.LoginRequest{Email: email, Password: password})
}

func (s *AuthService) Me(ctx context.Context) (*model.Account, error) {
	var out envelope[*model.Account]
	if err := s.c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*model.Account, error) {
	var out envelope[*model.Account]
	if err := s.c.do(ctx, http.MethodPut, "/auth/profile", req, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ForgotPassword 回傳伺服器訊息；帳號不存在時訊息相同
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out envelope[any]
	if err := s.c.do(ctx, http.MethodPost, "/auth/forgotpassword", api.ForgotPasswordRequest{Email: email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) (*Session, error) {
	return s.session(ctx, http.MethodPut, "/auth/resetpassword/"+url.PathEscape(token), api.ResetPasswordRequest{Password: password})
}
