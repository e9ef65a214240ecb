package client

import (
	"net/http"

	"github.com/quotedesk/quotedesk/internal/domain"
)

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
}

// Register creates a new account and stores the returned token on the client.
func (c *Client) Register(name, email, password string) (domain.User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var response authResponse
	if err := c.doInto("POST", "/auth/register", body, http.StatusCreated, &response); err != nil {
		return domain.User{}, err
	}
	c.token = response.Token
	return response.User, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(email, password string) (domain.User, error) {
	body := map[string]string{"email": email, "password": password}

	var response authResponse
	if err := c.doInto("POST", "/auth/login", body, http.StatusOK, &response); err != nil {
		return domain.User{}, err
	}
	c.token = response.Token
	return response.User, nil
}

// CurrentUser returns the profile of the authenticated user.
func (c *Client) CurrentUser() (domain.User, error) {
	var response struct {
		User domain.User `json:"user"`
	}
	if err := c.doInto("GET", "/auth/me", nil, http.StatusOK, &response); err != nil {
		return domain.User{}, err
	}
	return response.User, nil
}
