package tokenmodule

import (
	"bytes"
	"context"
	"fmt"

	"github.com/space-ranger/ship-registry/internal/adapter"
)

// TokenMetadata is the metadata registered with a newly issued token
type TokenMetadata struct {
	Title  string `json:"title"`
	Media  string `json:"media"`
	Copies uint32 `json:"copies,omitempty"`
}

// IssueRequest is the payload for issuing a token
type IssueRequest struct {
	TokenID  string        `json:"tokenId"`
	OwnerID  string        `json:"ownerId"`
	Metadata TokenMetadata `json:"metadata"`
}

// IssueResponse is the token module's acknowledgement of an issued token
type IssueResponse struct {
	TokenID string `json:"tokenId"`
}

// ownerResponse is the token module's answer to an owner lookup.
// OwnerID is null for tokens the module does not know.
type ownerResponse struct {
	TokenID string  `json:"tokenId"`
	OwnerID *string `json:"ownerId"`
}

// Client defines the interface for token module operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/tokenmodule_client.go -package=mocks -mock_names=Client=MockTokenModuleClient
type Client interface {
	// Issue registers a newly minted ship with the token module
	Issue(ctx context.Context, tokenID string, ownerID string, metadata TokenMetadata) error
	// ResolveOwner looks up the current owner of a token, nil if unknown
	ResolveOwner(ctx context.Context, tokenID string) (*string, error)
}

// HTTPClient implements Client over the token module's REST API
type HTTPClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	apiKey     string
	json       adapter.JSON
}

// NewClient creates a new token module client
func NewClient(httpClient adapter.HTTPClient, baseURL string, apiKey string, json adapter.JSON) Client {
	return &HTTPClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		json:       json,
	}
}

func (c *HTTPClient) headers() map[string]string {
	h := map[string]string{
		"Content-Type": "application/json",
	}
	if c.apiKey != "" {
		h["X-API-Key"] = c.apiKey
	}
	return h
}

// Issue registers a newly minted ship with the token module
func (c *HTTPClient) Issue(ctx context.Context, tokenID string, ownerID string, metadata TokenMetadata) error {
	request := IssueRequest{
		TokenID:  tokenID,
		OwnerID:  ownerID,
		Metadata: metadata,
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal issue request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.baseURL+"/tokens", c.headers(), bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to call token module: %w", err)
	}

	var response IssueResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to unmarshal issue response: %w", err)
	}

	if response.TokenID != tokenID {
		return fmt.Errorf("token module issued unexpected token id %q, want %q", response.TokenID, tokenID)
	}

	return nil
}

// ResolveOwner looks up the current owner of a token
func (c *HTTPClient) ResolveOwner(ctx context.Context, tokenID string) (*string, error) {
	var response ownerResponse
	url := fmt.Sprintf("%s/tokens/%s/owner", c.baseURL, tokenID)
	if err := c.httpClient.Get(ctx, url, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("failed to resolve token owner: %w", err)
	}

	return response.OwnerID, nil
}
