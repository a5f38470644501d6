package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/sidequests/backend/config"
	"golang.org/x/oauth2"
)

type oauth2Service struct {
	*oidc.Provider
	oauth2.Config

	name    string
	idField string
}

func NewOAuth2Service(ctx context.Context, oauth2Cfg config.OAuth2Config) (IOAuth2Service, error) {
	provider, err := oidc.NewProvider(ctx, oauth2Cfg.Issuer)
	if err != nil {
		return nil, err
	}

	return &oauth2Service{
		name:    oauth2Cfg.Name,
		idField: oauth2Cfg.IDField,
		Provider: provider,
		Config: oauth2.Config{
			ClientID:     oauth2Cfg.ClientID,
			ClientSecret: oauth2Cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (a *oauth2Service) Service() string {
	return a.name
}

// VerifyIDToken verifies a raw id token the mobile client obtained from the
// provider and extracts the service user id from its claims.
func (a *oauth2Service) VerifyIDToken(ctx context.Context, rawIDToken string) (OAuth2User, error) {
	idToken, err := a.Verifier(&oidc.Config{ClientID: a.ClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return OAuth2User{}, err
	}

	return a.userFromToken(idToken)
}

// VerifyAuthorizationCode exchanges an authorization code (PKCE flow) for a
// token, then verifies the id token inside it.
func (a *oauth2Service) VerifyAuthorizationCode(
	ctx context.Context, code, codeVerifier, redirectURI string,
) (OAuth2User, error) {
	token, err := a.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
		oauth2.SetAuthURLParam("redirect_uri", redirectURI),
	)
	if err != nil {
		return OAuth2User{}, err
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return OAuth2User{}, errors.New("no id_token field in oauth2 token")
	}

	return a.VerifyIDToken(ctx, rawIDToken)
}

func (a *oauth2Service) userFromToken(idToken *oidc.IDToken) (OAuth2User, error) {
	var profile map[string]any
	if err := idToken.Claims(&profile); err != nil {
		return OAuth2User{}, errors.New("invalid id token")
	}

	id, ok := profile[a.idField].(string)
	if !ok {
		return OAuth2User{}, fmt.Errorf("invalid id field %s", a.idField)
	}

	username, _ := profile["name"].(string)
	return OAuth2User{ID: fmt.Sprintf("%s_%s", a.name, id), Username: username}, nil
}
