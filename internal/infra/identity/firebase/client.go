// Package firebase adapts Firebase Authentication to the identity-provider port.
package firebase

import (
	"context"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthClient is the subset of *auth.Client the provider uses.
type AuthClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// NewAuthClient initializes the Firebase Admin app and returns its Auth client.
// Credentials come from a file path, an inline JSON secret, or application
// default credentials, in that order.
func NewAuthClient(ctx context.Context, cfg *config.Config) (AuthClient, error) {
	var (
		appConfig *firebase.Config
		opts      []option.ClientOption
	)

	if fb := cfg.Firebase; fb != nil {
		if fb.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: fb.ProjectID}
		}

		switch {
		case fb.CredentialsPath != "":
			opts = append(opts, option.WithCredentialsFile(fb.CredentialsPath))
		case fb.CredentialsJSON != "":
			opts = append(opts, option.WithCredentialsJSON([]byte(fb.CredentialsJSON)))
		}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return client, nil
}
