package firebase

import (
	"context"
	"fmt"

	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Credentials picks the service account from inline JSON first, then a file
// path. With neither, application default credentials are used.
func Credentials(serviceAccountJSON, serviceAccountPath string) []option.ClientOption {
	switch {
	case serviceAccountJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(serviceAccountJSON))}
	case serviceAccountPath != "":
		return []option.ClientOption{option.WithCredentialsFile(serviceAccountPath)}
	}
	return nil
}

func NewApp(ctx context.Context, projectID string, opts ...option.ClientOption) (*fbapp.App, error) {
	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return app, nil
}

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.client.VerifyIDToken(ctx, idToken)
}

// TestConnection lists at most one user to prove the credentials work.
func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	iter := f.client.Users(ctx, "")
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
