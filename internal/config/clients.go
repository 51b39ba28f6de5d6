package config

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Clients bundles the Firebase clients the service depends on. They
// are constructed once before the server accepts traffic and shared
// read-only across requests; nothing reinitializes them.
type Clients struct {
	Firestore *firestore.Client
	Messaging *messaging.Client
}

// NewClients initializes the Firebase app and its derived clients.
func NewClients(ctx context.Context, cfg Config) (*Clients, error) {
	if _, err := os.Stat(cfg.FirebaseCredentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials not found at %s", cfg.FirebaseCredentialsPath)
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore client: %w", err)
	}

	msg, err := app.Messaging(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("initialize messaging client: %w", err)
	}

	return &Clients{Firestore: fs, Messaging: msg}, nil
}

// Close releases client connections. The messaging client holds no
// connection of its own.
func (c *Clients) Close() error {
	return c.Firestore.Close()
}
