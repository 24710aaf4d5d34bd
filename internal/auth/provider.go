package auth

import (
	"context"

	"github.com/Veraticus/monthly-budget/internal/model"
)

// Identity is the signed-in user as seen by the rest of the application.
type Identity struct {
	UID      string
	Email    string
	Provider model.AuthProvider
	Token    string
}

// Provider is the identity collaborator.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignInFederated(ctx context.Context) (*Identity, error)
	SignOut(ctx context.Context) error
	CurrentUser() *Identity
	// Subscribe registers fn for current-user changes. fn receives nil on
	// sign-out.
	Subscribe(fn func(*Identity)) (unsubscribe func())
}

// FederatedProfile is what a federated login proves about the user.
type FederatedProfile struct {
	Subject string
	Email   string
}

// Federator runs an external sign-in flow.
type Federator interface {
	Authenticate(ctx context.Context) (FederatedProfile, error)
}

// UserStore persists local accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}
