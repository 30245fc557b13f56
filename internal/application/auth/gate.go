package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentoria-hub/mentoria-platform/internal/domain/profile"
	"github.com/mentoria-hub/mentoria-platform/internal/domain/shared"
	"github.com/mentoria-hub/mentoria-platform/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACCESS GATE
// Every protected operation passes through Authorize: token in, resolved
// Identity out. The role is looked up once per call (or served from the
// identity cache) and never trusted from the token itself.
// ══════════════════════════════════════════════════════════════════════════════

// Identity is the resolved caller of a request.
type Identity struct {
	UserID uuid.UUID    `json:"user_id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Role   profile.Role `json:"role"`
}

// IsAdmin reports whether the caller may perform admin operations.
func (i Identity) IsAdmin() bool {
	return i.Role == profile.RoleAdmin
}

// IdentityCache caches resolved identities keyed by user ID.
// Implementations live in infrastructure/persistence.
type IdentityCache interface {
	// Get returns the cached identity, or ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID) (*Identity, error)

	// Set stores the identity with a TTL.
	Set(ctx context.Context, identity *Identity, ttl time.Duration) error

	// Invalidate drops the cached identity, e.g. after an approval change.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// Gate authenticates requests and resolves caller identities.
type Gate struct {
	users    profile.UserRepository
	roles    profile.RoleResolver
	tokens   *TokenManager
	cache    IdentityCache
	cacheTTL time.Duration
	log      *logger.Logger
}

// NewGate creates a Gate. cache may be nil, in which case every call
// resolves from storage.
func NewGate(
	users profile.UserRepository,
	roles profile.RoleResolver,
	tokens *TokenManager,
	cache IdentityCache,
	cacheTTL time.Duration,
	log *logger.Logger,
) *Gate {
	return &Gate{
		users:    users,
		roles:    roles,
		tokens:   tokens,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With(logger.Component("auth.gate")),
	}
}

// Authorize verifies the token and resolves the caller's identity.
// Returns ErrInvalidToken for bad or expired tokens and a DataIntegrity
// error when the user exists but has no role linkage.
func (g *Gate) Authorize(ctx context.Context, token string) (Identity, error) {
	userID, _, err := g.tokens.Verify(token)
	if err != nil {
		return Identity{}, err
	}

	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, userID); err == nil && cached != nil {
			return *cached, nil
		}
	}

	identity, err := g.resolve(ctx, userID)
	if err != nil {
		return Identity{}, err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, &identity, g.cacheTTL); err != nil {
			g.log.Warn("identity cache write failed", logger.UserID(userID.String()), logger.Err(err))
		}
	}
	return identity, nil
}

// resolve loads the user and determines its role.
func (g *Gate) resolve(ctx context.Context, userID uuid.UUID) (Identity, error) {
	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if shared.IsNotFound(err) {
			return Identity{}, shared.ErrInvalidToken
		}
		return Identity{}, err
	}

	role, err := g.roles.ResolveRole(ctx, userID)
	if err != nil {
		if shared.IsDataIntegrity(err) {
			g.log.Error("user without role linkage",
				logger.UserID(userID.String()),
				logger.Email(user.Email),
			)
		}
		return Identity{}, err
	}

	return Identity{
		UserID: user.ID,
		Name:   user.FullName,
		Email:  user.Email,
		Role:   role,
	}, nil
}

// InvalidateIdentity drops a cached identity after role or approval changes.
func (g *Gate) InvalidateIdentity(ctx context.Context, userID uuid.UUID) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Invalidate(ctx, userID); err != nil {
		g.log.Warn("identity cache invalidation failed", logger.UserID(userID.String()), logger.Err(err))
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN
// ══════════════════════════════════════════════════════════════════════════════

// LoginResult carries a signed token and the resolved identity.
type LoginResult struct {
	Token    string
	Identity Identity
}

// Login verifies credentials and issues an access token. Unknown email
// and wrong password both yield ErrInvalidCredentials.
func (g *Gate) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	role, err := g.roles.ResolveRole(ctx, user.ID)
	if err != nil {
		if shared.IsDataIntegrity(err) {
			g.log.Error("user without role linkage", logger.UserID(user.ID.String()), logger.Email(user.Email))
		}
		return nil, err
	}

	token, err := g.tokens.Issue(user.ID, user.Email, user.FullName)
	if err != nil {
		return nil, err
	}

	g.log.Info("login", logger.UserID(user.ID.String()), logger.String("role", string(role)))

	return &LoginResult{
		Token: token,
		Identity: Identity{
			UserID: user.ID,
			Name:   user.FullName,
			Email:  user.Email,
			Role:   role,
		},
	}, nil
}
