package httpx

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("could not refresh")
)

// Credentials checks user passwords and keeps the single-use refresh
// tokens handed out at sign in.
type Credentials struct {
	db         *sql.DB
	refreshTTL time.Duration
	now        func() time.Time
}

func NewCredentials(db *sql.DB, refreshTTL time.Duration) *Credentials {
	return &Credentials{db: db, refreshTTL: refreshTTL, now: time.Now}
}

func (cs *Credentials) RefreshTTL() time.Duration {
	return cs.refreshTTL
}

// ValidateUser returns the display name of username when password matches
// its stored hash.
func (cs *Credentials) ValidateUser(ctx context.Context, username, password string) (displayName string, err error) {
	var hash []byte
	err = cs.db.
		QueryRowContext(ctx, "SELECT display_name, password_hash FROM user WHERE username = ?", username).
		Scan(&displayName, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", errors.Wrap(err, "db.get_user")
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return displayName, nil
}

// UpsertUser creates username, or replaces its display name and password.
func (cs *Credentials) UpsertUser(ctx context.Context, username, displayName, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "bcrypt.hash")
	}

	_, err = cs.db.ExecContext(ctx, `
		INSERT INTO user (username, display_name, password_hash) VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET
			display_name = excluded.display_name,
			password_hash = excluded.password_hash`,
		username,
		displayName,
		hash,
	)
	return errors.Wrap(err, "db.upsert_user")
}

func (cs *Credentials) StoreRefreshToken(ctx context.Context, username, tokenID string) error {
	_, err := cs.db.ExecContext(ctx,
		"INSERT INTO token (username, refresh_token_id, expiration) VALUES (?, ?, ?)",
		username,
		tokenID,
		cs.now().Add(cs.refreshTTL).Unix(),
	)
	return errors.Wrap(err, "db.insert_token")
}

// ConsumeRefreshToken deletes tokenID and returns the user it was issued to.
// A token can be consumed once; unknown and expired ids fail with
// ErrInvalidRefresh.
func (cs *Credentials) ConsumeRefreshToken(ctx context.Context, tokenID string) (username, displayName string, err error) {
	var expiration int64
	err = cs.db.
		QueryRowContext(ctx, `
			DELETE FROM token
			WHERE refresh_token_id = ?
			RETURNING username, expiration`,
			tokenID,
		).
		Scan(&username, &expiration)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrInvalidRefresh
	}
	if err != nil {
		return "", "", errors.Wrap(err, "db.delete_token")
	}

	if time.Unix(expiration, 0).Before(cs.now()) {
		return "", "", ErrInvalidRefresh
	}

	err = cs.db.
		QueryRowContext(ctx, "SELECT display_name FROM user WHERE username = ?", username).
		Scan(&displayName)
	if err != nil {
		return "", "", errors.Wrap(err, "db.get_user")
	}
	return username, displayName, nil
}

// PurgeExpired drops refresh tokens past their expiration.
func (cs *Credentials) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := cs.db.ExecContext(ctx, "DELETE FROM token WHERE expiration < ?", cs.now().Unix())
	if err != nil {
		return 0, errors.Wrap(err, "db.purge_tokens")
	}
	return res.RowsAffected()
}
