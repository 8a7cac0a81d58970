package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL is how long a password reset link stays valid.
const ResetTokenTTL = time.Hour

// ResetToken is a single-use password reset grant for one admin account.
type ResetToken struct {
	Token     string
	AdminID   int64
	Email     string
	ExpiresAt time.Time
}

// CreateResetToken issues a new reset token for the given admin account.
func CreateResetToken(ctx context.Context, db *sql.DB, adminID int64, email string) (*ResetToken, error) {
	rt := &ResetToken{
		Token:     uuid.NewString(),
		AdminID:   adminID,
		Email:     email,
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO reset_tokens (token, admin_id, email, expires_at) VALUES (?, ?, ?, ?)`,
		rt.Token, rt.AdminID, rt.Email, rt.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating reset token: %w", err)
	}

	// Opportunistically clean up expired tokens.
	_, _ = db.ExecContext(ctx,
		`DELETE FROM reset_tokens WHERE expires_at < ?`, time.Now(),
	)

	return rt, nil
}

// GetResetToken returns a reset token that is still valid: present, unused,
// and unexpired. Returns nil when the token cannot be redeemed.
func GetResetToken(ctx context.Context, db *sql.DB, token string) (*ResetToken, error) {
	rt := &ResetToken{}
	err := db.QueryRowContext(ctx,
		`SELECT token, admin_id, email, expires_at FROM reset_tokens
		 WHERE token = ? AND used_at IS NULL AND expires_at >= ?`,
		token, time.Now(),
	).Scan(&rt.Token, &rt.AdminID, &rt.Email, &rt.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting reset token: %w", err)
	}
	return rt, nil
}

// ConsumeResetToken marks a reset token as used. Returns false when the token
// was already used, expired, or never existed.
func ConsumeResetToken(ctx context.Context, db *sql.DB, token string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE reset_tokens SET used_at = CURRENT_TIMESTAMP
		 WHERE token = ? AND used_at IS NULL AND expires_at >= ?`,
		token, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("consuming reset token: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("consuming reset token: %w", err)
	}
	return n > 0, nil
}
