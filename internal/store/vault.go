package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/galley-app/galley-client/internal/crypto"
	"github.com/galley-app/galley-client/internal/logger"
	"github.com/galley-app/galley-client/models"
)

type sessionVault struct {
	*DB
	sealer crypto.Sealer
	logger *logger.Logger
}

func NewSessionVault(db *DB, sealer crypto.Sealer, logger *logger.Logger) SessionVault {
	return &sessionVault{
		DB:     db,
		sealer: sealer,
		logger: logger,
	}
}

func (v *sessionVault) SaveSession(ctx context.Context, token string, user models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.SaveSession").
			Str("user_id", user.ID).
			Msg("failed to marshal user record")
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	sealedToken, err := v.sealer.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}
	sealedUser, err := v.sealer.Seal(userJSON)
	if err != nil {
		return fmt.Errorf("failed to seal user record: %w", err)
	}

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.SaveSession").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin session save: %w", err)
	}
	defer tx.Rollback()

	pairs := []struct {
		slot   string
		sealed []byte
	}{
		{slotToken, sealedToken},
		{slotUser, sealedUser},
	}
	for _, p := range pairs {
		slot, sealed := p.slot, p.sealed
		query, args, err := buildUpsertSlotQuery(slot, sealed)
		if err != nil {
			return fmt.Errorf("failed to build upsert for slot %q: %w", slot, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			v.logger.Err(err).
				Str("func", "sessionVault.SaveSession").
				Str("slot", slot).
				Msg("failed to write session slot")
			return fmt.Errorf("failed to write slot %q: %w", slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.SaveSession").
			Msg("failed to commit session save")
		return fmt.Errorf("failed to commit session save: %w", err)
	}

	return nil
}

func (v *sessionVault) LoadSession(ctx context.Context) (string, models.User, error) {
	query, args, err := buildSelectSlotsQuery()
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to build slot select: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.LoadSession").
			Msg("failed to query session slots")
		return "", models.User{}, fmt.Errorf("failed to query session slots: %w", err)
	}
	defer rows.Close()

	sealed := make(map[string][]byte, 2)
	for rows.Next() {
		var slot string
		var value []byte
		if err := rows.Scan(&slot, &value); err != nil {
			v.logger.Err(err).
				Str("func", "sessionVault.LoadSession").
				Msg("failed to scan session slot row")
			return "", models.User{}, fmt.Errorf("failed to scan session slot: %w", err)
		}
		sealed[slot] = value
	}
	if err := rows.Err(); err != nil {
		return "", models.User{}, fmt.Errorf("failed to read session slots: %w", err)
	}

	if len(sealed) == 0 {
		return "", models.User{}, ErrSessionNotFound
	}

	sealedToken, hasToken := sealed[slotToken]
	sealedUser, hasUser := sealed[slotUser]
	if !hasToken || !hasUser {
		v.logger.Warn().
			Str("func", "sessionVault.LoadSession").
			Bool("has_token", hasToken).
			Bool("has_user", hasUser).
			Msg("partial session slots found")
		return "", models.User{}, ErrSessionCorrupted
	}

	tokenBytes, err := v.sealer.Unseal(sealedToken)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.LoadSession").
			Msg("failed to unseal token slot")
		return "", models.User{}, ErrSessionCorrupted
	}
	userJSON, err := v.sealer.Unseal(sealedUser)
	if err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.LoadSession").
			Msg("failed to unseal user slot")
		return "", models.User{}, ErrSessionCorrupted
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.LoadSession").
			Msg("failed to parse user record")
		return "", models.User{}, ErrSessionCorrupted
	}

	return string(tokenBytes), user, nil
}

func (v *sessionVault) ClearSession(ctx context.Context) error {
	query, args, err := buildDeleteSlotsQuery()
	if err != nil {
		return fmt.Errorf("failed to build slot delete: %w", err)
	}

	if _, err := v.DB.ExecContext(ctx, query, args...); err != nil {
		v.logger.Err(err).
			Str("func", "sessionVault.ClearSession").
			Msg("failed to delete session slots")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
