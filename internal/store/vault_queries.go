package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Slot names of the session vault. Exactly these two rows exist in
// session_slots when a session is persisted.
const (
	slotToken = "token"
	slotUser  = "user"
)

// buildUpsertSlotQuery builds an INSERT that replaces the slot value when the
// row already exists. SQLite uses ? placeholders.
func buildUpsertSlotQuery(slot string, value []byte) (string, []any, error) {
	return sq.Insert("session_slots").
		Columns("slot", "value").
		Values(slot, value).
		Suffix("ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildSelectSlotsQuery builds a SELECT of both session slots. Absent rows
// are simply not returned; the caller decides what absence means.
func buildSelectSlotsQuery() (string, []any, error) {
	return sq.Select("slot", "value").
		From("session_slots").
		Where(sq.Eq{"slot": []string{slotToken, slotUser}}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildDeleteSlotsQuery builds a DELETE of both session slots.
func buildDeleteSlotsQuery() (string, []any, error) {
	return sq.Delete("session_slots").
		Where(sq.Eq{"slot": []string{slotToken, slotUser}}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
