// Package changelog implements the append-only audit trail: immutable change
// records, the binary log file they are persisted to, and the periodic
// refresher that feeds the live audit view.
package changelog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// Operation is the kind of change an entry describes.
type Operation string

const (
	OpCreate Operation = "CREATE"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Entry is one immutable audit record. Old and new values are the JSON
// snapshots of the entity before and after the operation; which of the two is
// present depends on the operation kind.
type Entry struct {
	EntityType string          `json:"entityType"`
	Op         Operation       `json:"operation"`
	EntityID   int64           `json:"entityId"`
	OldValue   json.RawMessage `json:"oldValue,omitempty"`
	NewValue   json.RawMessage `json:"newValue,omitempty"`
	Username   string          `json:"username"`
	Timestamp  time.Time       `json:"timestamp"`
}

var jsonNull = []byte("null")

func snapshot(v entity.Auditable) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s snapshot: %w", v.Kind(), err)
	}
	if bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	return raw, nil
}

// Created builds a CREATE entry from the freshly saved entity.
func Created(newValue entity.Auditable, username string) (Entry, error) {
	raw, err := snapshot(newValue)
	if err != nil {
		return Entry{}, err
	}
	if raw == nil {
		return Entry{}, apperror.Validation("CREATE entry requires a new value")
	}

	return newEntry(newValue.Kind(), OpCreate, newValue.EntityID(), nil, raw, username)
}

// Updated builds an UPDATE entry from the before and after snapshots.
func Updated(oldValue, newValue entity.Auditable, username string) (Entry, error) {
	oldRaw, err := snapshot(oldValue)
	if err != nil {
		return Entry{}, err
	}

	newRaw, err := snapshot(newValue)
	if err != nil {
		return Entry{}, err
	}
	if oldRaw == nil || newRaw == nil {
		return Entry{}, apperror.Validation("UPDATE entry requires both old and new values")
	}
	if oldValue.EntityID() != newValue.EntityID() {
		return Entry{}, apperror.Validation("UPDATE entry must keep the same entity id")
	}

	return newEntry(newValue.Kind(), OpUpdate, newValue.EntityID(), oldRaw, newRaw, username)
}

// Deleted builds a DELETE entry from the last persisted state.
func Deleted(oldValue entity.Auditable, username string) (Entry, error) {
	raw, err := snapshot(oldValue)
	if err != nil {
		return Entry{}, err
	}
	if raw == nil {
		return Entry{}, apperror.Validation("DELETE entry requires an old value")
	}

	return newEntry(oldValue.Kind(), OpDelete, oldValue.EntityID(), raw, nil, username)
}

func newEntry(entityType string, op Operation, entityID int64, oldRaw, newRaw json.RawMessage, username string) (Entry, error) {
	if username == "" {
		return Entry{}, apperror.Validation("audit entry requires a username")
	}
	if entityID == 0 {
		return Entry{}, apperror.Validation("audit entry requires an entity id")
	}

	return Entry{
		EntityType: entityType,
		Op:         op,
		EntityID:   entityID,
		OldValue:   oldRaw,
		NewValue:   newRaw,
		Username:   username,
		Timestamp:  time.Now(),
	}, nil
}

// Valid reports whether a decoded entry satisfies the per-operation
// invariants. Replay uses it to reject records a foreign writer may have
// produced.
func (e Entry) Valid() bool {
	if e.EntityType == "" || e.Username == "" || e.Timestamp.IsZero() {
		return false
	}

	switch e.Op {
	case OpCreate:
		return len(e.NewValue) > 0 && len(e.OldValue) == 0
	case OpUpdate:
		return len(e.NewValue) > 0 && len(e.OldValue) > 0
	case OpDelete:
		return len(e.OldValue) > 0 && len(e.NewValue) == 0
	default:
		return false
	}
}
