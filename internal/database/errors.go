package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
)

var (
	ErrWrongPassphrase    = errors.New("incorrect passphrase")
	ErrPassphraseRequired = errors.New("backup is encrypted; passphrase required")
)

// Entity names the resource an operation touched.
type Entity string

const (
	EntityStore   Entity = "store"
	EntitySetting Entity = "setting"
	EntityBackup  Entity = "backup"
)

type OpError struct {
	Op       string
	Resource Entity
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: entity, ID: id, Err: err}
}

// ParseError reports a stored value that is not valid JSON for its key.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}
