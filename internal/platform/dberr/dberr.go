// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/coursedesk/internal/platform/apperr"
)

// SQLSTATE codes the stores care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidTextRep      = "22P02"
)

// Wrap inspects a database error and maps it onto an [apperr.AppError].
//
// resource names the entity for NOT_FOUND messages; action is recorded in the
// internal cause for log correlation.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// Already mapped inside a transaction body.
	if ae := apperr.As(err); ae != nil {
		return ae
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case codeForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		case codeInvalidTextRep:
			// Malformed UUID literals are indistinguishable from missing rows for callers.
			return apperr.NotFound(resource)
		}
	}

	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
