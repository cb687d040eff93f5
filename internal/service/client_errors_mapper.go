// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error is kept in the chain so its message
// reaches the screen.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasPrefix(msg, app.MsgInvalidDateRange):
			return errors.Join(ErrInvalidDateRange, err)
		case strings.HasPrefix(msg, app.MsgNothingToUpdate):
			return errors.Join(ErrNothingToUpdate, err)
		}
		return errors.Join(ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.HasPrefix(msg, app.MsgInvalidCredentials) {
			return errors.Join(ErrWrongCredentials, err)
		}
		return errors.Join(ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrForbidden):
		return errors.Join(ErrAccessDenied, err)

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.HasPrefix(msg, app.MsgProjectNotFound):
			return errors.Join(store.ErrProjectNotFound, err)
		case strings.HasPrefix(msg, app.MsgFamilyMemberNotFound):
			return errors.Join(store.ErrFamilyMemberNotFound, err)
		case strings.HasPrefix(msg, app.MsgDocumentNotFound):
			return errors.Join(store.ErrDocumentNotFound, err)
		}

	case errors.Is(err, adapter.ErrConflict):
		if strings.HasPrefix(msg, app.MsgUserAlreadyExists) {
			return errors.Join(store.ErrEmailAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		switch {
		case strings.HasPrefix(msg, app.MsgAIRequestFailed):
			return errors.Join(adapter.ErrAIRequestFailed, err)
		case strings.HasPrefix(msg, app.MsgAIResponseInvalid):
			return errors.Join(ErrAIResponseParse, err)
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
