package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-family-tree/internal/adapter"
	"github.com/MKhiriev/go-family-tree/internal/app"
	"github.com/MKhiriev/go-family-tree/internal/service"
	"github.com/MKhiriev/go-family-tree/internal/store"
	"github.com/MKhiriev/go-family-tree/internal/utils"
	"github.com/MKhiriev/go-family-tree/internal/validators"
)

// errorMapping binds a sentinel to its status and envelope title.
// passMessage marks 5xx failures whose text is safe to show.
type errorMapping struct {
	target      error
	status      int
	title       string
	passMessage bool
}

// errorMappings is ordered: AI failures wrap validation errors, so they
// are matched first.
var errorMappings = []errorMapping{
	{target: adapter.ErrAIRequestFailed, status: http.StatusInternalServerError, title: app.MsgAIRequestFailed, passMessage: true},
	{target: service.ErrAIResponseParse, status: http.StatusInternalServerError, title: app.MsgAIResponseInvalid, passMessage: true},

	{target: service.ErrWrongCredentials, status: http.StatusUnauthorized, title: app.MsgInvalidCredentials},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, title: app.MsgInvalidToken},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized, title: app.MsgAuthenticationRequired},
	{target: service.ErrAccessDenied, status: http.StatusForbidden, title: app.MsgAccessDenied},

	{target: store.ErrUserNotFound, status: http.StatusNotFound, title: app.MsgUserNotFound},
	{target: store.ErrProjectNotFound, status: http.StatusNotFound, title: app.MsgProjectNotFound},
	{target: store.ErrFamilyMemberNotFound, status: http.StatusNotFound, title: app.MsgFamilyMemberNotFound},
	{target: store.ErrDocumentNotFound, status: http.StatusNotFound, title: app.MsgDocumentNotFound},
	{target: store.ErrRelationshipNotFound, status: http.StatusNotFound, title: app.MsgRelationshipNotFound},

	{target: store.ErrEmailAlreadyExists, status: http.StatusConflict, title: app.MsgUserAlreadyExists},
	{target: store.ErrRelationshipAlreadyExists, status: http.StatusConflict, title: app.MsgRelationshipAlreadyExists},

	{target: validators.ErrValidation, status: http.StatusBadRequest, title: app.MsgInvalidInput},
	{target: utils.ErrMalformedJSON, status: http.StatusBadRequest, title: app.MsgMalformedJSON},
	{target: service.ErrInvalidDateRange, status: http.StatusBadRequest, title: app.MsgInvalidDateRange},
	{target: service.ErrNothingToUpdate, status: http.StatusBadRequest, title: app.MsgNothingToUpdate},
	{target: service.ErrCrossProjectReference, status: http.StatusBadRequest, title: app.MsgInvalidReference},
	{target: store.ErrInvalidReference, status: http.StatusBadRequest, title: app.MsgInvalidReference},
	{target: store.ErrInvalidData, status: http.StatusBadRequest, title: app.MsgInvalidInput},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, title: app.MsgInvalidInput},
}

var internalErrorMapping = errorMapping{status: http.StatusInternalServerError, title: app.MsgInternalServerError}

func mappingFromError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return internalErrorMapping
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}
