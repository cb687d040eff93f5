// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-family-tree server handlers and the console client.
//
// All Msg* constants are the short titles written into the "error" field of
// failed API replies. The console client matches on them to recover the
// business error behind an HTTP status.
package app

const (
	// MsgInvalidInput is returned when the request body fails validation.
	// Per-field messages travel in the "details" field.
	MsgInvalidInput = "Invalid input"

	// MsgMalformedJSON is returned when the request body is not one JSON value.
	MsgMalformedJSON = "Malformed JSON body"

	// MsgInvalidCredentials is returned for an unknown email or a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAuthenticationRequired is returned when the auth-token cookie is
	// missing.
	MsgAuthenticationRequired = "Authentication required"

	// MsgInvalidToken is returned when the auth-token cookie fails
	// verification or names a user that no longer exists.
	MsgInvalidToken = "Invalid token"

	// MsgAccessDenied is returned when the caller may not touch the resource.
	MsgAccessDenied = "Access denied"

	MsgUserNotFound         = "User not found"
	MsgProjectNotFound      = "Project not found"
	MsgFamilyMemberNotFound = "Family member not found"
	MsgDocumentNotFound     = "Document not found"
	MsgRelationshipNotFound = "Relationship not found"
	MsgNotFound             = "Not found"

	MsgUserAlreadyExists         = "User already exists"
	MsgRelationshipAlreadyExists = "Relationship already exists"

	// MsgInvalidReference is returned when a row points at something that
	// does not exist or lives in another project.
	MsgInvalidReference = "Invalid reference"

	MsgInvalidDateRange = "Invalid date range"
	MsgNothingToUpdate  = "No fields to update"

	// MsgAIRequestFailed is returned when the AI endpoint could not be
	// reached or answered with an error status.
	MsgAIRequestFailed = "AI request failed"

	// MsgAIResponseInvalid is returned when the AI reply does not match the
	// expected JSON shape.
	MsgAIResponseInvalid = "AI response could not be parsed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgServiceUnavailable is returned by /healthz when the database does
	// not answer.
	MsgServiceUnavailable = "Service unavailable"
)
