// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: the first goose statement fails

	_, err = Migrate(context.Background(), db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := Migrate(context.Background(), db)
	if !errors.Is(err, ErrNilDB) {
		t.Fatalf("expected ErrNilDB, got %v", err)
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedSchema(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no migrations embedded")
	}

	raw, err := fs.ReadFile(embedMigrations, names[0])
	if err != nil {
		t.Fatalf("read %s: %v", names[0], err)
	}
	schema := string(raw)

	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS projects",
		"CREATE TABLE IF NOT EXISTS family_members",
		"CREATE TABLE IF NOT EXISTS documents",
		"CREATE TABLE IF NOT EXISTS relationships",
		"CREATE TABLE IF NOT EXISTS ai_analyses",
		"REFERENCES family_members (project_id, id)",
		"REFERENCES documents (project_id, id)",
		"-- +goose Down",
	} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema is missing %q", want)
		}
	}
}
