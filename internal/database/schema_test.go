package database

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The schema script runs on every startup when DB_SCHEMA_PATH is set, so
// every statement in it must be safe to re-execute against an already
// initialized database.
func TestSchemaScriptIsRerunnable(t *testing.T) {
	content, err := os.ReadFile("../../db_schema.sql")
	if err != nil {
		t.Fatalf("reading schema script: %v", err)
	}
	script := string(content)

	createRe := regexp.MustCompile(`(?i)CREATE\s+(TABLE|UNIQUE\s+INDEX|INDEX)\b[^\n]*`)
	for _, stmt := range createRe.FindAllString(script, -1) {
		if !strings.Contains(strings.ToUpper(stmt), "IF NOT EXISTS") {
			t.Errorf("CREATE statement missing IF NOT EXISTS guard: %q", stmt)
		}
	}

	// ALTER TABLE has no IF NOT EXISTS form for ADD CONSTRAINT, so each one
	// must be wrapped in a conditional DO block probing pg_constraint.
	alterRe := regexp.MustCompile(`(?i)ALTER\s+TABLE[\s\S]*?ADD\s+CONSTRAINT\s+(\w+)`)
	for _, match := range alterRe.FindAllStringSubmatch(script, -1) {
		idx := strings.Index(script, match[0])
		prefix := script[:idx]
		blockStart := strings.LastIndex(prefix, "DO $$")
		if blockStart == -1 {
			t.Errorf("ALTER TABLE ADD CONSTRAINT %s not wrapped in a DO block", match[1])
			continue
		}
		block := script[blockStart:idx]
		if !strings.Contains(block, "pg_constraint") || !strings.Contains(block, match[1]) {
			t.Errorf("DO block for constraint %s does not probe pg_constraint for it", match[1])
		}
	}
}

func TestApplySchemaSkipsBlankPath(t *testing.T) {
	if err := applySchema(nil, ""); err != nil {
		t.Fatalf("blank schema path should be a no-op, got error: %v", err)
	}
}
