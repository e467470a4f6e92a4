package repositories

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-app-catalog/internal/apperrors"
	"github.com/sbilibin2017/gw-app-catalog/internal/logger"
)

//go:embed schema.sql
var schemaSQL string

// CreateSchema executes the embedded DDL script statement by statement.
// Every statement is idempotent, so it is safe to run on each start.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range splitStatements(schemaSQL) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return apperrors.Wrap(apperrors.ErrDatabase, err, fmt.Sprintf("schema statement %d", i+1))
		}
		logger.Log.Infow("schema statement applied", "object", objectNameFromStatement(stmt))
	}
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

var ddlKeywords = map[string]struct{}{
	"CREATE": {}, "TABLE": {}, "INDEX": {}, "EXTENSION": {}, "IF": {}, "NOT": {},
	"EXISTS": {}, "TEMPORARY": {}, "TEMP": {}, "UNIQUE": {}, "PRIMARY": {},
	"KEY": {}, "FOREIGN": {}, "REFERENCES": {}, "ON": {}, "CONSTRAINT": {}, "CHECK": {},
}

// objectNameFromStatement returns the name of the table, index or extension
// a DDL statement creates, or "unknown".
func objectNameFromStatement(stmt string) string {
	for _, word := range strings.Fields(stmt) {
		if _, ok := ddlKeywords[strings.ToUpper(word)]; ok {
			continue
		}
		name, _, _ := strings.Cut(word, "(")
		if name == "" {
			return "unknown"
		}
		return name
	}
	return "unknown"
}
