package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-storage/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	entriesTable = "storage_entries"

	columnVariant   = "variant"
	columnKey       = "entry_key"
	columnValue     = "entry_value"
	columnAccess    = "access"
	columnUpdatedAt = "updated_at"

	upsertEntrySuffix = `ON CONFLICT (variant, entry_key) DO UPDATE SET
		entry_value = excluded.entry_value,
		access      = excluded.access,
		updated_at  = excluded.updated_at`

	likePrefixExpr = `entry_key LIKE ? ESCAPE '\'`
)

// likeEscaper escapes LIKE wildcards so a prefix matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func prefixPattern(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

func (s *sqlStore) buildGetQuery(key string) (string, []any, error) {
	return s.db.builder().
		Select(columnValue).
		From(entriesTable).
		Where(sq.Eq{columnVariant: s.variant.String(), columnKey: key}).
		ToSql()
}

func (s *sqlStore) buildUpsertQuery(key, value string, access models.AccessPolicy, now time.Time) (string, []any, error) {
	return s.db.builder().
		Insert(entriesTable).
		Columns(columnVariant, columnKey, columnValue, columnAccess, columnUpdatedAt).
		Values(s.variant.String(), key, value, int(access), now).
		Suffix(upsertEntrySuffix).
		ToSql()
}

func (s *sqlStore) buildDeleteQuery(key string) (string, []any, error) {
	return s.db.builder().
		Delete(entriesTable).
		Where(sq.Eq{columnVariant: s.variant.String(), columnKey: key}).
		ToSql()
}

func (s *sqlStore) buildKeysQuery(prefix string) (string, []any, error) {
	return s.db.builder().
		Select(columnKey).
		From(entriesTable).
		Where(sq.Eq{columnVariant: s.variant.String()}).
		Where(likePrefixExpr, prefixPattern(prefix)).
		OrderBy(columnKey).
		ToSql()
}

func (s *sqlStore) buildClearQuery(prefix string) (string, []any, error) {
	return s.db.builder().
		Delete(entriesTable).
		Where(sq.Eq{columnVariant: s.variant.String()}).
		Where(likePrefixExpr, prefixPattern(prefix)).
		ToSql()
}
