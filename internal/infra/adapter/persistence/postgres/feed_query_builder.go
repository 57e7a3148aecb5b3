package postgres

import (
	"fmt"
	"strings"

	"orgbox/internal/pkg/search"
	"orgbox/internal/repository"
)

// FeedQueryBuilder builds WHERE clauses for the paginated feed query.
// It is shared between the page query and its tests so the clause logic
// lives in one place. PostgreSQL-specific: uses ILIKE and $N placeholders.
type FeedQueryBuilder struct{}

// NewFeedQueryBuilder creates a new query builder instance.
func NewFeedQueryBuilder() *FeedQueryBuilder {
	return &FeedQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for a feed page.
// Conditions, in order: owner match, optional case-insensitive substring
// match on content, optional keyset cursor on (created_at, id).
func (qb *FeedQueryBuilder) BuildWhereClause(userID int64, searchTerm string, after *repository.FeedCursor) (clause string, args []interface{}) {
	conditions := []string{"user_id = $1"}
	args = append(args, userID)
	paramIndex := 2

	if searchTerm != "" {
		conditions = append(conditions,
			fmt.Sprintf(`content ILIKE $%d ESCAPE '\'`, paramIndex))
		args = append(args, search.LikePattern(searchTerm))
		paramIndex++
	}

	if after != nil {
		// キーセットページネーション: カーソル位置より古い行のみ
		conditions = append(conditions,
			fmt.Sprintf("(created_at, id) < ($%d, $%d)", paramIndex, paramIndex+1))
		args = append(args, after.CreatedAt, after.ID)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
