package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET for a 1-based page. Non-positive values
// leave the query unbounded.
func Paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page <= 0 || pageSize <= 0 {
			return db
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

// OrderBy orders by field when it is present in allowed, otherwise by
// fallback. Direction defaults to descending.
//
// Example usage:
//
//	db.Scopes(db.OrderBy(filter.OrderBy, filter.Order, allowed, "id"))
func OrderBy(field, direction string, allowed map[string]bool, fallback string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		column := fallback
		if allowed[strings.ToLower(field)] {
			column = strings.ToLower(field)
		}
		dir := "DESC"
		if strings.EqualFold(direction, "asc") {
			dir = "ASC"
		}
		return db.Order(column + " " + dir)
	}
}

// ContainsFold matches rows where any of columns contains term, ignoring case.
func ContainsFold(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			clauses = append(clauses, "LOWER(COALESCE("+col+", '')) LIKE ?")
			args = append(args, pattern)
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}
