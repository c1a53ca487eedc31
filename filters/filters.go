// Package filters turns loosely typed query parameters into typed predicates.
// Every predicate renders to a BSON query for MongoDB and can also be evaluated
// against a decoded document, which is how the in-memory store answers queries.
package filters

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
)

const (
	// MinSearchLength applies to product and customer search endpoints.
	MinSearchLength = 3
	// MinGlobalSearchLength applies to the cross-entity search endpoint.
	MinGlobalSearchLength = 2
	// DefaultTransactionLimit caps transaction listings.
	DefaultTransactionLimit = 100
)

// SearchTerm trims q and reports whether it is long enough to be searched.
func SearchTerm(q string, min int) (string, bool) {
	q = strings.TrimSpace(q)
	return q, utf8.RuneCountInString(q) >= min
}

func pattern(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

// anyField ORs a case-insensitive substring match of q over fields.
func anyField(q string, fields ...string) bson.M {
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern(q)})
	}
	return bson.M{"$or": or}
}

// and collapses clauses into one document; Mongo rejects an empty $and.
func and(clauses bson.A) bson.M {
	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}

// ContainsFold is the in-memory counterpart of a case-insensitive $regex on an escaped pattern.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(cases.Fold().String(haystack), cases.Fold().String(needle))
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if ContainsFold(h, needle) {
			return true
		}
	}
	return false
}
