package postgres

import (
	"fmt"
	"strings"
)

// predicates folds optional conditions into a WHERE clause. Every "?" in a
// clause is bound to the next argument and rendered as a $n placeholder, so
// values never end up in the query text.
type predicates struct {
	clauses []string
	args    []any
}

func (p *predicates) add(clause string, args ...any) {
	if strings.Count(clause, "?") != len(args) {
		panic(fmt.Sprintf("postgres: clause %q expects %d args, got %d", clause, strings.Count(clause, "?"), len(args)))
	}
	for _, arg := range args {
		p.args = append(p.args, arg)
		clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", len(p.args)), 1)
	}
	p.clauses = append(p.clauses, clause)
}

func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return "\n\t\tWHERE " + strings.Join(p.clauses, "\n\t\t  AND ")
}

func (p *predicates) values() []any {
	return p.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern matching value anywhere.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
}
