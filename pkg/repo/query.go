package repo

import (
	"fmt"
	"strings"
)

// Condition accumulates SQL predicate fragments together with their
// positional arguments. Fragments are rendered with $n placeholders numbered
// from the builder's start position, so a Condition can be embedded into a
// larger query as long as argument order is preserved.
type Condition struct {
	startPos  int
	fragments []string
	args      []any
}

func NewCondition() *Condition {
	return &Condition{startPos: 1}
}

// NewConditionAt starts placeholder numbering at startPos. Used when the
// surrounding query already binds startPos-1 arguments.
func NewConditionAt(startPos int) *Condition {
	return &Condition{startPos: startPos}
}

func (c *Condition) next() int {
	return c.startPos + len(c.args)
}

// NextPos returns the placeholder position the next term will bind.
func (c *Condition) NextPos() int {
	return c.next()
}

func (c *Condition) Eq(column string, value any) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s = $%d", column, c.next()))
	c.args = append(c.args, value)
	return c
}

func (c *Condition) NotEq(column string, value any) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s <> $%d", column, c.next()))
	c.args = append(c.args, value)
	return c
}

// Prefix matches values starting with the given string.
func (c *Condition) Prefix(column, prefix string) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s LIKE $%d", column, c.next()))
	c.args = append(c.args, escapeLike(prefix)+"%")
	return c
}

// Suffix matches values ending with the given string.
func (c *Condition) Suffix(column, suffix string) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s LIKE $%d", column, c.next()))
	c.args = append(c.args, "%"+escapeLike(suffix))
	return c
}

// Contains matches values containing the given string, case-insensitively.
func (c *Condition) Contains(column, substr string) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s ILIKE $%d", column, c.next()))
	c.args = append(c.args, "%"+escapeLike(substr)+"%")
	return c
}

// In matches any of the given values via = ANY. The values slice is bound as
// a single array argument.
func (c *Condition) In(column string, values any) *Condition {
	c.fragments = append(c.fragments, fmt.Sprintf("%s = ANY($%d)", column, c.next()))
	c.args = append(c.args, values)
	return c
}

// OrGroup builds a nested condition and folds its terms with OR into a single
// parenthesized fragment. An empty group adds nothing.
func (c *Condition) OrGroup(build func(g *Condition)) *Condition {
	g := &Condition{startPos: c.next()}
	build(g)
	if len(g.fragments) == 0 {
		return c
	}
	c.fragments = append(c.fragments, "("+strings.Join(g.fragments, " OR ")+")")
	c.args = append(c.args, g.args...)
	return c
}

func (c *Condition) Empty() bool {
	return len(c.fragments) == 0
}

// SQL joins the accumulated terms with AND.
func (c *Condition) SQL() string {
	return strings.Join(c.fragments, " AND ")
}

func (c *Condition) Args() []any {
	return c.args
}

func FormatLimitOffset(limit, offset int64) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	if limit > 0 {
		return fmt.Sprintf("LIMIT %d", limit)
	}
	if offset > 0 {
		return fmt.Sprintf("OFFSET %d", offset)
	}
	return ""
}

func FormatOrderBy(column string, ascending bool) string {
	if column == "" {
		return ""
	}
	dir := "DESC"
	if ascending {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
