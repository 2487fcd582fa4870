// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// NotAvailable is the display text for an absent optional field.
const NotAvailable = "N/A"

// TopicSeparator joins a repository's topics into one display text.
const TopicSeparator = ", "

// Repository holds the listing data for a single repository.
// It is the core domain entity of this application.
//
// Optional fields are nil when the upstream omitted them (or sent null).
// They are resolved to display text only by DisplayFields.
type Repository struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Topics          []string `json:"topics"`
	LastUpdate      *string  `json:"pushed_at"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
}

// Column identifies one displayed field of a Repository.
type Column int

const (
	ColumnName Column = iota
	ColumnDescription
	ColumnTopics
	ColumnLastUpdate
	ColumnLanguage
	ColumnStars
	ColumnForks

	// ColumnCount is the number of displayed columns.
	ColumnCount
)

var columnTitles = [ColumnCount]string{
	"Name",
	"Description",
	"Topics",
	"Last update",
	"Language",
	"Star count",
	"Forks count",
}

// Title returns the header text of the column.
func (c Column) Title() string {
	if c < 0 || c >= ColumnCount {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnTitles[c]
}

// TopicsText returns the topics joined by TopicSeparator, or nil when there are none.
func (r Repository) TopicsText() *string {
	if len(r.Topics) == 0 {
		return nil
	}
	joined := strings.Join(r.Topics, TopicSeparator)
	return &joined
}

// DisplayFields returns the display text of every column, in column order.
func (r Repository) DisplayFields() [ColumnCount]string {
	return [ColumnCount]string{
		DisplayText(r.Name),
		DisplayText(r.Description),
		DisplayText(r.TopicsText()),
		DisplayText(r.LastUpdate),
		DisplayText(r.Language),
		strconv.Itoa(r.StargazersCount),
		strconv.Itoa(r.ForksCount),
	}
}

// DisplayText resolves an optional field to the text shown for it.
func DisplayText(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

// String returns a pointer to s. It is a convenience for building records.
func String(s string) *string {
	return &s
}
