package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepository_DisplayFields(t *testing.T) {
	testCases := []struct {
		name     string
		repo     Repository
		expected [ColumnCount]string
	}{
		{
			name: "every field present",
			repo: Repository{
				Name:            String("hello"),
				Description:     String("world"),
				Topics:          []string{"go", "cli", "tui"},
				LastUpdate:      String("2024-01-02T03:04:05Z"),
				Language:        String("Go"),
				StargazersCount: 42,
				ForksCount:      7,
			},
			expected: [ColumnCount]string{"hello", "world", "go, cli, tui", "2024-01-02T03:04:05Z", "Go", "42", "7"},
		},
		{
			name:     "absent fields read N/A",
			repo:     Repository{},
			expected: [ColumnCount]string{"N/A", "N/A", "N/A", "N/A", "N/A", "0", "0"},
		},
		{
			name:     "empty topic list reads N/A",
			repo:     Repository{Name: String("x"), Topics: []string{}},
			expected: [ColumnCount]string{"x", "N/A", "N/A", "N/A", "N/A", "0", "0"},
		},
		{
			name:     "empty strings are kept",
			repo:     Repository{Name: String(""), Description: String("")},
			expected: [ColumnCount]string{"", "", "N/A", "N/A", "N/A", "0", "0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.repo.DisplayFields())
		})
	}
}

func TestRepository_TopicsText(t *testing.T) {
	assert.Nil(t, Repository{}.TopicsText())
	assert.Equal(t, "solo", *Repository{Topics: []string{"solo"}}.TopicsText())
}

func TestColumn_Title(t *testing.T) {
	assert.Equal(t, "Name", ColumnName.Title())
	assert.Equal(t, "Last update", ColumnLastUpdate.Title())
	assert.Equal(t, "Forks count", ColumnForks.Title())
	assert.Equal(t, "Column(7)", ColumnCount.Title())
}
