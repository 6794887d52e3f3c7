package client

import (
	"context"
	"strings"

	"javaconnect/internal/models"
)

// DefaultPageSize matches the listing page of the web frontend.
const DefaultPageSize = 5

// QuestionList drives the question listing: it holds the fetched questions
// and applies the difficulty filter, the search term and client-side
// pagination. Filtering and paging happen locally; only Load talks to the
// server.
type QuestionList struct {
	client   *Client
	pageSize int

	questions  []models.Question
	difficulty string
	search     string
	page       int

	// filtered caches the outcome of applyFilters; recomputed lazily when
	// dirty.
	filtered []models.Question
	dirty    bool
}

// NewQuestionList creates a list with the default page size.
func NewQuestionList(client *Client) *QuestionList {
	return &QuestionList{
		client:   client,
		pageSize: DefaultPageSize,
		page:     1,
	}
}

// SetPageSize overrides the page size. Values below 1 are ignored.
func (l *QuestionList) SetPageSize(size int) {
	if size < 1 {
		return
	}
	l.pageSize = size
	l.dirty = true
	l.page = 1
}

// Load fetches all questions from the server and resets to the first page.
func (l *QuestionList) Load(ctx context.Context) error {
	questions, err := l.client.GetAllQuestions(ctx)
	if err != nil {
		return err
	}
	l.questions = questions
	l.page = 1
	l.dirty = true
	return nil
}

// SetDifficulty filters by difficulty level. An empty string shows all
// levels. Changing the filter resets to page 1.
func (l *QuestionList) SetDifficulty(difficulty string) {
	if l.difficulty == difficulty {
		return
	}
	l.difficulty = difficulty
	l.page = 1
	l.dirty = true
}

// SetSearch filters by a case-insensitive substring match on title,
// description and tags. Changing the term resets to page 1.
func (l *QuestionList) SetSearch(term string) {
	if l.search == term {
		return
	}
	l.search = term
	l.page = 1
	l.dirty = true
}

func (l *QuestionList) applyFilters() []models.Question {
	if !l.dirty {
		return l.filtered
	}

	term := strings.ToLower(strings.TrimSpace(l.search))
	out := make([]models.Question, 0, len(l.questions))
	for _, q := range l.questions {
		if l.difficulty != "" && string(q.Difficulty) != l.difficulty {
			continue
		}
		if term != "" && !matchesSearch(q, term) {
			continue
		}
		out = append(out, q)
	}

	l.filtered = out
	l.dirty = false
	return out
}

func matchesSearch(q models.Question, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(q.Title), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(q.Description), lowerTerm) {
		return true
	}
	for _, tag := range q.Tags {
		if strings.Contains(strings.ToLower(tag), lowerTerm) {
			return true
		}
	}
	return false
}

// TotalPages returns the number of pages for the current filters. An empty
// result still has one (empty) page.
func (l *QuestionList) TotalPages() int {
	count := len(l.applyFilters())
	if count == 0 {
		return 1
	}
	return (count + l.pageSize - 1) / l.pageSize
}

// Page returns the current page number, 1-based.
func (l *QuestionList) Page() int {
	// The current page can fall out of range after a filter change that
	// shrank the result set; clamp on read.
	if total := l.TotalPages(); l.page > total {
		l.page = total
	}
	if l.page < 1 {
		l.page = 1
	}
	return l.page
}

// SetPage moves to the given page, clamped into [1, TotalPages].
func (l *QuestionList) SetPage(page int) {
	total := l.TotalPages()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	l.page = page
}

// Visible returns the questions on the current page.
func (l *QuestionList) Visible() []models.Question {
	filtered := l.applyFilters()
	page := l.Page()

	start := (page - 1) * l.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + l.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// FilteredCount returns how many questions match the current filters across
// all pages.
func (l *QuestionList) FilteredCount() int {
	return len(l.applyFilters())
}
