// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mfadhilr/contekan/internal/adapter"
	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/session"
	"github.com/mfadhilr/contekan/models"
)

type listController struct {
	adapter  adapter.ServerAdapter
	sessions session.Provider
	logger   *logger.Logger

	searchBody  bool
	searchDesc  bool
	searchOwner bool

	mu         sync.Mutex
	snippets   []models.Snippet
	arrival    map[string]int
	nextSeq    int
	tombstones map[string]struct{}
	query      string
	filter     OwnerFilter
	direction  string
	selectedID string
}

// NewListController creates a ListController over the given server adapter.
// The sort direction and the extra search scopes come from cfg; the title is
// always searched.
func NewListController(cfg config.List, serverAdapter adapter.ServerAdapter, sessions session.Provider, logger *logger.Logger) ListController {
	c := &listController{
		adapter:    serverAdapter,
		sessions:   sessions,
		logger:     logger,
		arrival:    make(map[string]int),
		tombstones: make(map[string]struct{}),
		direction:  cfg.SortDirection,
	}
	if c.direction == "" {
		c.direction = config.SortDescending
	}

	for _, scope := range cfg.SearchScopes {
		switch strings.TrimSpace(scope) {
		case config.ScopeBody:
			c.searchBody = true
		case config.ScopeDescription:
			c.searchDesc = true
		case config.ScopeOwner:
			c.searchOwner = true
		}
	}

	return c
}

func (c *listController) Load(ctx context.Context) error {
	fetched, err := c.adapter.GetAllSnippets(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("load snippets failed, keeping previous collection")
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snippets = c.snippets[:0]
	c.arrival = make(map[string]int, len(fetched))
	c.nextSeq = 0
	for _, snippet := range fetched {
		// locally deleted rows stay gone even if the list response
		// raced the delete
		if _, deleted := c.tombstones[snippet.ID]; deleted {
			continue
		}
		c.snippets = append(c.snippets, snippet)
		c.arrival[snippet.ID] = c.nextSeq
		c.nextSeq++
	}
	c.resort()

	if _, ok := c.indexOf(c.selectedID); !ok {
		c.selectedID = ""
	}

	c.logger.Debug().Int("count", len(c.snippets)).Msg("snippet collection reloaded")
	return nil
}

func (c *listController) Visible() []models.Snippet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleLocked()
}

func (c *listController) Search(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *listController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *listController) SetOwnerFilter(filter OwnerFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = filter
}

func (c *listController) Filter() OwnerFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

func (c *listController) SetSortDirection(direction string) {
	if direction != config.SortAscending && direction != config.SortDescending {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.direction = direction
	c.resort()
}

func (c *listController) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.indexOf(id); ok {
		c.selectedID = id
	}
}

func (c *listController) CurrentSelection() (models.Snippet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.indexOf(c.selectedID)
	if !ok {
		return models.Snippet{}, false
	}
	return c.snippets[idx], true
}

func (c *listController) Get(id string) (models.Snippet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.indexOf(id)
	if !ok {
		return models.Snippet{}, false
	}
	return c.snippets[idx], true
}

func (c *listController) MergeInserted(snippet models.Snippet) {
	c.merge(snippet)
}

func (c *listController) MergeUpdated(snippet models.Snippet) {
	c.merge(snippet)
}

func (c *listController) ApplyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tombstones[id] = struct{}{}

	idx, ok := c.indexOf(id)
	if !ok {
		return
	}

	var successor string
	if c.selectedID == id {
		successor = c.successorLocked(id)
	}

	c.snippets = append(c.snippets[:idx], c.snippets[idx+1:]...)
	delete(c.arrival, id)

	if c.selectedID == id {
		c.selectedID = successor
	}
}

// merge upserts a server response into the collection. A locally deleted id
// never comes back: the delete is dominant whatever order the responses
// arrived in.
func (c *listController) merge(snippet models.Snippet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, deleted := c.tombstones[snippet.ID]; deleted {
		c.logger.Debug().Str("id", snippet.ID).Msg("merge ignored for deleted snippet")
		return
	}

	if idx, ok := c.indexOf(snippet.ID); ok {
		c.snippets[idx] = snippet
	} else {
		c.snippets = append(c.snippets, snippet)
		c.arrival[snippet.ID] = c.nextSeq
		c.nextSeq++
	}
	c.resort()
}

// resort orders the collection by CreatedAt in the configured direction.
// Identical timestamps keep the order the snippets entered the collection.
func (c *listController) resort() {
	asc := c.direction == config.SortAscending
	sort.SliceStable(c.snippets, func(i, j int) bool {
		a, b := c.snippets[i], c.snippets[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if asc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		return c.arrival[a.ID] < c.arrival[b.ID]
	})
}

func (c *listController) visibleLocked() []models.Snippet {
	var ownerID int64
	if c.filter == FilterMine {
		if current, ok := c.sessions.Current(); ok {
			ownerID = current.UserID
		}
	}

	query := strings.ToLower(strings.TrimSpace(c.query))

	visible := make([]models.Snippet, 0, len(c.snippets))
	for _, snippet := range c.snippets {
		if c.filter == FilterMine && snippet.OwnerID != ownerID {
			continue
		}
		if query != "" && !c.matches(snippet, query) {
			continue
		}
		visible = append(visible, snippet)
	}
	return visible
}

func (c *listController) matches(snippet models.Snippet, query string) bool {
	if strings.Contains(strings.ToLower(snippet.Title), query) {
		return true
	}
	if c.searchBody && strings.Contains(strings.ToLower(snippet.Body), query) {
		return true
	}
	if c.searchDesc && strings.Contains(strings.ToLower(snippet.Description), query) {
		return true
	}
	if c.searchOwner && strings.Contains(strings.ToLower(snippet.OwnerDisplayName), query) {
		return true
	}
	return false
}

// successorLocked returns the id of the snippet that follows id in the
// current visible order, the one before it when id is last, or "" when id
// is the only visible snippet.
func (c *listController) successorLocked(id string) string {
	visible := c.visibleLocked()
	for i, snippet := range visible {
		if snippet.ID != id {
			continue
		}
		if i+1 < len(visible) {
			return visible[i+1].ID
		}
		if i > 0 {
			return visible[i-1].ID
		}
		return ""
	}
	return ""
}

func (c *listController) indexOf(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, snippet := range c.snippets {
		if snippet.ID == id {
			return i, true
		}
	}
	return 0, false
}
