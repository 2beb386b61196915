package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfadhilr/contekan/internal/config"
	"github.com/mfadhilr/contekan/internal/logger"
	"github.com/mfadhilr/contekan/internal/mock"
	"github.com/mfadhilr/contekan/models"
)

// stubSessions is a fixed-identity session.Provider for client core tests.
type stubSessions struct {
	session models.Session
	active  bool
}

func (s *stubSessions) Current() (models.Session, bool)            { return s.session, s.active }
func (s *stubSessions) SignIn(context.Context, string, string) error { return nil }
func (s *stubSessions) Register(context.Context, string, string, string) error {
	return nil
}
func (s *stubSessions) SignOut() {}

func signedIn(userID int64) *stubSessions {
	return &stubSessions{
		session: models.Session{UserID: userID, Email: "budi@example.com", DisplayName: "Budi"},
		active:  true,
	}
}

func listSnippet(id, title string, ownerID int64, createdAt time.Time) models.Snippet {
	return models.Snippet{
		ID:               id,
		Title:            title,
		Body:             "body of " + title,
		OwnerID:          ownerID,
		OwnerDisplayName: "owner",
		CreatedAt:        createdAt,
	}
}

func newTestList(t *testing.T, ctrl *gomock.Controller, cfg config.List) (ListController, *mock.MockServerAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	list := NewListController(cfg, mockAdapter, signedIn(1), logger.Nop())
	return list, mockAdapter
}

func TestListController_Load_ReplacesCollectionSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s2", "beta", 1, base.Add(time.Hour)),
		listSnippet("s1", "alpha", 1, base),
	}, nil)

	require.NoError(t, list.Load(ctx))

	visible := list.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "s1", visible[0].ID)
	assert.Equal(t, "s2", visible[1].ID)
}

func TestListController_Load_ErrorKeepsPreviousCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, now),
	}, nil)
	require.NoError(t, list.Load(ctx))

	mockAdapter.EXPECT().GetAllSnippets(ctx).Return(nil, assert.AnError)
	err := list.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)

	visible := list.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "s1", visible[0].ID)
}

func TestListController_Load_EmptyClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, now),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Select("s1")
	_, selected := list.CurrentSelection()
	require.True(t, selected)

	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{}, nil)
	require.NoError(t, list.Load(ctx))

	_, selected = list.CurrentSelection()
	assert.False(t, selected)
}

func TestListController_Search_TitleCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "Quick Sort", 1, now),
		listSnippet("s2", "binary search", 1, now.Add(time.Second)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Search("QUICK")
	visible := list.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "s1", visible[0].ID)

	// empty query is the identity projection
	list.Search("")
	assert.Len(t, list.Visible(), 2)
}

func TestListController_Search_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, now),
		listSnippet("s2", "beta", 1, now.Add(time.Second)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Search("alpha")
	first := list.Visible()
	list.Search("alpha")
	second := list.Visible()
	assert.Equal(t, first, second)
}

func TestListController_Search_ConfiguredScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Now().UTC()
	snippets := []models.Snippet{
		{ID: "s1", Title: "alpha", Body: "func merge()", Description: "sorting helper", OwnerID: 1, OwnerDisplayName: "Budi", CreatedAt: now},
	}

	t.Run("body not searched by default", func(t *testing.T) {
		list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
		mockAdapter.EXPECT().GetAllSnippets(ctx).Return(snippets, nil)
		require.NoError(t, list.Load(ctx))

		list.Search("merge")
		assert.Empty(t, list.Visible())
	})

	t.Run("body scope enabled", func(t *testing.T) {
		cfg := config.List{SortDirection: config.SortAscending, SearchScopes: []string{config.ScopeBody}}
		list, mockAdapter := newTestList(t, ctrl, cfg)
		mockAdapter.EXPECT().GetAllSnippets(ctx).Return(snippets, nil)
		require.NoError(t, list.Load(ctx))

		list.Search("merge")
		assert.Len(t, list.Visible(), 1)
	})

	t.Run("owner scope enabled", func(t *testing.T) {
		cfg := config.List{SortDirection: config.SortAscending, SearchScopes: []string{config.ScopeOwner}}
		list, mockAdapter := newTestList(t, ctrl, cfg)
		mockAdapter.EXPECT().GetAllSnippets(ctx).Return(snippets, nil)
		require.NoError(t, list.Load(ctx))

		list.Search("budi")
		assert.Len(t, list.Visible(), 1)
	})
}

func TestListController_OwnerFilter_ComposesWithSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha one", 1, now),
		listSnippet("s2", "alpha two", 2, now.Add(time.Second)),
		listSnippet("s3", "beta", 1, now.Add(2*time.Second)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.SetOwnerFilter(FilterMine)
	assert.Len(t, list.Visible(), 2)

	list.Search("alpha")
	visible := list.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "s1", visible[0].ID)

	list.SetOwnerFilter(FilterAll)
	assert.Len(t, list.Visible(), 2)
}

func TestListController_Sort_TiesKeepInsertionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	ts := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "first", 1, ts),
		listSnippet("s2", "second", 1, ts),
		listSnippet("s3", "third", 1, ts),
	}, nil)
	require.NoError(t, list.Load(ctx))

	visible := list.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{visible[0].ID, visible[1].ID, visible[2].ID})

	// flipping direction twice keeps ties deterministic
	list.SetSortDirection(config.SortDescending)
	list.SetSortDirection(config.SortAscending)
	visible = list.Visible()
	assert.Equal(t, []string{"s1", "s2", "s3"}, []string{visible[0].ID, visible[1].ID, visible[2].ID})
}

func TestListController_SortDescending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortDescending})
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "old", 1, base),
		listSnippet("s2", "new", 1, base.Add(time.Hour)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	visible := list.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "s2", visible[0].ID)
}

func TestListController_Select_UnknownIDIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, now),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Select("s1")
	list.Select("missing")

	selected, ok := list.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, "s1", selected.ID)
}

func TestListController_ApplyDelete_SelectionMovesToNext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, base),
		listSnippet("s2", "beta", 1, base.Add(time.Second)),
		listSnippet("s3", "gamma", 1, base.Add(2*time.Second)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Select("s2")
	list.ApplyDelete("s2")

	selected, ok := list.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, "s3", selected.ID)
}

func TestListController_ApplyDelete_LastSelectsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, base),
		listSnippet("s2", "beta", 1, base.Add(time.Second)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Select("s2")
	list.ApplyDelete("s2")

	selected, ok := list.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, "s1", selected.ID)
}

func TestListController_ApplyDelete_OnlySnippetClearsSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, time.Now().UTC()),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.Select("s1")
	list.ApplyDelete("s1")

	_, ok := list.CurrentSelection()
	assert.False(t, ok)
	assert.Empty(t, list.Visible())
}

func TestListController_DeleteDominatesLateUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	snippet := listSnippet("s1", "alpha", 1, now)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{snippet}, nil)
	require.NoError(t, list.Load(ctx))

	list.ApplyDelete("s1")

	// the update response arrives after the delete was applied
	snippet.Title = "alpha v2"
	list.MergeUpdated(snippet)
	assert.Empty(t, list.Visible())

	list.MergeInserted(snippet)
	assert.Empty(t, list.Visible())
}

func TestListController_MergeInserted_AddsAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{
		listSnippet("s1", "alpha", 1, base),
		listSnippet("s3", "gamma", 1, base.Add(2*time.Hour)),
	}, nil)
	require.NoError(t, list.Load(ctx))

	list.MergeInserted(listSnippet("s2", "beta", 1, base.Add(time.Hour)))

	visible := list.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "s2", visible[1].ID)
}

func TestListController_MergeUpdated_ReplacesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	list, mockAdapter := newTestList(t, ctrl, config.List{SortDirection: config.SortAscending})
	ctx := context.Background()

	now := time.Now().UTC()
	snippet := listSnippet("s1", "alpha", 1, now)
	mockAdapter.EXPECT().GetAllSnippets(ctx).Return([]models.Snippet{snippet}, nil)
	require.NoError(t, list.Load(ctx))

	snippet.Title = "alpha v2"
	list.MergeUpdated(snippet)

	got, ok := list.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "alpha v2", got.Title)
	assert.Len(t, list.Visible(), 1)
}
