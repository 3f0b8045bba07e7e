package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

type upsertCall struct {
	telegramID int64
	group      string
}

type fakeUserStore struct {
	upserts  []upsertCall
	bindings map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{bindings: make(map[int64]*model.User)}
}

func (f *fakeUserStore) UpsertGroup(_ context.Context, telegramID int64, group string) error {
	f.upserts = append(f.upserts, upsertCall{telegramID: telegramID, group: group})
	if user, exists := f.bindings[telegramID]; exists {
		user.Group = group
		return nil
	}
	f.bindings[telegramID] = &model.User{TelegramID: telegramID, Group: group}
	return nil
}

func (f *fakeUserStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	return f.bindings[telegramID], nil
}

func (f *fakeUserStore) ListByGroup(_ context.Context, group string) ([]*model.User, error) {
	var out []*model.User
	for _, user := range f.bindings {
		if user.Group == group {
			out = append(out, user)
		}
	}
	return out, nil
}

func (f *fakeUserStore) ListAll(_ context.Context) ([]*model.User, error) {
	var out []*model.User
	for _, user := range f.bindings {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserStore) CountByGroup(_ context.Context) ([]model.GroupStat, error) {
	counts := make(map[string]int64)
	for _, user := range f.bindings {
		counts[user.Group]++
	}
	var stats []model.GroupStat
	for group, count := range counts {
		stats = append(stats, model.GroupStat{Group: group, Count: count})
	}
	return stats, nil
}

func TestSetGroupRejectsUnknownCode(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	require.Error(t, svc.SetGroup(context.Background(), 100, "99Х"))
	require.Empty(t, store.upserts)
}

func TestSetGroupUpsertIsIdempotent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	// Повторный выбор той же группы не создаёт дублей
	require.NoError(t, svc.SetGroup(context.Background(), 100, "21Т"))
	require.NoError(t, svc.SetGroup(context.Background(), 100, "21Т"))

	require.Len(t, store.bindings, 1)
	require.Equal(t, "21Т", store.bindings[100].Group)
}

func TestSetGroupReplacesExistingBinding(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	require.NoError(t, svc.SetGroup(context.Background(), 100, "11Т"))
	require.NoError(t, svc.SetGroup(context.Background(), 100, "31Т"))

	require.Len(t, store.bindings, 1)
	require.Equal(t, "31Т", store.bindings[100].Group)
}
