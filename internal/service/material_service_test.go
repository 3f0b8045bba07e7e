package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mihppk/college_bot/internal/model"
)

type fakeMaterialStore struct {
	created []*model.Material
	deleted []string
}

func (f *fakeMaterialStore) Create(_ context.Context, material *model.Material) error {
	material.ID = int64(len(f.created) + 1)
	f.created = append(f.created, material)
	return nil
}

func (f *fakeMaterialStore) ListByGroup(_ context.Context, group string) ([]*model.Material, error) {
	var out []*model.Material
	for _, m := range f.created {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaterialStore) DeleteByGroup(_ context.Context, group string) (int64, error) {
	f.deleted = append(f.deleted, group)
	var n int64
	for _, m := range f.created {
		if m.Group == group {
			n++
		}
	}
	return n, nil
}

func TestPublishAppliesDefaultDescription(t *testing.T) {
	store := &fakeMaterialStore{}
	svc := NewMaterialService(store, zap.NewNop())

	material := &model.Material{
		Group:  "11Т",
		Kind:   model.MaterialKindDocument,
		Title:  "lecture.pdf",
		FileID: "doc-file-id",
	}

	require.NoError(t, svc.Publish(context.Background(), material))
	require.Len(t, store.created, 1)
	require.Equal(t, model.DefaultMaterialDescription, store.created[0].Description)
}

func TestPublishKeepsExplicitDescription(t *testing.T) {
	store := &fakeMaterialStore{}
	svc := NewMaterialService(store, zap.NewNop())

	material := &model.Material{
		Group:       "11Т",
		Kind:        model.MaterialKindText,
		Title:       "Текстовый материал",
		Description: "Конспект лекции",
	}

	require.NoError(t, svc.Publish(context.Background(), material))
	require.Equal(t, "Конспект лекции", store.created[0].Description)
}

func TestPublishRequiresFileIDForAttachments(t *testing.T) {
	store := &fakeMaterialStore{}
	svc := NewMaterialService(store, zap.NewNop())

	material := &model.Material{
		Group: "11Т",
		Kind:  model.MaterialKindVideo,
		Title: "Видео",
	}

	require.Error(t, svc.Publish(context.Background(), material))
	require.Empty(t, store.created)
}

func TestClearGroup(t *testing.T) {
	store := &fakeMaterialStore{}
	svc := NewMaterialService(store, zap.NewNop())

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.Publish(context.Background(), &model.Material{
			Group:       "21Т",
			Kind:        model.MaterialKindText,
			Description: "материал",
		}))
	}

	deleted, err := svc.ClearGroup(context.Background(), "21Т")
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
	require.Equal(t, []string{"21Т"}, store.deleted)
}
