package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/pkg/apperrors"
)

type fakeMaterialStore struct {
	materials map[int64]*models.Material
	total     int64
	topics    []string

	lastQuery     dto.MaterialQuery
	viewBumps     []int64
	downloadBumps []int64
}

func (f *fakeMaterialStore) List(_ context.Context, q dto.MaterialQuery) ([]models.Material, int64, error) {
	f.lastQuery = q
	var out []models.Material
	for _, m := range f.materials {
		out = append(out, *m)
	}
	return out, f.total, nil
}

func (f *fakeMaterialStore) DistinctTopics(_ context.Context, _ bool) ([]string, error) {
	return f.topics, nil
}

func (f *fakeMaterialStore) GetByID(_ context.Context, id int64) (*models.Material, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	return m, nil
}

func (f *fakeMaterialStore) Create(_ context.Context, m *models.Material) (int64, error) {
	m.ID = int64(len(f.materials) + 1)
	if f.materials == nil {
		f.materials = make(map[int64]*models.Material)
	}
	f.materials[m.ID] = m
	return m.ID, nil
}

func (f *fakeMaterialStore) Update(_ context.Context, _ int64, _ map[string]interface{}) error {
	return nil
}

func (f *fakeMaterialStore) Delete(_ context.Context, id int64) error {
	delete(f.materials, id)
	return nil
}

func (f *fakeMaterialStore) IncrementViewCount(_ context.Context, id int64) error {
	f.viewBumps = append(f.viewBumps, id)
	return nil
}

func (f *fakeMaterialStore) IncrementDownloadCount(_ context.Context, id int64) error {
	f.downloadBumps = append(f.downloadBumps, id)
	return nil
}

func TestListMaterials_ClampsPagination(t *testing.T) {
	store := &fakeMaterialStore{topics: []string{}}
	svc := NewMaterialService(store)

	_, err := svc.ListMaterials(context.Background(), dto.MaterialQuery{Page: 0, Limit: 500}, models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, 1, store.lastQuery.Page)
	assert.Equal(t, 100, store.lastQuery.Limit)
	assert.False(t, store.lastQuery.IncludeUnapproved)
}

func TestListMaterials_DefaultLimit(t *testing.T) {
	store := &fakeMaterialStore{topics: []string{}}
	svc := NewMaterialService(store)

	_, err := svc.ListMaterials(context.Background(), dto.MaterialQuery{}, models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, 1, store.lastQuery.Page)
	assert.Equal(t, 25, store.lastQuery.Limit)
}

func TestListMaterials_AdminSeesUnapproved(t *testing.T) {
	store := &fakeMaterialStore{topics: []string{}}
	svc := NewMaterialService(store)

	_, err := svc.ListMaterials(context.Background(), dto.MaterialQuery{}, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, store.lastQuery.IncludeUnapproved)
}

func TestListMaterials_PaginationMetadata(t *testing.T) {
	store := &fakeMaterialStore{total: 25, topics: []string{"calculus", "databases"}}
	svc := NewMaterialService(store)

	resp, err := svc.ListMaterials(context.Background(), dto.MaterialQuery{Page: 2, Limit: 10}, models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 10, resp.Pagination.Limit)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, []string{"calculus", "databases"}, resp.Topics)
}

func TestGetMaterial_VisibilityRules(t *testing.T) {
	pending := &models.Material{ID: 1, UploaderID: 7, ModerationStatus: models.ModerationPending}
	approved := &models.Material{ID: 2, UploaderID: 7, ModerationStatus: models.ModerationApproved}
	store := &fakeMaterialStore{materials: map[int64]*models.Material{1: pending, 2: approved}}
	svc := NewMaterialService(store)

	// pending material hidden from other users as not-found
	_, err := svc.GetMaterial(context.Background(), 1, 99, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrMaterialNotFound)
	assert.Empty(t, store.viewBumps)

	// uploader sees their own pending material
	got, err := svc.GetMaterial(context.Background(), 1, 7, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	// admins see everything
	_, err = svc.GetMaterial(context.Background(), 1, 99, models.RoleAdmin)
	require.NoError(t, err)

	// approved material visible to anyone, view registered
	got, err = svc.GetMaterial(context.Background(), 2, 99, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ViewCount)
	assert.Contains(t, store.viewBumps, int64(2))
}

func TestDeleteMaterial_OnlyUploaderOrAdmin(t *testing.T) {
	store := &fakeMaterialStore{materials: map[int64]*models.Material{
		1: {ID: 1, UploaderID: 7, ModerationStatus: models.ModerationApproved},
	}}
	svc := NewMaterialService(store)

	err := svc.DeleteMaterial(context.Background(), 1, 99, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteMaterial(context.Background(), 1, 7, models.RoleStudent)
	require.NoError(t, err)
}

func TestRegisterDownload_BumpsCounter(t *testing.T) {
	store := &fakeMaterialStore{materials: map[int64]*models.Material{
		1: {ID: 1, UploaderID: 7, ModerationStatus: models.ModerationApproved},
	}}
	svc := NewMaterialService(store)

	got, err := svc.RegisterDownload(context.Background(), 1, 99, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DownloadCount)
	assert.Equal(t, []int64{1}, store.downloadBumps)
}
