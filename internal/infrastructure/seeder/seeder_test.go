package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/domain/mocks"
	"github.com/saradorri/prospera/internal/infrastructure/database/dbtest"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/saradorri/prospera/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedContentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewContentRepository(dbtest.New(t))
	s := NewSeeder(repo, logger.NewNopLogger())

	created, err := s.SeedContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(StarterCatalogue()), created)

	created, err = s.SeedContent(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)

	items, err := repo.List(ctx, domain.ContentFilter{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, items, len(StarterCatalogue()))

	hindi, err := repo.List(ctx, domain.ContentFilter{Language: "hi", Limit: 100})
	require.NoError(t, err)
	require.Len(t, hindi, 1)
	assert.Equal(t, domain.ContentTypeVideo, hindi[0].ContentType)
}

func TestSeedContentStopsOnError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContentRepository(ctrl)

	repo.EXPECT().GetByTitle(ctx, gomock.Any()).Return(nil, errors.New("db down"))

	created, err := NewSeeder(repo, logger.NewNopLogger()).SeedContent(ctx)
	assert.Error(t, err)
	assert.Zero(t, created)
}
