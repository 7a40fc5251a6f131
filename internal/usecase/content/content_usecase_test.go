package content

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/prospera/internal/domain"
	"github.com/saradorri/prospera/internal/domain/mocks"
	"github.com/saradorri/prospera/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentUseCase(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContentRepository(ctrl)
	useCase := NewContentUseCase(repo, logger.NewNopLogger())

	t.Run("list passes the filter through", func(t *testing.T) {
		filter := domain.ContentFilter{ContentType: "video", Language: "hi", Limit: 100}
		repo.EXPECT().List(ctx, filter).Return([]*domain.FinancialContent{{ID: 1, Title: "Saving basics"}}, nil)

		items, err := useCase.List(ctx, filter)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Saving basics", items[0].Title)
	})

	t.Run("get", func(t *testing.T) {
		repo.EXPECT().GetActiveByID(ctx, int64(1)).Return(&domain.FinancialContent{ID: 1}, nil)
		repo.EXPECT().GetActiveByID(ctx, int64(2)).Return(nil, nil)

		item, err := useCase.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), item.ID)

		_, err = useCase.Get(ctx, 2)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		assert.Equal(t, domain.ErrCodeContentNotFound, appErr.Code)
	})

	t.Run("taxonomy", func(t *testing.T) {
		tax := useCase.Taxonomy()
		assert.Equal(t, []string{"video", "article", "quiz"}, tax.ContentTypes)
		assert.Equal(t, []string{"en", "hi", "ta", "te", "bn"}, tax.Languages)
		assert.Equal(t, []string{"beginner", "intermediate", "advanced"}, tax.DifficultyLevels)

		tax.Languages[0] = "xx"
		assert.Equal(t, "en", useCase.Taxonomy().Languages[0])
	})
}
