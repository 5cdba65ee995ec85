package inquiryRepo

import (
	"context"
	"testing"

	"xoadvisor/database"
	"xoadvisor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoInquiryRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewMongoInquiryRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Create(context.Background(), &models.Inquiry{ID: "i1", Status: models.InquiryStatusNew})
		require.NoError(t, err)
	})

	mt.Run("guest inquiry decodes nil user", func(mt *mtest.T) {
		repo := NewMongoInquiryRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.contact_inquiries", mtest.FirstBatch,
			bson.D{{Key: "id", Value: "i1"}, {Key: "user_id", Value: nil}, {Key: "status", Value: "new"}},
		))

		got, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].UserID)
		assert.Equal(t, models.InquiryStatusNew, got[0].Status)
	})

	mt.Run("status update of missing inquiry", func(mt *mtest.T) {
		repo := NewMongoInquiryRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.UpdateStatus(context.Background(), "i9", models.InquiryStatusResolved)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})
}
