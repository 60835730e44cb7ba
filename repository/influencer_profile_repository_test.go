package repository

import (
	"testing"

	"github.com/gongguscout/gonggu-scout/models"
	testingutil "github.com/gongguscout/gonggu-scout/testing"
	"github.com/gongguscout/gonggu-scout/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo provisions a dedicated test database, skipping when no Postgres
// instance is reachable.
func setupRepo(t *testing.T) (*testingutil.TestFixtures, InfluencerProfileRepository) {
	t.Helper()
	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("PostgreSQL not available, skipping: %v", err)
	}
	t.Cleanup(func() {
		if err := testDB.TeardownTestDB(); err != nil {
			t.Logf("Warning: failed to cleanup test database: %v", err)
		}
	})
	return testingutil.NewTestFixtures(testDB), NewInfluencerProfileRepository(testDB.DB)
}

func TestInfluencerProfileLookups(t *testing.T) {
	fixtures, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	saved, err := fixtures.CreateTestInfluencer(testingutil.WithUsername("lookup_user"))
	require.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		row, err := repo.ByID(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, "lookup_user", row.Username)
	})

	t.Run("ByIDMissingReturnsNil", func(t *testing.T) {
		row, err := repo.ByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, row)
	})

	t.Run("ByUUID", func(t *testing.T) {
		row, err := repo.ByUUID(ctx, saved.UUID)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, saved.ID, row.ID)
	})

	t.Run("ByUsername", func(t *testing.T) {
		row, err := repo.ByUsername(ctx, "lookup_user")
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, saved.ID, row.ID)
	})
}

func TestInfluencerProfileFiltering(t *testing.T) {
	fixtures, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	_, err := fixtures.CreateTestInfluencer(
		testingutil.WithUsername("small_beauty"),
		testingutil.WithCategory(models.CategoryBeauty),
		testingutil.WithFollowers(8_000),
		testingutil.WithAvgReelsView(1_000),
		testingutil.WithEngagementRate(3.0),
	)
	require.NoError(t, err)
	_, err = fixtures.CreateTestInfluencer(
		testingutil.WithUsername("big_beauty"),
		testingutil.WithCategory(models.CategoryBeauty),
		testingutil.WithFollowers(120_000),
		testingutil.WithAvgReelsView(20_000),
		testingutil.WithEngagementRate(6.5),
		testingutil.WithBioLink("https://link.gongguscout.com/big_beauty"),
	)
	require.NoError(t, err)
	_, err = fixtures.CreateTestInfluencer(
		testingutil.WithUsername("mid_food"),
		testingutil.WithCategory(models.CategoryFood),
		testingutil.WithFollowers(40_000),
		testingutil.WithAvgReelsView(5_000),
		testingutil.WithEngagementRate(9.0),
	)
	require.NoError(t, err)

	t.Run("CategoryFilter", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{CategoryTag: utils.ToPtr(models.CategoryBeauty)}, "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("UnknownCategoryMatchesNothing", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{CategoryTag: utils.ToPtr("nonexistent")}, "", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("FollowerRangeInclusive", func(t *testing.T) {
		min := utils.ToPtr(int64(8_000))
		max := utils.ToPtr(int64(40_000))
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{MinFollowers: min, MaxFollowers: max}, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.GreaterOrEqual(t, r.FollowerCount, *min)
			assert.LessOrEqual(t, r.FollowerCount, *max)
		}
	})

	t.Run("InvertedRangeYieldsZeroRows", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{
			MinFollowers: utils.ToPtr(int64(100_000)),
			MaxFollowers: utils.ToPtr(int64(10_000)),
		}, "", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("ReelsViewRange", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{MinReelsView: utils.ToPtr(int64(4_000))}, "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("ActiveLinkFilter", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{HasActiveLink: utils.ToPtr(true)}, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "big_beauty", rows[0].Username)
		require.NotNil(t, rows[0].BioLinkURL)
	})

	t.Run("CombinedFilters", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{
			CategoryTag:  utils.ToPtr(models.CategoryBeauty),
			MinFollowers: utils.ToPtr(int64(50_000)),
		}, "", 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "big_beauty", rows[0].Username)
	})

	t.Run("Count", func(t *testing.T) {
		n, err := repo.Count(ctx, models.InfluencerProfileFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestCategorySpreadFiltering(t *testing.T) {
	fixtures, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	tags := models.CategoryTags()
	_, err := fixtures.CreateCategorySpread(tags)
	require.NoError(t, err)

	for _, tag := range tags {
		n, err := repo.Count(ctx, models.InfluencerProfileFilter{CategoryTag: utils.ToPtr(tag)})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "category %s", tag)
	}

	total, err := repo.Count(ctx, models.InfluencerProfileFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(tags)), total)
}

func TestInfluencerProfileOrdering(t *testing.T) {
	fixtures, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	now := utils.UTCNow()
	old := now.AddDate(0, 0, -40)
	recent := now.AddDate(0, 0, -3)

	_, err := fixtures.CreateTestInfluencer(
		testingutil.WithUsername("a_user"),
		testingutil.WithFollowers(50_000),
		testingutil.WithEngagementRate(4.0),
		testingutil.WithLastGonggu(old),
	)
	require.NoError(t, err)
	_, err = fixtures.CreateTestInfluencer(
		testingutil.WithUsername("b_user"),
		testingutil.WithFollowers(200_000),
		testingutil.WithEngagementRate(11.0),
		testingutil.WithNoGongguHistory(),
	)
	require.NoError(t, err)
	_, err = fixtures.CreateTestInfluencer(
		testingutil.WithUsername("c_user"),
		testingutil.WithFollowers(90_000),
		testingutil.WithEngagementRate(7.5),
		testingutil.WithLastGonggu(recent),
	)
	require.NoError(t, err)

	t.Run("ByEngagement", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{}, OrderByEngagement, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "b_user", rows[0].Username)
		assert.Equal(t, "c_user", rows[1].Username)
		assert.Equal(t, "a_user", rows[2].Username)
	})

	t.Run("ByFollowers", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{}, OrderByFollowers, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "b_user", rows[0].Username)
		assert.Equal(t, "c_user", rows[1].Username)
		assert.Equal(t, "a_user", rows[2].Username)
	})

	t.Run("ByRecentGongguNullsLast", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{}, OrderByRecentGonggu, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "c_user", rows[0].Username)
		assert.Equal(t, "a_user", rows[1].Username)
		// never ran a campaign: sorted last
		assert.Equal(t, "b_user", rows[2].Username)
	})

	t.Run("LimitAndOffset", func(t *testing.T) {
		rows, err := repo.ByFilter(ctx, models.InfluencerProfileFilter{}, OrderByFollowers, 1, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "c_user", rows[0].Username)
	})
}

func TestInfluencerProfileBatchAndReset(t *testing.T) {
	_, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	var batch []*models.InfluencerProfile
	for i := 0; i < 5; i++ {
		batch = append(batch, &models.InfluencerProfile{
			UUID:              uuid.New(),
			Username:          "batch_user_" + string(rune('a'+i)),
			DisplayName:       "Batch User",
			CategoryTag:       models.CategoryGaming,
			FollowerCount:     int64(10_000 * (i + 1)),
			AvgReelsView:      int64(1_000 * (i + 1)),
			EngagementRate:    5.0,
			SalesFatigueScore: 1,
			CreatedAt:         utils.UTCNow(),
			UpdatedAt:         utils.UTCNow(),
		})
	}

	require.NoError(t, repo.SaveBatch(ctx, batch))

	n, err := repo.Count(ctx, models.InfluencerProfileFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	require.NoError(t, repo.DeleteAll(ctx))

	n, err = repo.Count(ctx, models.InfluencerProfileFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUsernameUniqueConstraint(t *testing.T) {
	fixtures, repo := setupRepo(t)
	ctx := testingutil.CreateTestContext()

	_, err := fixtures.CreateTestInfluencer(testingutil.WithUsername("dup_user"))
	require.NoError(t, err)

	dup := &models.InfluencerProfile{
		UUID:              uuid.New(),
		Username:          "dup_user",
		DisplayName:       "Duplicate",
		CategoryTag:       models.CategoryFood,
		FollowerCount:     20_000,
		AvgReelsView:      3_000,
		EngagementRate:    6.0,
		SalesFatigueScore: 1,
		CreatedAt:         utils.UTCNow(),
		UpdatedAt:         utils.UTCNow(),
	}
	err = repo.Save(ctx, dup)
	assert.Error(t, err)
}
