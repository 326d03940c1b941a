package subscribers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"onlyflans/internal/db/dbtest"
	flansdomain "onlyflans/internal/domain/flans"
	domain "onlyflans/internal/domain/subscribers"
	"onlyflans/pkg/logger"
)

func TestDuplicateSubscribeLeavesOneRow(t *testing.T) {
	conn := dbtest.New(t)
	service := domain.NewService(NewPostgres(conn), logger.Discard())
	ctx := context.Background()

	_, err := service.Subscribe(ctx, "a@example.com", "Ann")
	require.NoError(t, err)

	_, err = service.Subscribe(ctx, "a@example.com", "Ann2")
	assert.ErrorIs(t, err, domain.ErrDuplicateSubscriber)

	var rows []domain.Subscriber
	require.NoError(t, conn.Where("email = ?", "a@example.com").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ann", rows[0].Name)
}

func TestCreateTranslatesUniqueViolation(t *testing.T) {
	repo := NewPostgres(dbtest.New(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Subscriber{Email: "b@example.com", UnsubscribeToken: "token-1", IsActive: true}))
	err := repo.Create(ctx, &domain.Subscriber{Email: "b@example.com", UnsubscribeToken: "token-2", IsActive: true})
	assert.ErrorIs(t, err, domain.ErrDuplicateSubscriber)
}

func TestAudienceQueries(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewPostgres(conn)
	ctx := context.Background()

	for _, subscriber := range []domain.Subscriber{
		{Email: "all@example.com", UnsubscribeToken: "t1", IsActive: true, ReceiveWeeklyDigest: true, ReceiveNewFlanAlerts: true},
		{Email: "choco@example.com", UnsubscribeToken: "t2", IsActive: true, ReceiveNewFlanAlerts: true, FavoriteFlanType: flansdomain.FlanTypeChocolate},
		{Email: "gone@example.com", UnsubscribeToken: "t3", IsActive: false, ReceiveWeeklyDigest: true, ReceiveNewFlanAlerts: true},
		{Email: "digest@example.com", UnsubscribeToken: "t4", IsActive: true, ReceiveWeeklyDigest: true},
	} {
		subscriber := subscriber
		require.NoError(t, repo.Create(ctx, &subscriber))
	}

	digest, err := repo.ListActive(ctx, domain.AudienceFilter{WeeklyDigest: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"all@example.com", "digest@example.com"}, emails(digest))

	vanilla, err := repo.ListActive(ctx, domain.AudienceFilter{NewFlanAlert: true, AlertType: flansdomain.FlanTypeVanilla})
	require.NoError(t, err)
	assert.Equal(t, []string{"all@example.com"}, emails(vanilla))

	chocolate, err := repo.ListActive(ctx, domain.AudienceFilter{NewFlanAlert: true, AlertType: flansdomain.FlanTypeChocolate})
	require.NoError(t, err)
	assert.Equal(t, []string{"all@example.com", "choco@example.com"}, emails(chocolate))

	counts, err := repo.CountByPreference(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PreferenceCounts{WeeklyDigest: 3, NewFlanAlerts: 3, TotalActive: 3}, counts)
}

func TestUnsubscribeByToken(t *testing.T) {
	conn := dbtest.New(t)
	service := domain.NewService(NewPostgres(conn), logger.Discard())
	ctx := context.Background()

	created, err := service.Subscribe(ctx, "leaving@example.com", "")
	require.NoError(t, err)

	_, err = service.Unsubscribe(ctx, created.UnsubscribeToken)
	require.NoError(t, err)

	var stored domain.Subscriber
	require.NoError(t, conn.First(&stored, created.ID).Error)
	assert.False(t, stored.IsActive)
	assert.Empty(t, service.ListForDigest(ctx))
}

func TestEmailLogsAndCascade(t *testing.T) {
	conn := dbtest.New(t)
	repo := NewPostgres(conn)
	service := domain.NewService(repo, logger.Discard())
	ctx := context.Background()

	created, err := service.Subscribe(ctx, "logs@example.com", "")
	require.NoError(t, err)

	require.NoError(t, service.RecordDelivery(ctx, created.ID, "hello", nil))
	require.NoError(t, service.RecordDelivery(ctx, created.ID, "hello", errors.New("connection refused")))

	counts, err := repo.CountEmailLogs(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryCounts{Total: 2, Successful: 1, Failed: 1}, counts)

	require.NoError(t, conn.Delete(&domain.Subscriber{}, created.ID).Error)
	var remaining int64
	require.NoError(t, conn.Model(&domain.EmailLog{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func emails(subscribers []domain.Subscriber) []string {
	result := make([]string, 0, len(subscribers))
	for _, subscriber := range subscribers {
		result = append(result, subscriber.Email)
	}
	return result
}
