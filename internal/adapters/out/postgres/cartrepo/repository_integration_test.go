package cartrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type CartSessionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartSessionRepository
}

func (suite *CartSessionRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *CartSessionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(pgtest.Truncate).Error)
	suite.repository = cartrepo.NewGormCartSessionRepository(suite.db)
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestSave_And_Get_KeepsLineOrder() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	session := suite.newSession(now)
	session = session.Add(suite.line("p-2", 200), now)
	session = session.Add(suite.line("p-1", 100), now)
	session = session.Add(suite.line("p-2", 200), now)

	suite.Require().NoError(suite.repository.Save(ctx, session))

	got, err := suite.repository.Get(ctx, session.ID())
	suite.Require().NoError(err)
	lines := got.Snapshot().Lines()
	suite.Require().Len(lines, 2)
	suite.Equal("p-2", lines[0].ProductID())
	suite.Equal(2, lines[0].Quantity())
	suite.Equal("p-1", lines[1].ProductID())
	suite.True(now.Equal(got.TouchedAt()))
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestSave_ReplacesLines() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	session := suite.newSession(now).Add(suite.line("p-1", 100), now)
	suite.Require().NoError(suite.repository.Save(ctx, session))

	session = session.Remove("p-1", now.Add(time.Minute))
	suite.Require().NoError(suite.repository.Save(ctx, session))

	got, err := suite.repository.Get(ctx, session.ID())
	suite.Require().NoError(err)
	suite.True(got.Snapshot().IsEmpty())
	suite.True(now.Add(time.Minute).Equal(got.TouchedAt()))
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	session := suite.newSession(time.Now()).Add(suite.line("p-1", 100), time.Now())
	suite.Require().NoError(suite.repository.Save(ctx, session))

	suite.Require().NoError(suite.repository.Delete(ctx, session.ID()))
	suite.Require().NoError(suite.repository.Delete(ctx, session.ID()))

	_, err := suite.repository.Get(ctx, session.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestDeleteIdleSince() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	stale := suite.newSession(now.Add(-48*time.Hour)).Add(suite.line("p-1", 100), now.Add(-48*time.Hour))
	fresh := suite.newSession(now)
	suite.Require().NoError(suite.repository.Save(ctx, stale))
	suite.Require().NoError(suite.repository.Save(ctx, fresh))

	removed, err := suite.repository.DeleteIdleSince(ctx, now.Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	_, err = suite.repository.Get(ctx, stale.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestOpen_StoresFreshSessionOnce() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	owned := suite.newSession(now).Add(suite.line("p-1", 100), now)
	suite.Require().NoError(suite.repository.Save(ctx, owned))

	intruder, err := cart.NewSession(owned.ID(), kernel.NewUUID(), now.Add(time.Hour))
	suite.Require().NoError(err)

	got, err := suite.repository.Open(ctx, intruder)

	suite.Require().NoError(err)
	suite.Equal(owned.CustomerID(), got.CustomerID())
	suite.Equal(1, got.Snapshot().Len())
	suite.True(now.Equal(got.TouchedAt()))

	fresh := suite.newSession(now)
	got, err = suite.repository.Open(ctx, fresh)
	suite.Require().NoError(err)
	suite.Equal(fresh.CustomerID(), got.CustomerID())
	suite.True(got.Snapshot().IsEmpty())
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestOpen_ConcurrentAddsKeepEveryIncrement() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	fresh := suite.newSession(now)
	burger := suite.line("p-1", 100)

	const writers = 8
	results := make([]error, writers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = suite.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				repo := cartrepo.NewGormCartSessionRepository(tx)
				session, err := repo.Open(ctx, fresh)
				if err != nil {
					return err
				}
				return repo.Save(ctx, session.Add(burger, now))
			})
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range results {
		suite.Require().NoError(err)
	}
	got, err := suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
	line, ok := got.Snapshot().Line("p-1")
	suite.Require().True(ok)
	suite.Equal(writers, line.Quantity())
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestGetForUpdate_ConcurrentRemovesAndAdds() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	session := suite.newSession(now).Add(suite.line("p-1", 100), now)
	suite.Require().NoError(suite.repository.Save(ctx, session))
	fries := suite.line("p-2", 50)

	mutations := []func(cart.Session) cart.Session{
		func(s cart.Session) cart.Session { return s.Remove("p-1", now) },
		func(s cart.Session) cart.Session { return s.Add(fries, now) },
	}
	results := make([]error, len(mutations))
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i, mutate := range mutations {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = suite.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				repo := cartrepo.NewGormCartSessionRepository(tx)
				locked, err := repo.GetForUpdate(ctx, session.ID())
				if err != nil {
					return err
				}
				return repo.Save(ctx, mutate(locked))
			})
		}()
	}
	close(start)
	wg.Wait()

	for _, err := range results {
		suite.Require().NoError(err)
	}
	got, err := suite.repository.Get(ctx, session.ID())
	suite.Require().NoError(err)
	suite.Equal(1, got.Snapshot().Len())
	_, ok := got.Snapshot().Line("p-2")
	suite.True(ok)
}

func (suite *CartSessionRepositoryIntegrationTestSuite) TestGetForUpdate_MissingSession() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartSessionRepositoryIntegrationTestSuite) newSession(now time.Time) cart.Session {
	session, err := cart.NewSession(kernel.NewUUID(), kernel.NewUUID(), now)
	suite.Require().NoError(err)
	return session
}

func (suite *CartSessionRepositoryIntegrationTestSuite) line(productID string, price int64) cart.Line {
	unitPrice, err := kernel.NewMoney(price)
	suite.Require().NoError(err)
	l, err := cart.NewLine(productID, "item "+productID, unitPrice)
	suite.Require().NoError(err)
	return l
}

func TestCartSessionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartSessionRepositoryIntegrationTestSuite))
}
