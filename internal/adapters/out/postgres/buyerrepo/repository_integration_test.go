package buyerrepo_test

import (
	"testing"

	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/buyerrepo"
	"github.com/lax56237/Daily-Drop/internal/adapters/out/postgres/pgtest"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/buyer"
	"github.com/lax56237/Daily-Drop/internal/core/domain/model/kernel"
	"github.com/lax56237/Daily-Drop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

// BuyerRepositoryIntegrationTestSuite verifies buyer persistence against a real PostgreSQL.
type BuyerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *buyerrepo.GormBuyerRepository
}

func (suite *BuyerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(suite.T().Context())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *BuyerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = buyerrepo.NewGormBuyerRepository(suite.database.DB, tracker)
}

func (suite *BuyerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(suite.T().Context()))
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestSave_WithoutAddress_RestoresNilAddress() {
	ctx := suite.T().Context()

	b, err := buyer.NewBuyer(pgtest.MustEmail("asha@example.com"), "Asha")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, b))

	got, err := suite.repository.Get(ctx, b.Email())
	suite.Require().NoError(err)
	suite.Equal("Asha", got.Name())
	suite.Nil(got.Address())
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestSave_Twice_OverwritesAddress() {
	ctx := suite.T().Context()

	// Given
	b, err := buyer.NewBuyer(pgtest.MustEmail("asha@example.com"), "Asha")
	suite.Require().NoError(err)
	suite.Require().NoError(b.SaveAddress(pgtest.MustAddress()))
	suite.Require().NoError(suite.repository.Save(ctx, b))

	// When
	moved, err := kernel.NewAddress(kernel.AddressFields{
		Name: "Asha Rao", Phone: "9876543210", Pincode: "400001",
		Street: "7 Marine Drive", City: "Mumbai", State: "Maharashtra", Landmark: "Near the pier",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(b.SaveAddress(moved))
	suite.Require().NoError(suite.repository.Save(ctx, b))

	// Then
	got, err := suite.repository.Get(ctx, b.Email())
	suite.Require().NoError(err)
	suite.Require().NotNil(got.Address())
	suite.True(got.Address().IsEqual(moved))
	suite.Equal("Near the pier", got.Address().Landmark())
}

func (suite *BuyerRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), pgtest.MustEmail("nobody@example.com"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestBuyerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BuyerRepositoryIntegrationTestSuite))
}
