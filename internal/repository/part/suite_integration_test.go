//go:build integration

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/partsyard/internal/model"
	repository "github.com/you-humble/partsyard/internal/repository/part"
	tc "github.com/you-humble/partsyard/platform/testcontainers"
	tcmongo "github.com/you-humble/partsyard/platform/testcontainers/mongo"
	tcnetwork "github.com/you-humble/partsyard/platform/testcontainers/network"
)

const projectName = "partsyard_repository_it"

var (
	suiteCtx context.Context

	network *tcnetwork.Network
	mongoC  *tcmongo.Container
	coll    *mongo.Collection
)

func TestRepositoryIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Part Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	suiteCtx = context.Background()
	gofakeit.Seed(0)

	By("creating isolated docker network")
	var err error
	network, err = tcnetwork.New(suiteCtx, projectName)
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(suiteCtx,
		tcmongo.WithNetworkName(network.Name()),
		tcmongo.WithImageName(os.Getenv(tc.MongoImageNameKey)),
		tcmongo.WithDatabase(os.Getenv(tc.MongoDatabaseKey)),
		tcmongo.WithAuth(os.Getenv(tc.MongoUsernameKey), os.Getenv(tc.MongoPasswordKey)),
	)
	Expect(err).NotTo(HaveOccurred())

	coll = mongoC.Database().Collection("parts")
	Expect(repository.EnsureIndexes(suiteCtx, coll)).To(Succeed())
})

var _ = AfterSuite(func() {
	if mongoC != nil {
		Expect(mongoC.Terminate(suiteCtx)).To(Succeed())
	}
	if network != nil {
		Expect(network.Remove(suiteCtx)).To(Succeed())
	}
})

func newFakePart(vehicleMake string, year int, createdAt time.Time) *model.Part {
	in := model.PartInput{
		Name:         gofakeit.ProductName(),
		Category:     model.CategoryOther,
		VehicleYear:  year,
		VehicleMake:  vehicleMake,
		VehicleModel: gofakeit.CarModel(),
		Condition:    model.ConditionGood,
		PriceCents:   int64(gofakeit.Number(100, 500000)),
		Mileage:      lo.ToPtr(int64(gofakeit.Number(0, 300000))),
		YardLocation: "Row " + gofakeit.LetterN(1),
		Photos:       []string{},
		StockStatus:  model.StatusAvailable,
		AddedBy:      "Greg",
	}

	return &model.Part{
		ID:             gofakeit.UUID(),
		Name:           in.Name,
		Category:       in.Category,
		VehicleYear:    in.VehicleYear,
		VehicleMake:    in.VehicleMake,
		VehicleModel:   in.VehicleModel,
		Condition:      in.Condition,
		PriceCents:     in.PriceCents,
		Mileage:        in.Mileage,
		YardLocation:   in.YardLocation,
		Photos:         in.Photos,
		StockStatus:    in.StockStatus,
		AddedBy:        in.AddedBy,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
		SearchableText: model.BuildSearchableText(in),
	}
}

func cleanParts() {
	_, err := coll.DeleteMany(suiteCtx, bson.M{})
	Expect(err).NotTo(HaveOccurred())
}
