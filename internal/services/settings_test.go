package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/models"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/services"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store"
	"github.com/rlc-community-providers/rlc-hpalm-provider/internal/store/migrations"
)

var _ = Describe("SettingsService", func() {
	var (
		ctx     context.Context
		db      *sql.DB
		service *services.SettingsService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())
		Expect(migrations.Run(ctx, db)).To(Succeed())
		service = services.NewSettingsService(store.NewStore(db))
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given no saved settings
	// When we get the settings
	// Then the defaults are returned instead of an error
	It("should return defaults when nothing is saved", func() {
		// Act
		settings, err := service.Get(ctx)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(settings.StatusFilters).To(Equal(models.DefaultStatusFilters))
		Expect(settings.ResultLimit).To(Equal("300"))
	})

	// Given saved settings
	// When we get the settings
	// Then the saved values come back
	It("should round-trip saved settings", func() {
		// Arrange
		Expect(service.Save(ctx, &models.Settings{StatusFilters: "New,Open", ResultLimit: "42"})).To(Succeed())

		// Act
		settings, err := service.Get(ctx)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(settings.StatusFilters).To(Equal("New,Open"))
		Expect(settings.ResultLimit).To(Equal("42"))
	})

	// Given a free-text result limit
	// When we save it
	// Then it is accepted verbatim
	It("should accept a free-text result limit", func() {
		Expect(service.Save(ctx, &models.Settings{StatusFilters: "New", ResultLimit: "unlimited"})).To(Succeed())

		settings, err := service.Get(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(settings.ResultLimit).To(Equal("unlimited"))
	})
})
