package service

import (
	"io"
	"time"

	"ppocha-economy/internal/adapter/storage/memory"
	"ppocha-economy/internal/core/domain"

	"github.com/rs/zerolog"
)

var testNow = time.UnixMilli(1_750_000_000_000)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeRandom struct {
	n     int
	token string
}

func (r fakeRandom) Intn(int) int   { return r.n }
func (r fakeRandom) Token() string { return r.token }

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(map[string][]domain.SKU{
		"packages": {
			{ID: "starter_pack", Title: "Starter Pack", Price: 3300, PriceCurrency: "KRW"},
			{ID: "vip_month", Title: "VIP Month", Price: 11000, PriceCurrency: "KRW"},
		},
		"gold": {
			{ID: "gold_5000", Title: "Gold Bag", Price: 1200, PriceCurrency: "KRW", Amount: 5000},
		},
	})
}

type economyFixture struct {
	svc      *EconomyServiceImpl
	accounts *memory.Registry
	ledger   *memory.Ledger
	clock    *fakeClock
}

func newEconomyFixture() *economyFixture {
	clock := &fakeClock{now: testNow}
	accounts := memory.NewRegistry(clock)
	ledger := memory.NewLedger()
	svc := NewEconomyService(accounts, ledger, testCatalog(), clock,
		fakeRandom{n: 7, token: "abcd1234"}, newTestLogger())
	return &economyFixture{svc: svc, accounts: accounts, ledger: ledger, clock: clock}
}
