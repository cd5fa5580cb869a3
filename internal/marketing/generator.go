package marketing

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Generation ranges. Upper bounds are exclusive.
const (
	DefaultWindowDays = 30

	minUsers       = 200
	usersSpan      = 500
	minConvRate    = 0.05
	convRateSpan   = 0.15
	minOrderAmount = 25.0
	orderSpan      = 50.0
)

// GeneratorOptions configures the synthetic dataset.
type GeneratorOptions struct {
	Days      int
	Campaigns []Campaign
	// Seed feeds NewSeededRand when Rand is nil. A non-zero seed also makes the
	// dataset ID stable for the day, so processes sharing a seed share cache keys.
	Seed uint64
	Rand *rand.Rand
	Now  func() time.Time
}

// Generator synthesizes the trailing window of raw records.
type Generator struct {
	days      int
	campaigns []Campaign
	seed      uint64
	rng       *rand.Rand
	now       func() time.Time
}

// NewGenerator applies defaults to opts.
func NewGenerator(opts GeneratorOptions) *Generator {
	g := &Generator{
		days:      opts.Days,
		campaigns: opts.Campaigns,
		seed:      opts.Seed,
		rng:       opts.Rand,
		now:       opts.Now,
	}
	if g.days <= 0 {
		g.days = DefaultWindowDays
	}
	if len(g.campaigns) == 0 {
		g.campaigns = DefaultCampaigns
	}
	if g.rng == nil {
		g.rng = NewSeededRand(g.seed)
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// NewSeededRand returns a PCG-backed source. A zero seed is replaced with the clock.
func NewSeededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rand exposes the generator's source so downstream synthetic metrics share it.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// Generate produces a new Dataset covering the window that ends today.
func (g *Generator) Generate() Dataset {
	now := g.now()
	return NewDataset(g.datasetID(now), now.UTC(), g.campaigns, g.Records(now))
}

func (g *Generator) datasetID(now time.Time) string {
	if g.seed == 0 {
		return uuid.NewString()
	}
	name := fmt.Sprintf("insights:%d:%d:%s:%v", g.seed, g.days, NewDate(now), g.campaigns)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Records draws one record per day per campaign, oldest day first.
func (g *Generator) Records(now time.Time) []RawRecord {
	today := NewDate(now)
	start := today.AddDate(0, 0, -(g.days - 1))
	records := make([]RawRecord, 0, g.days*len(g.campaigns))
	for i := 0; i < g.days; i++ {
		day := NewDate(start.AddDate(0, 0, i))
		for _, campaign := range g.campaigns {
			records = append(records, g.draw(day, campaign))
		}
	}
	return records
}

func (g *Generator) draw(day Date, campaign Campaign) RawRecord {
	users := int64(minUsers + g.rng.IntN(usersSpan))
	rate := minConvRate + g.rng.Float64()*convRateSpan
	conversions := int64(math.Floor(float64(users) * rate))
	amount := minOrderAmount + g.rng.Float64()*orderSpan
	revenue := int64(math.Floor(float64(conversions) * amount))
	return RawRecord{
		Date:        day,
		Campaign:    campaign,
		Users:       users,
		Conversions: conversions,
		Revenue:     revenue,
	}
}
