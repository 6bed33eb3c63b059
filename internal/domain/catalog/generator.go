// internal/domain/catalog/generator.go
package catalog

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sample data ranges
const (
	minStock       = 5
	maxStock       = 100
	minRatingTenth = 10 // 1.0 stars
	maxRatingTenth = 50 // 5.0 stars
	maxReviews     = 500
	maxAgeDays     = 90
)

// priceBand is an inclusive range of prices in centavos
type priceBand struct {
	min, max int64
}

var priceBands = []priceBand{
	{min: 1000, max: 9999},    // tens
	{min: 10000, max: 99999},  // hundreds
	{min: 90000, max: 100000}, // near 1000
}

type samplePool struct {
	names  []string
	brands []string
}

var samplePools = map[Category]samplePool{
	Food: {
		names:  []string{"Chicken Kibble", "Salmon Pate", "Puppy Formula", "Senior Dog Chow", "Kitten Milk Replacer", "Tuna Treats"},
		brands: []string{"Pedigree", "Whiskas", "Royal Canin", "Purina", "Holistic Select"},
	},
	Utilities: {
		names:  []string{"Litter Box", "Water Fountain", "Orthopedic Pet Bed", "Grooming Brush", "Poop Bags", "Travel Carrier"},
		brands: []string{"PetSafe", "Catit", "Trixie", "Ferplast", "Petmate"},
	},
	Accessories: {
		names:  []string{"Leather Collar", "Retractable Leash", "Rubber Chew Toy", "Bandana", "Cat Tunnel", "Engraved ID Tag"},
		brands: []string{"Kong", "Ruffwear", "Nylabone", "Chuckit!", "Doggo Threads"},
	},
	Healthcare: {
		names:  []string{"Flea & Tick Drops", "Dewormer Tablets", "Multivitamin Chews", "Ear Cleaner", "Dental Spray", "Joint Supplement"},
		brands: []string{"Frontline", "Bayer", "Virbac", "Zoetis", "Nutri-Vet"},
	},
}

// Generator produces sample inventory from a seeded PRNG, so the same seed
// always yields the same items, IDs included.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator. A zero seed seeds from the clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		now: time.Now,
	}
}

// Generate creates n items in category c
func (g *Generator) Generate(c Category, n int) []Item {
	pool, ok := samplePools[c]
	if !ok || n <= 0 {
		return nil
	}

	now := g.now().UTC()
	items := make([]Item, 0, n)
	for range n {
		items = append(items, Item{
			ID:           g.newID(),
			Name:         pool.names[g.rng.IntN(len(pool.names))],
			Category:     c,
			Brand:        pool.brands[g.rng.IntN(len(pool.brands))],
			Price:        g.price(),
			Stock:        minStock + g.rng.IntN(maxStock-minStock+1),
			Rating:       float64(minRatingTenth+g.rng.IntN(maxRatingTenth-minRatingTenth+1)) / 10,
			ReviewCount:  g.rng.IntN(maxReviews + 1),
			FreeShipping: g.rng.IntN(2) == 0,
			CreatedAt:    now.AddDate(0, 0, -g.rng.IntN(maxAgeDays)),
		})
	}
	return items
}

func (g *Generator) price() decimal.Decimal {
	band := priceBands[g.rng.IntN(len(priceBands))]
	cents := band.min + g.rng.Int64N(band.max-band.min+1)
	return decimal.New(cents, -2)
}

func (g *Generator) newID() ItemID {
	return uuid.Must(uuid.NewRandomFromReader(rngReader{g.rng}))
}

// rngReader exposes the generator's PRNG as an io.Reader for uuid
type rngReader struct {
	rng *rand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.Uint32())
	}
	return len(p), nil
}
