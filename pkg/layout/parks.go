package layout

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ditharaavindi/city-generator/pkg/config"
	"github.com/ditharaavindi/city-generator/pkg/geo"
	"github.com/ditharaavindi/city-generator/pkg/raster"
	"github.com/ditharaavindi/city-generator/pkg/validation"
)

const (
	// parkPlacementMargin is added to the park radius to keep candidate
	// centers away from the screen edges.
	parkPlacementMargin = 50

	// parkSpacingFactor scales the park radius into the minimum
	// center-to-center distance between two parks.
	parkSpacingFactor = 2.5

	// fountainClearance is the extra gap required between a park center
	// and the fountain beyond the two radii.
	fountainClearance = 30

	// parkAttemptsPerPark bounds the placement retry loop.
	parkAttemptsPerPark = 100
)

// Park is an unordered set of boundary points approximating a circle.
// Its effective center and radius are always derived from the boundary,
// never stored. The fountain uses the same representation.
type Park struct {
	Boundary []raster.Point `json:"boundary"`
}

// Circle returns the park's derived center and radius.
func (p Park) Circle() geo.Circle {
	return geo.DeriveCircle(p.Boundary)
}

// PlaceParks places up to cfg.NumParks non-overlapping circular parks and,
// when cfg.FountainRadius > 0, one fountain at the exact screen center.
//
// Candidate park centers are sampled uniformly inside the margin-inset
// screen and rejected when too close to an already placed park or to the
// reserved fountain zone. The retry budget is NumParks*100 attempts; when
// it runs out the shortfall is reported as a warning and the parks placed
// so far are returned. The fountain itself is never collision-checked.
func PlaceParks(cfg *config.Config, screenWidth, screenHeight int) ([]Park, *Park, *validation.Report) {
	report := validation.NewReport()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var parks []Park
	if cfg.NumParks > 0 {
		parks = placeParkCircles(cfg, rng, screenWidth, screenHeight)

		if len(parks) < cfg.NumParks {
			report.AddWarning(validation.Result{
				Stage: validation.StageSpatial,
				Message: fmt.Sprintf("placed only %d of %d parks before exhausting %d attempts",
					len(parks), cfg.NumParks, cfg.NumParks*parkAttemptsPerPark),
				Field:       "num_parks",
				ActualValue: len(parks),
				Expected:    fmt.Sprintf("%d", cfg.NumParks),
			})
		} else {
			report.AddInfo(validation.Result{
				Stage:   validation.StageSpatial,
				Message: fmt.Sprintf("placed %d parks with radius %d", len(parks), cfg.ParkRadius),
			})
		}
	}

	var fountain *Park
	if cfg.FountainRadius > 0 {
		fountain = &Park{Boundary: raster.Circle(screenWidth/2, screenHeight/2, cfg.FountainRadius)}
		report.AddInfo(validation.Result{
			Stage: validation.StageSpatial,
			Message: fmt.Sprintf("placed central fountain at (%d, %d) with radius %d",
				screenWidth/2, screenHeight/2, cfg.FountainRadius),
		})
	}

	return parks, fountain, report
}

func placeParkCircles(cfg *config.Config, rng *rand.Rand, screenWidth, screenHeight int) []Park {
	var parks []Park

	margin := cfg.ParkRadius + parkPlacementMargin
	if screenWidth-2*margin <= 0 || screenHeight-2*margin <= 0 {
		return parks
	}

	center := geo.Pt(float64(screenWidth)/2, float64(screenHeight)/2)
	minParkDist := parkSpacingFactor * float64(cfg.ParkRadius)
	minFountainDist := float64(cfg.ParkRadius+cfg.FountainRadius) + fountainClearance

	maxAttempts := cfg.NumParks * parkAttemptsPerPark
	for attempts := 0; attempts < maxAttempts && len(parks) < cfg.NumParks; attempts++ {
		x := margin + rng.Intn(screenWidth-2*margin+1)
		y := margin + rng.Intn(screenHeight-2*margin+1)
		candidate := geo.Pt(float64(x), float64(y))

		valid := true
		for _, existing := range parks {
			if candidate.Distance(existing.Circle().Center) < minParkDist {
				valid = false
				break
			}
		}

		if valid && cfg.FountainRadius > 0 && candidate.Distance(center) < minFountainDist {
			valid = false
		}

		if valid {
			parks = append(parks, Park{Boundary: raster.Circle(x, y, cfg.ParkRadius)})
		}
	}

	return parks
}
