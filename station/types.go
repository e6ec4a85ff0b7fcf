package station

import (
	"errors"

	"github.com/aerocircuit/breitling/geo"
)

// Sentinel errors for the station package.
var (
	// ErrTooManyStations indicates N > MaxStations.
	ErrTooManyStations = errors.New("station: catalogue exceeds maximum supported stations")

	// ErrEmptyCatalogue indicates an empty station list was supplied.
	ErrEmptyCatalogue = errors.New("station: catalogue is empty")

	// ErrIndexOutOfRange indicates a departure/target index outside [0, N).
	ErrIndexOutOfRange = errors.New("station: index out of range")

	// ErrNonPositiveSpeed indicates CruiseSpeed <= 0.
	ErrNonPositiveSpeed = errors.New("station: cruise speed must be positive")

	// ErrNonPositiveFuelCapacity indicates FuelCapacity <= 0.
	ErrNonPositiveFuelCapacity = errors.New("station: fuel capacity must be positive")

	// ErrNonPositiveFuelBurnRate indicates FuelBurnRate <= 0.
	ErrNonPositiveFuelBurnRate = errors.New("station: fuel burn rate must be positive")

	// ErrNegativeRefuelTime indicates RefuelTime < 0.
	ErrNegativeRefuelTime = errors.New("station: refuel time must be non-negative")

	// ErrInvalidDayNightWindow indicates the day/night clock bounds violate
	// 0 <= DayStart < NightStart <= 24.
	ErrInvalidDayNightWindow = errors.New("station: invalid day/night window")

	// ErrEmptyRegion indicates a mandatory region has no member station.
	ErrEmptyRegion = errors.New("station: mandatory region has no members")
)

// MaxStations is the largest catalogue size the packed Label representation
// supports: current_station is a 9-bit field.
const MaxStations = 512

// NoTarget is the sentinel TargetStation value meaning "no fixed target".
const NoTarget = -1

// Station is one aerodrome of the catalogue. Immutable for the duration of a
// solve: Index is its stable position in [0, N).
type Station struct {
	Index int
	Location geo.Location
	Name string
	FuelCapable bool
	NightAccessible bool
}

// ProblemInstance is the immutable configuration of one solve: the station
// catalogue plus plane/route parameters.
type ProblemInstance struct {
	Stations []Station

	DepartureStation int
	TargetStation int // NoTarget if unset

	CruiseSpeed float64 // nm/h
	FuelCapacity float64 // units
	FuelBurnRate float64 // units/h
	RefuelTime float64 // hours
	DayStart float64 // hours, 0..24
	NightStart float64 // hours, 0..24
	DepartureTime float64 // hours

	regions Regions
}

// Option configures a ProblemInstance under construction.
type Option func(*ProblemInstance)

// WithTarget sets a fixed target station index.
func WithTarget(idx int) Option {
	return func(p *ProblemInstance) { p.TargetStation = idx }
}

// WithRegionPredicates overrides the default France region inequalities; see
// RegionPredicate in region.go for the predicate signature.
func WithRegionPredicates(preds [RegionCount]RegionPredicate) Option {
	return func(p *ProblemInstance) { p.regions.predicates = preds }
}

// DefaultOptions mirrors this module's DefaultOptions convention
// (tsp.DefaultOptions): a ProblemInstance pre-populated with the France region predicates and
// NoTarget, ready to be completed with WithXxx options and direct field
// assignment of the plane/route parameters.
func DefaultOptions() ProblemInstance {
	return ProblemInstance{
		TargetStation: NoTarget,
		regions: newRegions(defaultRegionPredicates),
	}
}

// New builds a validated ProblemInstance from a station catalogue, the
// required plane/route parameters, and any options. Returns ErrTooManyStations,
// ErrEmptyCatalogue, ErrIndexOutOfRange, ErrNonPositiveSpeed,
// ErrNonPositiveFuelCapacity, ErrNonPositiveFuelBurnRate,
// ErrNegativeRefuelTime, ErrInvalidDayNightWindow, or ErrEmptyRegion.
func New(stations []Station, departureStation int, cruiseSpeed, fuelCapacity, fuelBurnRate,
	refuelTime, dayStart, nightStart, departureTime float64, opts ...Option) (*ProblemInstance, error) {

	p := DefaultOptions()
	p.Stations = stations
	p.DepartureStation = departureStation
	p.CruiseSpeed = cruiseSpeed
	p.FuelCapacity = fuelCapacity
	p.FuelBurnRate = fuelBurnRate
	p.RefuelTime = refuelTime
	p.DayStart = dayStart
	p.NightStart = nightStart
	p.DepartureTime = departureTime

	for _, opt := range opts {
		opt(&p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *ProblemInstance) validate() error {
	n := len(p.Stations)
	if n == 0 {
		return ErrEmptyCatalogue
	}
	if n > MaxStations {
		return ErrTooManyStations
	}
	if p.DepartureStation < 0 || p.DepartureStation >= n {
		return ErrIndexOutOfRange
	}
	if p.TargetStation != NoTarget && (p.TargetStation < 0 || p.TargetStation >= n) {
		return ErrIndexOutOfRange
	}
	if p.CruiseSpeed <= 0 {
		return ErrNonPositiveSpeed
	}
	if p.FuelCapacity <= 0 {
		return ErrNonPositiveFuelCapacity
	}
	if p.FuelBurnRate <= 0 {
		return ErrNonPositiveFuelBurnRate
	}
	if p.RefuelTime < 0 {
		return ErrNegativeRefuelTime
	}
	if !(p.DayStart >= 0 && p.DayStart < p.NightStart && p.NightStart <= 24) {
		return ErrInvalidDayNightWindow
	}
	if err := p.regions.assignAll(p.Stations); err != nil {
		return err
	}
	return nil
}

// PlaneFuelTime returns FuelCapacity/FuelBurnRate, the plane's endurance
// expressed as a duration.
func (p *ProblemInstance) PlaneFuelTime() float64 {
	return p.FuelCapacity / p.FuelBurnRate
}

// TimeDistance returns the time-distance between two stations at this
// instance's cruise speed.
func (p *ProblemInstance) TimeDistance(a, b Station) float64 {
	return geo.GreatCircleNM(a.Location, b.Location) / p.CruiseSpeed
}

// IsNight reports whether elapsed time t is in the night window.
func (p *ProblemInstance) IsNight(t float64) bool {
	return geo.IsNight(t, p.DayStart, p.NightStart)
}

// Regions returns the computed region assignment for this instance's
// catalogue (valid after New/validate has run).
func (p *ProblemInstance) Regions() *Regions {
	return &p.regions
}
