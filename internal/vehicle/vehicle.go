package vehicle

import (
	"context"
	"fmt"

	"github.com/vk/gopatterns/internal/ctxlog"
)

// Kind identifies a vehicle variant.
type Kind int

const (
	KindCar Kind = iota
	KindMotorcycle
)

// String returns the lowercase name used in logs and plan files.
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindMotorcycle:
		return "motorcycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Verb phrases logged when an engine starts.
const (
	CarStarted        = "Двигун запущено"
	MotorcycleStarted = "Мотор заведено"
)

// Vehicle is a constructed, immutable vehicle that can start its engine.
type Vehicle interface {
	Make() string
	Model() string
	RegionSpec() string
	Kind() Kind
	// Message is the line StartEngine logs.
	Message() string
	StartEngine(ctx context.Context)
}

// spec holds the fields shared by every variant.
type spec struct {
	make       string
	model      string
	regionSpec string
}

func (s spec) Make() string       { return s.make }
func (s spec) Model() string      { return s.model }
func (s spec) RegionSpec() string { return s.regionSpec }

func (s spec) line(verb string) string {
	return fmt.Sprintf("%s %s (%s): %s", s.make, s.model, s.regionSpec, verb)
}

func (s spec) log(ctx context.Context, kind Kind, msg string) {
	ctxlog.FromContext(ctx).Info(msg,
		"make", s.make,
		"model", s.model,
		"region", s.regionSpec,
		"kind", kind.String(),
	)
}

// Car is the four-wheeled variant.
type Car struct{ spec }

// NewCar builds a Car. Any text is accepted.
func NewCar(mk, model, regionSpec string) Car {
	return Car{spec{make: mk, model: model, regionSpec: regionSpec}}
}

func (Car) Kind() Kind        { return KindCar }
func (c Car) Message() string { return c.line(CarStarted) }
func (c Car) StartEngine(ctx context.Context) {
	c.log(ctx, KindCar, c.Message())
}

// Motorcycle is the two-wheeled variant.
type Motorcycle struct{ spec }

// NewMotorcycle builds a Motorcycle. Any text is accepted.
func NewMotorcycle(mk, model, regionSpec string) Motorcycle {
	return Motorcycle{spec{make: mk, model: model, regionSpec: regionSpec}}
}

func (Motorcycle) Kind() Kind        { return KindMotorcycle }
func (m Motorcycle) Message() string { return m.line(MotorcycleStarted) }
func (m Motorcycle) StartEngine(ctx context.Context) {
	m.log(ctx, KindMotorcycle, m.Message())
}
