package vehicle

// Region labels attached by the built-in factories.
const (
	USSpec = "US Spec"
	EUSpec = "EU Spec"
)

// Factory builds vehicles carrying a fixed region label. Implementations are
// stateless; every call returns a fresh value.
type Factory interface {
	Region() string
	CreateCar(mk, model string) Vehicle
	CreateMotorcycle(mk, model string) Vehicle
}

// labelFactory is a Factory parameterised only by its label.
type labelFactory struct {
	label string
}

func (f labelFactory) Region() string { return f.label }

func (f labelFactory) CreateCar(mk, model string) Vehicle {
	return NewCar(mk, model, f.label)
}

func (f labelFactory) CreateMotorcycle(mk, model string) Vehicle {
	return NewMotorcycle(mk, model, f.label)
}

// USFactory builds vehicles labelled "US Spec".
type USFactory struct{ labelFactory }

// NewUSFactory returns the US region factory.
func NewUSFactory() USFactory { return USFactory{labelFactory{label: USSpec}} }

// EUFactory builds vehicles labelled "EU Spec".
type EUFactory struct{ labelFactory }

// NewEUFactory returns the EU region factory.
func NewEUFactory() EUFactory { return EUFactory{labelFactory{label: EUSpec}} }
