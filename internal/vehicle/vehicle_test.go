package vehicle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gopatterns/internal/testutil"
)

func TestFactories_AttachRegionLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		factory Factory
		label   string
	}{
		{name: "us", factory: NewUSFactory(), label: USSpec},
		{name: "eu", factory: NewEUFactory(), label: EUSpec},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			car := tc.factory.CreateCar("Make", "Model")
			assert.Equal(t, tc.label, car.RegionSpec())
			assert.Equal(t, KindCar, car.Kind())
			assert.IsType(t, Car{}, car)

			moto := tc.factory.CreateMotorcycle("Make", "Model")
			assert.Equal(t, tc.label, moto.RegionSpec())
			assert.Equal(t, KindMotorcycle, moto.Kind())
			assert.IsType(t, Motorcycle{}, moto)

			assert.Equal(t, tc.label, tc.factory.Region())
		})
	}
}

func TestFactories_KnownScenario(t *testing.T) {
	t.Parallel()

	car := NewUSFactory().CreateCar("Ford", "Mustang")
	assert.Equal(t, "Ford", car.Make())
	assert.Equal(t, "Mustang", car.Model())
	assert.Equal(t, "US Spec", car.RegionSpec())

	moto := NewEUFactory().CreateMotorcycle("BMW", "R1200")
	assert.Equal(t, "EU Spec", moto.RegionSpec())
	assert.Equal(t, "BMW R1200 (EU Spec): Мотор заведено", moto.Message())
}

func TestStartEngine_LogsMessage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, buf := testutil.NewTestContext(t)
	car := NewCar("Ford", "Mustang", USSpec)

	// --- Act ---
	car.StartEngine(ctx)

	// --- Assert ---
	records := testutil.Records(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "Ford Mustang (US Spec): Двигун запущено", records[0].Msg())
	assert.Equal(t, "INFO", records[0].Attr("level"))
	assert.Equal(t, "Ford", records[0].Attr("make"))
	assert.Equal(t, "Mustang", records[0].Attr("model"))
	assert.Equal(t, USSpec, records[0].Attr("region"))
	assert.Equal(t, "car", records[0].Attr("kind"))
}

func TestStartEngine_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, buf := testutil.NewTestContext(t)
	moto := NewMotorcycle("Harley-Davidson", "Sportster", USSpec)
	before := moto

	moto.StartEngine(ctx)
	moto.StartEngine(ctx)

	assert.Equal(t, before, moto)
	msgs := testutil.InfoMessages(t, buf)
	require.Len(t, msgs, 2)
	assert.Equal(t, msgs[0], msgs[1])
	assert.Equal(t, "Harley-Davidson Sportster (US Spec): Мотор заведено", msgs[0])
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "car", KindCar.String())
	assert.Equal(t, "motorcycle", KindMotorcycle.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestNewCar_AcceptsAnyText(t *testing.T) {
	t.Parallel()

	car := NewCar("", "", "")
	assert.Equal(t, "  (): Двигун запущено", car.Message())
}
