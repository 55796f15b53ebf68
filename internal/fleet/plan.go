package fleet

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/gopatterns/internal/ctxlog"
	"github.com/vk/gopatterns/internal/fsutil"
	"github.com/vk/gopatterns/internal/vehicle"
)

//go:embed default.hcl
var defaultPlan []byte

// DefaultPlanName is the filename reported in diagnostics for the embedded plan.
const DefaultPlanName = "default.hcl"

// Plan is an ordered list of factory batches.
type Plan struct {
	Batches []Batch
}

// Batch is the set of vehicles one factory builds.
type Batch struct {
	Region string
	Orders []Order
}

// Order describes a single vehicle to build.
type Order struct {
	Kind  vehicle.Kind
	Make  string
	Model string
}

// Only returns the batches whose region equals key (case-insensitive).
func (p Plan) Only(key string) Plan {
	var out Plan
	for _, b := range p.Batches {
		if strings.EqualFold(b.Region, key) {
			out.Batches = append(out.Batches, b)
		}
	}
	return out
}

// Len returns the number of vehicles the plan builds.
func (p Plan) Len() int {
	n := 0
	for _, b := range p.Batches {
		n += len(b.Orders)
	}
	return n
}

// fileRoot is the top-level shape of a plan file.
type fileRoot struct {
	Factories []*factoryBlock `hcl:"factory,block"`
}

type factoryBlock struct {
	Region string   `hcl:"region,label"`
	Body   hcl.Body `hcl:",remain"`
}

type orderBlock struct {
	Make  string `hcl:"make"`
	Model string `hcl:"model"`
}

// factorySchema keeps car and motorcycle blocks in one ordered list.
var factorySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: vehicle.KindCar.String()},
		{Type: vehicle.KindMotorcycle.String()},
	},
}

var functions = map[string]function.Function{
	"upper":     stdlib.UpperFunc,
	"lower":     stdlib.LowerFunc,
	"format":    stdlib.FormatFunc,
	"join":      stdlib.JoinFunc,
	"trimspace": stdlib.TrimSpaceFunc,
}

// DefaultPlan returns the built-in demo plan.
func DefaultPlan(ctx context.Context) (*Plan, error) {
	return Parse(ctx, DefaultPlanName, defaultPlan)
}

// Load reads the plan at path. A directory is loaded as one plan made of
// every .hcl file beneath it, in lexical file order.
func Load(ctx context.Context, path string) (*Plan, error) {
	files, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	plan := &Plan{}
	for _, file := range files {
		part, err := LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		plan.Batches = append(plan.Batches, part.Batches...)
	}
	return plan, nil
}

// LoadFile reads and parses the plan file at path.
func LoadFile(ctx context.Context, path string) (*Plan, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	return Parse(ctx, path, src)
}

// Parse decodes a plan from HCL source. filename is used in diagnostics only.
func Parse(ctx context.Context, filename string, src []byte) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing fleet plan.", "file", filename)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan %s: %w", filename, diags)
	}

	plan := &Plan{}
	for _, fb := range root.Factories {
		batch, err := decodeFactory(fb)
		if err != nil {
			return nil, fmt.Errorf("failed to decode plan %s: %w", filename, err)
		}
		plan.Batches = append(plan.Batches, batch)
	}

	logger.Debug("Fleet plan parsed.", "file", filename, "factories", len(plan.Batches), "vehicles", plan.Len())
	return plan, nil
}

func decodeFactory(fb *factoryBlock) (Batch, error) {
	content, diags := fb.Body.Content(factorySchema)
	if diags.HasErrors() {
		return Batch{}, diags
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"region": cty.StringVal(fb.Region)},
		Functions: functions,
	}

	batch := Batch{Region: fb.Region}
	for _, block := range content.Blocks {
		var ob orderBlock
		if diags := gohcl.DecodeBody(block.Body, evalCtx, &ob); diags.HasErrors() {
			return Batch{}, diags
		}
		kind := vehicle.KindCar
		if block.Type == vehicle.KindMotorcycle.String() {
			kind = vehicle.KindMotorcycle
		}
		batch.Orders = append(batch.Orders, Order{Kind: kind, Make: ob.Make, Model: ob.Model})
	}
	return batch, nil
}
