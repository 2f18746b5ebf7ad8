package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/transform"
)

const sampleDoc = `<root xmlns="http://example.com">
	<header>
		<ntitle>Sample Title</ntitle>
		<date>2025-03-13</date>
		<meta>
			<author>John Doe</author>
			<version>1.0</version>
		</meta>
	</header>
	<values>
		<price>100</price>
		<quantity>5</quantity>
		<details>
			<Name>Discount Details</Name>
			<currency>USD</currency>
			<discount>10%</discount>
		</details>
		<extra>
			<Name>Special Offer</Name>
			<Value>50% Off</Value>
		</extra>
	</values>
</root>`

func newSample(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(strings.NewReader(sampleDoc), "header", "values")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func dictAt(t *testing.T, d *kvtree.Dict, key string) *kvtree.Dict {
	t.Helper()
	v, ok := d.Get(key)
	if !ok {
		t.Fatalf("expected key %q, have %v", key, d.Keys())
	}
	sub, ok := v.(*kvtree.Dict)
	if !ok {
		t.Fatalf("expected %q to be a dict, got %T", key, v)
	}
	return sub
}

func stringAt(t *testing.T, d *kvtree.Dict, key string) string {
	t.Helper()
	v, ok := d.Get(key)
	if !ok {
		t.Fatalf("expected key %q, have %v", key, d.Keys())
	}
	s, ok := v.(kvtree.String)
	if !ok {
		t.Fatalf("expected %q to be a string, got %T", key, v)
	}
	return string(s)
}

func TestNew_DefaultParents(t *testing.T) {
	p, err := New(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Data().Has("header") || !p.Data().Has("values") {
		t.Errorf("expected default parents, got %v", p.Data().Keys())
	}
}

func TestNew_MalformedDocument(t *testing.T) {
	_, err := New(strings.NewReader("<root><broken></root>"))
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	p := newSample(t)
	p.RemoveKeys("meta")
	p.FlattenNestedKeys("", "")
	p.RenameKeys(map[string]string{
		"price":    "cost",
		"quantity": "amount",
		"discount": "rebate",
	}, transform.Capitalize)

	header := dictAt(t, p.Data(), "header")
	if header.Has("meta") {
		t.Error("expected meta to be removed from header")
	}
	if got := stringAt(t, header, "ntitle"); got != "Sample Title" {
		t.Errorf("expected untranslated key untouched, got %q", got)
	}

	values := dictAt(t, p.Data(), "values")
	if got := stringAt(t, values, "Cost"); got != "100" {
		t.Errorf("expected Cost=100, got %q", got)
	}
	if got := stringAt(t, values, "Amount"); got != "5" {
		t.Errorf("expected Amount=5, got %q", got)
	}
	if got := stringAt(t, values, "Special Offer"); got != "50% Off" {
		t.Errorf("expected Special Offer=50%% Off, got %q", got)
	}

	details := dictAt(t, values, "Discount Details")
	if got := stringAt(t, details, "currency"); got != "USD" {
		t.Errorf("expected currency=USD, got %q", got)
	}
	if got := stringAt(t, details, "Rebate"); got != "10%" {
		t.Errorf("expected Rebate=10%%, got %q", got)
	}
}

func TestPipeline_ApplyDemoPreset(t *testing.T) {
	p := newSample(t)
	p.Apply(config.DemoPreset())

	out, err := json.Marshal(p.Data())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"header":{"ntitle":"Sample Title","date":"2025-03-13"},` +
		`"values":{"Cost":"100","Amount":"5",` +
		`"Discount Details":{"currency":"USD","Rebate":"10%"},` +
		`"Special Offer":"50% Off"}}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestRun_PresetTableCaseNormalized(t *testing.T) {
	preset := config.Preset{
		Parents: []string{"values"},
		Rename: &config.RenameSpec{
			// Preset authors may spell table keys in any case.
			Table:  map[string]string{"Price": "cost"},
			Casing: "capitalize",
		},
	}
	data, err := Run(strings.NewReader(sampleDoc), preset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := dictAt(t, data, "values")
	if !values.Has("Cost") {
		t.Errorf("expected Cost key, got %v", values.Keys())
	}
}

func TestPipeline_TransformsMutateWholesale(t *testing.T) {
	p := newSample(t)
	before := p.Data()
	p.RemoveKeys("meta")
	if p.Data() == before {
		t.Error("expected working structure to be replaced, not shared")
	}
}
