package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopylabs/eks-observability/intrinsics"
)

type testResource struct {
	Name        string
	Count       int
	Enabled     bool
	Tags        []any
	Nested      testNested
	Type_       string `json:"Type"`
	hidden      string
	SkipMe      string `json:"-"`
	MaybeNested *testNested
}

type testNested struct {
	Value string
}

func TestProperties_OmitsZeroValues(t *testing.T) {
	props, err := Properties(testResource{Name: "demo"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Name": "demo"}, props)
}

func TestProperties_JSONTagOverridesFieldName(t *testing.T) {
	props, err := Properties(testResource{Type_: "api"})
	require.NoError(t, err)

	assert.Equal(t, "api", props["Type"])
	assert.NotContains(t, props, "Type_")
}

func TestProperties_SkipsDashTagAndUnexported(t *testing.T) {
	props, err := Properties(testResource{SkipMe: "x", hidden: "y", Name: "demo"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Name": "demo"}, props)
}

func TestProperties_NestedStruct(t *testing.T) {
	props, err := Properties(testResource{
		Name:   "demo",
		Nested: testNested{Value: "inner"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Value": "inner"}, props["Nested"])
}

func TestProperties_PointerToStruct(t *testing.T) {
	props, err := Properties(testResource{
		MaybeNested: &testNested{Value: "inner"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Value": "inner"}, props["MaybeNested"])
}

func TestProperties_IntrinsicsBecomeMaps(t *testing.T) {
	props, err := Properties(struct {
		VpcId intrinsics.Ref
		Arn   intrinsics.GetAtt
	}{
		VpcId: intrinsics.Ref{LogicalName: "Vpc"},
		Arn:   intrinsics.GetAtt{LogicalName: "Cluster", Attribute: "Arn"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Ref": "Vpc"}, props["VpcId"])
	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Cluster", "Arn"}}, props["Arn"])
}

func TestProperties_IntrinsicsInsideSlices(t *testing.T) {
	props, err := Properties(struct {
		SubnetIds []any
	}{
		SubnetIds: []any{
			intrinsics.Ref{LogicalName: "SubnetA"},
			intrinsics.Ref{LogicalName: "SubnetB"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"Ref": "SubnetA"},
		map[string]any{"Ref": "SubnetB"},
	}, props["SubnetIds"])
}

func TestProperties_ScalarsKept(t *testing.T) {
	props, err := Properties(testResource{
		Name:    "demo",
		Count:   3,
		Enabled: true,
		Tags:    []any{"a"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), props["Count"])
	assert.Equal(t, true, props["Enabled"])
	assert.Equal(t, []any{"a"}, props["Tags"])
}

func TestValue_SerializesIntrinsic(t *testing.T) {
	out, err := Value(intrinsics.GetAtt{LogicalName: "Workspace", Attribute: "Arn"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Fn::GetAtt": []any{"Workspace", "Arn"}}, out)
}

func TestValue_Nil(t *testing.T) {
	out, err := Value(nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}
