package eksobservability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_MarshalJSON(t *testing.T) {
	tmpl := Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              "test",
		Resources: map[string]ResourceDef{
			"Vpc": {
				Type:       "AWS::EC2::VPC",
				Properties: map[string]any{"CidrBlock": "10.0.0.0/16"},
			},
		},
	}

	data, err := json.Marshal(tmpl)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"AWSTemplateFormatVersion": "2010-09-09",
		"Description": "test",
		"Resources": {
			"Vpc": {
				"Type": "AWS::EC2::VPC",
				"Properties": {"CidrBlock": "10.0.0.0/16"}
			}
		}
	}`, string(data))
}

func TestTemplate_OmitsEmptyOutputs(t *testing.T) {
	tmpl := Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources:                map[string]ResourceDef{},
	}

	data, err := json.Marshal(tmpl)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Outputs")
	assert.NotContains(t, string(data), "Description")
}

func TestResourceDef_DependsOnEmittedWhenSet(t *testing.T) {
	def := ResourceDef{
		Type:      "AWS::EC2::EIP",
		DependsOn: []string{"VpcGatewayAttachment"},
	}

	data, err := json.Marshal(def)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"AWS::EC2::EIP","DependsOn":["VpcGatewayAttachment"]}`, string(data))
}

func TestOutput_ExportOmittedWhenNil(t *testing.T) {
	out := Output{Description: "test", Value: "v"}

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Export")
}
