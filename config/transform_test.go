package config

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"go.viam.com/utils"
)

type wrapAttrs struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Ticks float64 `json:"ticks_per_rotation"`
}

type motorAttrs struct {
	MaxPercentOutput float64    `json:"max_percent_output"`
	Inverted         bool       `json:"inverted,omitempty"`
	Wrap             *wrapAttrs `json:"position_wrap,omitempty"`
}

func (cfg *motorAttrs) Validate(path string) error {
	if cfg.MaxPercentOutput <= 0 {
		return utils.NewConfigValidationFieldRequiredError(path, "max_percent_output")
	}
	return nil
}

func TestTransformAttributeMapToStruct(t *testing.T) {
	attrs := AttributeMap{
		"max_percent_output": 0.8,
		"inverted":           true,
		"position_wrap": map[string]interface{}{
			"min":                0.0,
			"max":                360.0,
			"ticks_per_rotation": 2048.0,
		},
	}

	t.Run("into a struct", func(t *testing.T) {
		out, err := TransformAttributeMapToStruct[motorAttrs](attrs)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out.MaxPercentOutput, test.ShouldEqual, 0.8)
		test.That(t, out.Inverted, test.ShouldBeTrue)
		test.That(t, out.Wrap, test.ShouldResemble, &wrapAttrs{Min: 0, Max: 360, Ticks: 2048})
	})

	t.Run("into a pointer", func(t *testing.T) {
		out, err := TransformAttributeMapToStruct[*motorAttrs](attrs)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldNotBeNil)
		test.That(t, out.Wrap.Ticks, test.ShouldEqual, 2048.0)
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := TransformAttributeMapToStruct[motorAttrs](AttributeMap{
			"max_percent_output": 0.5,
			"zeta":               1,
			"alpha":              2,
		})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "unknown attributes: alpha, zeta")
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := TransformAttributeMapToStruct[motorAttrs](AttributeMap{"inverted": "yes"})
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestDecodeAttributes(t *testing.T) {
	out, err := DecodeAttributes[motorAttrs]("components.0", AttributeMap{"max_percent_output": 1.0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.MaxPercentOutput, test.ShouldEqual, 1.0)

	_, err = DecodeAttributes[motorAttrs]("components.0", AttributeMap{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "components.0": "max_percent_output" is required`)

	_, err = DecodeAttributes[*motorAttrs]("components.1", AttributeMap{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"max_percent_output" is required`)

	_, err = DecodeAttributes[motorAttrs]("components.2", AttributeMap{"nope": 1})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "components.2"`)
	test.That(t, errors.Cause(err).Error(), test.ShouldContainSubstring, "unknown attributes: nope")
}
