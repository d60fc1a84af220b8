package property

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/coreloop/resdepot/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DecodeInto populates the exported fields of target from the list using
// reflection. Fields opt in with a `prop:"name"` tag; appending ",optional"
// tolerates a missing property and leaves the field's current value alone.
// Stored values pass through cty's conversion rules on the way out, so an
// int property can fill a float64 field and a number can fill a string
// field wherever cty permits the conversion.
func DecodeInto(ctx context.Context, props List, target any) error {
	logger := ctxlog.FromContext(ctx)

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil struct pointer, got %T", target)
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)

		tag := field.Tag.Get("prop")
		if tag == "" || tag == "-" {
			continue
		}
		if !fieldVal.CanSet() {
			return fmt.Errorf("prop tag on unexported field %s", field.Name)
		}

		parts := strings.Split(tag, ",")
		name := parts[0]
		optional := len(parts) > 1 && parts[1] == "optional"

		p, ok := props.Get(name)
		if !ok {
			if optional {
				continue
			}
			return fmt.Errorf("missing required property %q", name)
		}

		if err := decodeValue(p.val, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		logger.Debug("Decoded property into field.", "property", name, "field", field.Name)
	}
	return nil
}

// decodeValue converts a stored cty.Value into the Go value behind goVal.
func decodeValue(val cty.Value, goVal any) error {
	target := reflect.ValueOf(goVal)

	impliedType, err := gocty.ImpliedType(target.Elem().Interface())
	if err != nil {
		// No implied type for this Go type, let gocty try directly.
		return gocty.FromCtyValue(val, goVal)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, goVal)
}
