package optparse

import (
	"errors"
	"flag"
	"fmt"
	"reflect"
)

// SpecsFromStruct builds specs with targets pointing to the fields of the struct `p` points to.
// Fields are described with tags:
//   - `opt:"name,n"`: an option with long name and/or one-character alias.
//     The kind is inferred from the field type: bool is KindBool, int is KindAccumulator
//     (KindSwitch if `optSwitch` is set), string is KindValue, flag.Value is KindValue
//     (KindBool if it has IsBoolFlag() returning true). `optKind` overrides it.
//   - `optArg:"name"`: a positional argument (string or flag.Value)
//   - `optArgs:"name"`: the remaining positional arguments ([]string or flag.Value)
//   - `optPrefix:"prefix-"`: a nested struct, its options names are prefixed
//
// Other tags: `optSwitch`, `optUsage` (help), `optValue` (value name),
// `optRequired`, `optChoice`, `optStop`, `optOptional`, `optHidden`.
// Specs are ordered as fields are.
func SpecsFromStruct(p any) (Specs, error) {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return nil, err
	}
	return collectFieldsSpecsRecursive(structValue, "", "")
}

// collectFieldsSpecsRecursive collects specs for all tagged fields of the given struct including nested
// structs. It validates the types of the fields and their tags and returns an error if any of them
// is invalid.
func collectFieldsSpecsRecursive(
	structValue reflect.Value,
	parentPrefix string,
	parentFieldName string,
) (res Specs, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		fieldName := getFieldName(parentFieldName, field.Name)
		role, common, err := getFieldRole(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, fieldName, err)
		}
		if role == nil {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s": tagged field is not exported`, fieldName)
		}
		fieldSpecs, err := collectFieldSpecs(structValue.Field(i), fieldName, parentPrefix, role, common)
		if err != nil {
			return nil, err
		}
		res = append(res, fieldSpecs...)
	}
	return res, nil
}

func collectFieldSpecs(
	fieldValue reflect.Value,
	fieldName string,
	parentPrefix string,
	role fieldRole,
	common commonTags,
) (res Specs, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf(`field "%s" tagged with "%s": %w`, fieldName, role.getRoleTagName(), err)
		}
	}()

	switch role := role.(type) {
	case nestedStructRole:
		if fieldValue.Kind() != reflect.Struct {
			return nil, fmt.Errorf("struct expected, got %s", fieldValue.Type())
		}
		return collectFieldsSpecsRecursive(fieldValue, parentPrefix+role.prefix, fieldName)

	case positionalRole:
		target, err := getPositionalTarget(fieldValue, role.kind)
		if err != nil {
			return nil, err
		}
		name := role.name
		if name == "" {
			name = fieldName
		}
		return Specs{common.apply(Spec{
			Kind:   role.kind,
			Name:   name,
			Target: target,
		})}, nil

	case optionRole:
		spec, err := getOptionSpec(fieldValue, role)
		if err != nil {
			return nil, err
		}
		if spec.Name != "" {
			spec.Name = parentPrefix + spec.Name
		}
		return Specs{common.apply(spec)}, nil
	}
	return nil, nil
}

func (c commonTags) apply(spec Spec) Spec {
	spec.Usage = c.usage
	spec.Help = c.help
	spec.ValueName = c.valueName
	return spec
}

func getOptionSpec(fieldValue reflect.Value, role optionRole) (Spec, error) {
	spec := Spec{
		Name:        role.name,
		Alias:       role.alias,
		Kind:        role.kind,
		SwitchValue: role.switchValue,
	}
	inferredKind := KindNone
	switch p := fieldValue.Addr().Interface().(type) {
	case *bool:
		spec.Target, inferredKind = BoolVar(p), KindBool
	case *int:
		spec.Target, inferredKind = IntVar(p), KindAccumulator
		if role.hasSwitch {
			inferredKind = KindSwitch
		}
	case *string:
		spec.Target, inferredKind = StringVar(p), KindValue
	default:
		value, err := getFlagValue(fieldValue)
		if err != nil {
			return spec, err
		}
		spec.Target, inferredKind = FlagValue(value), KindValue
		if bf, ok := value.(boolFlag); ok && bf.IsBoolFlag() {
			inferredKind = KindBool
		}
	}
	if spec.Kind == KindNone {
		spec.Kind = inferredKind
	}
	if !fitsKind(spec.Target, spec.Kind) {
		return spec, fmt.Errorf("%s field can't be %s option", fieldValue.Type(), spec.Kind)
	}
	return spec, nil
}

func getPositionalTarget(fieldValue reflect.Value, kind Kind) (Target, error) {
	switch p := fieldValue.Addr().Interface().(type) {
	case *string:
		if kind == KindArg {
			return StringVar(p), nil
		}
	case *[]string:
		if kind == KindArgs {
			return StringsVar(p), nil
		}
	default:
		value, err := getFlagValue(fieldValue)
		if err != nil {
			return nil, err
		}
		return FlagValue(value), nil
	}
	return nil, fmt.Errorf("%s field can't be %s", fieldValue.Type(), kind)
}

type boolFlag interface {
	IsBoolFlag() bool
}

// getFlagValue returns flag.Value implemented by the field itself (non-nil pointer or interface)
// or by the pointer to the field
func getFlagValue(fieldValue reflect.Value) (flag.Value, error) {
	switch fieldValue.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value, ok := fieldValue.Interface().(flag.Value); ok {
			if fieldValue.IsNil() {
				return nil, errors.New("implements flag.Value but is nil")
			}
			return value, nil
		}
	}
	if value, ok := fieldValue.Addr().Interface().(flag.Value); ok {
		return value, nil
	}
	return nil, fmt.Errorf("unsupported field type %s", fieldValue.Type())
}

func getFieldName(parentFieldName, fieldName string) string {
	if parentFieldName == "" {
		return fieldName
	}
	return fmt.Sprintf("%s.%s", parentFieldName, fieldName)
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %s", res.Type())
	}
	return res, nil
}
