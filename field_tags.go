package optparse

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	optNamesTag    = "opt"
	optKindTag     = "optKind"
	optSwitchTag   = "optSwitch"
	optUsageTag    = "optUsage"
	optValueTag    = "optValue"
	optRequiredTag = "optRequired"
	optChoiceTag   = "optChoice"
	optStopTag     = "optStop"
	optOptionalTag = "optOptional"
	optHiddenTag   = "optHidden"
	optArgTag      = "optArg"
	optArgsTag     = "optArgs"
	optPrefixTag   = "optPrefix"
)

type fieldRole interface {
	getRoleTagName() string
}

// optionRole is a field tagged with "opt"
type optionRole struct {
	name        string
	alias       rune
	kind        Kind // KindNone if should be inferred from the field type
	switchValue int
	hasSwitch   bool
}

func (r optionRole) getRoleTagName() string {
	return optNamesTag
}

// positionalRole is a field tagged with "optArg" or "optArgs"
type positionalRole struct {
	kind Kind
	name string
}

func (r positionalRole) getRoleTagName() string {
	if r.kind == KindArgs {
		return optArgsTag
	}
	return optArgTag
}

type nestedStructRole struct {
	prefix string
}

func (r nestedStructRole) getRoleTagName() string {
	return optPrefixTag
}

// commonTags are applicable to options and positional args
type commonTags struct {
	usage     Usage
	help      string
	valueName string
}

func getFieldRole(field reflect.StructField) (fieldRole, commonTags, error) {
	tags := field.Tag
	var common commonTags

	names, hasNames := tags.Lookup(optNamesTag)
	if names == "-" {
		hasNames = false
	}
	argName, hasArg := tags.Lookup(optArgTag)
	argsName, hasArgs := tags.Lookup(optArgsTag)
	prefix, hasPrefix := tags.Lookup(optPrefixTag)

	behaviorTagsCount := trueCount(hasNames, hasArg, hasArgs, hasPrefix)
	if behaviorTagsCount == 0 {
		return nil, common, nil
	}
	if behaviorTagsCount > 1 {
		return nil, common, fmt.Errorf(
			`only one of "%s", "%s", "%s", "%s" tags can be used`,
			optNamesTag, optArgTag, optArgsTag, optPrefixTag,
		)
	}
	if hasPrefix {
		for _, tagName := range []string{
			optKindTag, optSwitchTag, optUsageTag, optValueTag, optRequiredTag,
			optChoiceTag, optStopTag, optOptionalTag, optHiddenTag,
		} {
			if _, has := tags.Lookup(tagName); has {
				return nil, common, fmt.Errorf(`"%s" tag can't be used with "%s" tag`, tagName, optPrefixTag)
			}
		}
		return nestedStructRole{prefix: prefix}, common, nil
	}

	var err error
	if common, err = getCommonTags(tags); err != nil {
		return nil, common, err
	}

	if hasArg || hasArgs {
		for _, tagName := range []string{optKindTag, optSwitchTag, optOptionalTag} {
			if _, has := tags.Lookup(tagName); has {
				return nil, common, fmt.Errorf(
					`"%s" tag can be used only with "%s" tag`, tagName, optNamesTag,
				)
			}
		}
		if hasArgs {
			return positionalRole{kind: KindArgs, name: argsName}, common, nil
		}
		return positionalRole{kind: KindArg, name: argName}, common, nil
	}

	role := optionRole{}
	if role.name, role.alias, err = parseOptNames(names); err != nil {
		return nil, common, err
	}
	if kindName, hasKind := tags.Lookup(optKindTag); hasKind {
		if role.kind, err = parseKind(kindName); err != nil {
			return nil, common, err
		}
	}
	if switchStr, hasSwitch := tags.Lookup(optSwitchTag); hasSwitch {
		if role.switchValue, err = strconv.Atoi(switchStr); err != nil {
			return nil, common, fmt.Errorf(`invalid "%s" tag int value: "%s"`, optSwitchTag, switchStr)
		}
		role.hasSwitch = true
	}
	return role, common, nil
}

func getCommonTags(tags reflect.StructTag) (res commonTags, err error) {
	res.help = tags.Get(optUsageTag)
	res.valueName = tags.Get(optValueTag)
	for tagName, usage := range map[string]Usage{
		optRequiredTag: UsageRequired,
		optChoiceTag:   UsageChoice,
		optStopTag:     UsageStopParsing,
		optOptionalTag: UsageValueOptional,
		optHiddenTag:   UsageHidden,
	} {
		isSet, _, err := getBoolTag(tags, tagName)
		if err != nil {
			return res, err
		}
		if isSet {
			res.usage |= usage
		}
	}
	return res, nil
}

// parseOptNames parses "name,n": a one-character item is the alias, another one is the long name
func parseOptNames(namesStr string) (name string, alias rune, err error) {
	for _, item := range strings.Split(namesStr, ",") {
		item = strings.TrimSpace(item)
		switch {
		case item == "":
			continue
		case utf8.RuneCountInString(item) == 1:
			if alias != 0 {
				return "", 0, fmt.Errorf(`multiple aliases in "%s" tag: "%s"`, optNamesTag, namesStr)
			}
			alias, _ = utf8.DecodeRuneInString(item)
		default:
			if name != "" {
				return "", 0, fmt.Errorf(`multiple names in "%s" tag: "%s"`, optNamesTag, namesStr)
			}
			name = item
		}
	}
	if name == "" && alias == 0 {
		return "", 0, fmt.Errorf(`empty "%s" tag`, optNamesTag)
	}
	return name, alias, nil
}

func parseKind(kindName string) (Kind, error) {
	for _, kind := range []Kind{KindBool, KindSwitch, KindAccumulator, KindValue} {
		if kind.String() == kindName {
			return kind, nil
		}
	}
	return KindNone, fmt.Errorf(`invalid "%s" tag value: "%s"`, optKindTag, kindName)
}

func getBoolTag(tags reflect.StructTag, tagName string) (val bool, exists bool, err error) {
	var strVal string
	if strVal, exists = tags.Lookup(tagName); strVal != "" {
		if val, err = strconv.ParseBool(strVal); err != nil {
			return false, exists,
				fmt.Errorf(`invalid "%s" tag bool value: "%s"`, tagName, strVal)
		}
	}
	return val, exists, nil
}

func trueCount(values ...bool) (res int) {
	for _, v := range values {
		if v {
			res++
		}
	}
	return res
}
