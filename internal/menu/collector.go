package menu

import (
	"fmt"
	"strconv"
	"strings"

	"menukit/pkg/menutypes"
)

// PromptFunc obtains one line of raw text for a parameter. It is the
// injected I/O collaborator of the argument collector; all side effects of
// collection are confined to it. An error from the prompt (reader closed,
// interrupt) aborts collection.
type PromptFunc func(p menutypes.Param) (string, error)

var truthyWords = map[string]struct{}{
	"true": {}, "yes": {}, "y": {}, "1": {},
}

var falsyWords = map[string]struct{}{
	"false": {}, "no": {}, "n": {}, "0": {},
}

// Collect prompts for each parameter in declaration order and returns the
// fully-typed argument list ready for positional invocation. Empty input
// selects the parameter's default when one exists and fails with
// MissingArgumentError otherwise; non-empty input is cast per the declared
// kind. Only genuinely empty raw text counts as "no input": a list answer
// of whitespace and commas was supplied and yields an empty slice.
func Collect(params []menutypes.Param, prompt PromptFunc) ([]any, error) {
	args := make([]any, 0, len(params))
	for _, p := range params {
		raw, err := prompt(p)
		if err != nil {
			return nil, fmt.Errorf("reading argument %s: %w", p.Name, err)
		}
		raw = strings.TrimSpace(raw)

		if raw == "" {
			if p.HasDefault {
				args = append(args, p.Default)
				continue
			}
			return nil, &menutypes.MissingArgumentError{Param: p.Name}
		}

		value, err := castValue(p, raw)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return args, nil
}

// castValue converts trimmed non-empty text to the parameter's kind.
func castValue(p menutypes.Param, raw string) (any, error) {
	switch p.Kind {
	case menutypes.ParamInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &menutypes.CastError{Param: p.Name, Kind: p.Kind, Raw: raw}
		}
		return n, nil
	case menutypes.ParamFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &menutypes.CastError{Param: p.Name, Kind: p.Kind, Raw: raw}
		}
		return f, nil
	case menutypes.ParamBool:
		word := strings.ToLower(raw)
		if _, ok := truthyWords[word]; ok {
			return true, nil
		}
		if _, ok := falsyWords[word]; ok {
			return false, nil
		}
		return nil, &menutypes.CastError{Param: p.Name, Kind: p.Kind, Raw: raw}
	case menutypes.ParamList:
		return splitList(raw), nil
	default:
		// ParamString, ParamRaw, and the zero kind pass text through.
		return raw, nil
	}
}

// splitList splits on commas, trims each segment, and drops empty ones.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// PromptLabel renders the canonical prompt for a parameter, including its
// default when one exists: "size [5]: " or "name: ".
func PromptLabel(p menutypes.Param) string {
	if p.HasDefault {
		return fmt.Sprintf("%s [%v]: ", p.Name, p.Default)
	}
	return p.Name + ": "
}
