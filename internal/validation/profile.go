package validation

import "strings"

// Messages recorded by the built-in profiles.
const (
	MsgMustBeSupplied  = "must be supplied"
	MsgMustBeValidDate = "must be a valid date"
)

// CheckFunc reports whether the raw input satisfies a rule.
type CheckFunc func(in Input) bool

// Rule ties a single named field to one predicate and the message
// recorded when the predicate fails.
type Rule struct {
	Field   string
	OK      CheckFunc
	Message string
}

// Profile is an ordered rule table. Rules are evaluated in declaration
// order; every failing rule appends its message to its field's list, so
// multiple violated rules on one field accumulate in evaluation order.
type Profile struct {
	rules []Rule
}

// NewProfile builds a profile from the given rules. Rule order is
// significant: it fixes both message accumulation order and the field
// order of the resulting error map.
func NewProfile(rules ...Rule) Profile {
	return Profile{rules: rules}
}

// Apply evaluates the profile against the input. When every rule passes
// it returns the normalized, typed fields and a nil error map; otherwise
// the Normalized value is zero and the error map carries each failing
// field in profile declaration order.
func (p Profile) Apply(in Input) (Normalized, *FieldErrors) {
	var errs *FieldErrors

	for _, rule := range p.rules {
		if rule.OK(in) {
			continue
		}
		if errs == nil {
			errs = &FieldErrors{}
		}
		errs.Add(rule.Field, rule.Message)
	}

	if errs != nil {
		return Normalized{}, errs
	}

	normalized := Normalized{
		Title: derefString(in.Title),
		Body:  derefString(in.Body),
	}
	if in.PublishedAt != nil {
		// Rules guarantee the value parses by the time we get here.
		if ts, ok := parseTime(*in.PublishedAt); ok {
			normalized.PublishedAt = &ts
		}
	}

	return normalized, nil
}

// CreateProfile validates input for new posts: title and body must carry
// text, and the publication time is optional but must parse when given.
var CreateProfile = NewProfile(
	Rule{Field: "title", OK: titleSupplied, Message: MsgMustBeSupplied},
	Rule{Field: "body", OK: bodySupplied, Message: MsgMustBeSupplied},
	Rule{Field: "publishedAt", OK: publishedAtParsesIfPresent, Message: MsgMustBeValidDate},
)

// UpdateProfile validates the merged result of overlaying a patch on an
// existing post. The publication time is required here: a missing or
// unparsable value is an error, never defaulted.
var UpdateProfile = NewProfile(
	Rule{Field: "title", OK: titleSupplied, Message: MsgMustBeSupplied},
	Rule{Field: "body", OK: bodySupplied, Message: MsgMustBeSupplied},
	Rule{Field: "publishedAt", OK: publishedAtParses, Message: MsgMustBeValidDate},
)

// A field that is present but blank is treated the same as an absent one.
func hasText(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

func titleSupplied(in Input) bool {
	return hasText(in.Title)
}

func bodySupplied(in Input) bool {
	return hasText(in.Body)
}

func publishedAtParsesIfPresent(in Input) bool {
	if in.PublishedAt == nil {
		return true
	}
	_, ok := parseTime(*in.PublishedAt)
	return ok
}

func publishedAtParses(in Input) bool {
	if in.PublishedAt == nil {
		return false
	}
	_, ok := parseTime(*in.PublishedAt)
	return ok
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
