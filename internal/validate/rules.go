package validate

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func sharedEngine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
	})
	return engine
}

// Rule pairs a validator tag (for example "required" or "min=2") with the
// message reported when the value violates it.
type Rule struct {
	Tag     string `yaml:"tag" toml:"tag" validate:"required"`
	Message string `yaml:"message" toml:"message"`
}

type rulesSchema struct {
	rules []Rule
	v     *validator.Validate
}

// Rules builds a schema that checks every rule independently, so a value
// violating several rules reports one issue per rule in declaration order.
func Rules(rules ...Rule) Schema {
	dup := make([]Rule, len(rules))
	copy(dup, rules)
	return &rulesSchema{rules: dup, v: sharedEngine()}
}

func (s *rulesSchema) SafeParse(value any) Result {
	var issues []Issue
	for _, rule := range s.rules {
		if issue, failed := s.check(rule, value); failed {
			issues = append(issues, issue)
		}
	}
	return Result{Success: len(issues) == 0, Issues: issues}
}

func (s *rulesSchema) check(rule Rule, value any) (issue Issue, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			issue = Issue{Code: "invalid_rule", Message: fmt.Sprintf("invalid rule %q: %v", rule.Tag, r)}
			failed = true
		}
	}()
	if err := s.v.Var(value, rule.Tag); err != nil {
		msg := rule.Message
		if msg == "" {
			msg = defaultRuleMessage(rule.Tag, err)
		}
		return Issue{Code: rule.Tag, Message: msg}, true
	}
	return Issue{}, false
}

func defaultRuleMessage(tag string, err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return describe("value", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("value failed on the %q rule", tag)
}

func describe(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "len":
		return fmt.Sprintf("%s must have length %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "ip":
		return fmt.Sprintf("%s must be a valid IP address", field)
	}
	if param != "" {
		return fmt.Sprintf("%s failed on the %q rule (%s)", field, tag, param)
	}
	return fmt.Sprintf("%s failed on the %q rule", field, tag)
}
