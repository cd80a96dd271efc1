// Package validation implements the explicit field-level rule sets run by
// handlers before any storage call. Rules are plain functions keyed by
// field name; a failed rule contributes a message to the returned
// Problems map. Validating the same payload twice always yields the same
// problems.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/user/provider-registry/internal/domain"
)

// Problems maps a field name to the messages describing its violations.
// An empty (or nil) Problems means the payload is valid.
type Problems map[string][]string

// Rule checks a single string value and returns a violation message, or
// "" when the value passes.
type Rule func(value string) string

// RuleSet associates each field name with the rules applied to it.
type RuleSet map[string][]Rule

// Validate runs every rule against the matching field value and collects
// the violations. Returns nil when all rules pass.
func (rs RuleSet) Validate(fields map[string]string) Problems {
	var problems Problems
	for field, rules := range rs {
		for _, rule := range rules {
			if msg := rule(fields[field]); msg != "" {
				if problems == nil {
					problems = Problems{}
				}
				problems[field] = append(problems[field], msg)
			}
		}
	}
	return problems
}

// Required rejects blank values.
func Required() Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "must not be empty"
		}
		return ""
	}
}

// MaxLength rejects values longer than max characters.
func MaxLength(max int) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return fmt.Sprintf("must be at most %d characters", max)
		}
		return ""
	}
}

// MinLength rejects non-blank values shorter than min characters.
func MinLength(min int) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if utf8.RuneCountInString(value) < min {
			return fmt.Sprintf("must be at least %d characters", min)
		}
		return ""
	}
}

// Email rejects values without a plausible mailbox@domain shape.
func Email() Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		at := strings.Index(value, "@")
		if at <= 0 || at == len(value)-1 || strings.ContainsAny(value, " \t") {
			return "must be a valid email address"
		}
		return ""
	}
}

// ProviderRules is the rule set applied to incoming provider records.
var ProviderRules = RuleSet{
	"name":     {Required(), MaxLength(200)},
	"document": {Required(), MaxLength(14)},
}

// CredentialRules is the rule set applied to register requests.
var CredentialRules = RuleSet{
	"email":    {Required(), Email()},
	"password": {Required(), MinLength(8)},
}

// CheckProvider validates a provider record for persistence.
func CheckProvider(p *domain.Provider) Problems {
	return ProviderRules.Validate(map[string]string{
		"name":     p.Name,
		"document": p.Document,
	})
}

// CheckCredentials validates a register request.
func CheckCredentials(email, password string) Problems {
	return CredentialRules.Validate(map[string]string{
		"email":    email,
		"password": password,
	})
}
