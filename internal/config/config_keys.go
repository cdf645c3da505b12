// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command, where settings are addressed by
// dotted keys such as "tags.attribute".

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/ftag/internal/validate"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"tags.attribute",
		"find.literal",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "tags.attribute":
		return c.Attribute(), nil
	case "find.literal":
		return strconv.FormatBool(c.FindLiteral()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "tags.attribute":
		if err := validate.Attribute(value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		c.Tags.Attribute = value
	case "find.literal":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: find.literal must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Find.Literal = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":    c.Author.Name,
		"author.email":   c.Author.Email,
		"tags.attribute": c.Attribute(),
		"find.literal":   strconv.FormatBool(c.FindLiteral()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "tags.attribute":
		return c.Tags.Attribute != ""
	case "find.literal":
		return c.Find.Literal != nil
	default:
		return false
	}
}
