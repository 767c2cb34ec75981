package quiz

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configure the inputs offered next to the free-text field.
type Options struct {
	// Suggestions are shown as chips; picking one searches immediately.
	Suggestions []string `yaml:"suggestions"`
	// Genders populate the gender selector. The first entry is the default.
	Genders []string `yaml:"genders"`
}

func DefaultOptions() Options {
	return Options{
		Suggestions: []string{
			`"Fresh citrus for a summer day"`,
			`"Warm vanilla and amber for winter nights"`,
			`"Smoky leather and tobacco"`,
			`"Clean aquatic office scent"`,
			`"Spicy oud for evenings out"`,
		},
		Genders: []string{GenderAll, "Male", "Female", "Unisex"},
	}
}

// DefaultGender is the gender selected before the user changes it.
func (o Options) DefaultGender() string {
	if len(o.Genders) == 0 {
		return GenderAll
	}
	return o.Genders[0]
}

// Suggestion returns the query text of the i-th suggestion.
func (o Options) Suggestion(i int) (text string, ok bool) {
	if i < 0 || i >= len(o.Suggestions) {
		return "", false
	}
	text = SuggestionText(o.Suggestions[i])
	return text, text != ""
}

// LoadOptions reads options from a YAML file. Fields missing from the file
// keep their defaults. An empty name returns the defaults.
func LoadOptions(name string) (o Options, err error) {
	o = DefaultOptions()
	if name == "" {
		return o, nil
	}
	f, err := os.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return o, fmt.Errorf("quiz: failed to open options file: %w", err)
	}
	defer f.Close()
	var fromFile Options
	if err = yaml.NewDecoder(f).Decode(&fromFile); err != nil && !errors.Is(err, io.EOF) {
		return o, fmt.Errorf("quiz: failed to decode options file %q: %w", name, err)
	}
	if len(fromFile.Suggestions) > 0 {
		o.Suggestions = fromFile.Suggestions
	}
	if len(fromFile.Genders) > 0 {
		o.Genders = fromFile.Genders
	}
	return o, nil
}
