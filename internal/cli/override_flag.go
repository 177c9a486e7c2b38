package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/pflag"
)

// overrideFlag collects repeated --override category=H:MM values. The last
// value given for a category wins.
type overrideFlag struct {
	values map[domain.TimeCategory]string
}

var _ pflag.Value = (*overrideFlag)(nil)

func newOverrideFlag() *overrideFlag {
	return &overrideFlag{values: make(map[domain.TimeCategory]string)}
}

func (f *overrideFlag) Set(v string) error {
	name, text, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("expected category=H:MM, got %q", v)
	}
	category, err := domain.ParseCategory(name)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if _, err := domain.ParseClock(text); err != nil {
		return err
	}
	f.values[category] = text
	return nil
}

func (f *overrideFlag) String() string {
	var parts []string
	for _, c := range domain.Categories {
		if v, ok := f.values[c]; ok {
			parts = append(parts, string(c)+"="+v)
		}
	}
	return strings.Join(parts, ",")
}

func (f *overrideFlag) Type() string { return "category=H:MM" }

func (f *overrideFlag) Len() int { return len(f.values) }

// Values returns a copy of the collected overrides.
func (f *overrideFlag) Values() map[domain.TimeCategory]string {
	out := make(map[domain.TimeCategory]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
