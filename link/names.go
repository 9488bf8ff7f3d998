package link

import (
	"regexp"
	"strings"
)

var (
	quoteReplacer = strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "")

	// "SMITH 1-14H", "SMITH #1-14H", "SMITH # 2"
	wellNumberRe = regexp.MustCompile(`^(.*[^\s#])\s+(#?)\s*(\d[0-9A-Z-]*)$`)
)

// nameVariants holds the spellings a well name is searched under.
type nameVariants struct {
	// exact spellings, upper-cased.
	exact []string

	// base is the name without its well number, used as a prefix.
	base string
}

// variants expands a reported well name. Quotes are dropped and the "#"
// before a trailing well number is toggled, so "Smith #1-14H" and
// "SMITH 1-14H" find each other.
func variants(name string) nameVariants {
	name = strings.ToUpper(quoteReplacer.Replace(name))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nameVariants{}
	}

	v := nameVariants{exact: []string{name}}
	m := wellNumberRe.FindStringSubmatch(name)
	if m == nil {
		return v
	}
	base, hash, number := strings.TrimSpace(m[1]), m[2], m[3]
	if hash == "" {
		v.exact = append(v.exact, base+" #"+number)
	} else {
		v.exact = append(v.exact, base+" "+number)
		if alt := base + " #" + number; alt != name {
			v.exact = append(v.exact, alt)
		}
	}
	v.base = base
	return v
}

func (v nameVariants) empty() bool {
	return len(v.exact) == 0
}
