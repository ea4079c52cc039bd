package ui

import (
	"sort"

	"github.com/yacobolo/cssvariant"
)

// Parts maps each compound component to its named parts. It is sealed once
// the package is initialized.
var Parts = cssvariant.NewRegistry[*Component]()

var catalog = map[string]*Component{}

func init() {
	attach := func(owner *Component, parts map[string]*Component) {
		names := make([]string, 0, len(parts))
		for name := range parts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := Parts.Attach(owner, name, parts[name]); err != nil {
				panic(err)
			}
		}
	}

	attach(Alert, map[string]*Component{
		"Icon":        AlertIcon,
		"Title":       AlertTitle,
		"Description": AlertDescription,
		"Content":     AlertContent,
	})
	attach(Card, map[string]*Component{
		"Header":      CardHeader,
		"Title":       CardTitle,
		"Description": CardDescription,
		"Content":     CardContent,
		"Footer":      CardFooter,
	})
	attach(ButtonGroup, map[string]*Component{
		"Text":      ButtonGroupText,
		"Separator": ButtonGroupSeparator,
	})
	attach(ToggleGroup, map[string]*Component{
		"Item": ToggleGroupItem,
	})
	attach(Skeleton, map[string]*Component{
		"Text":   SkeletonText,
		"Card":   SkeletonCard,
		"Avatar": SkeletonAvatar,
	})
	Parts.Seal()

	for _, c := range []*Component{
		Button, Badge,
		Alert, AlertIcon, AlertTitle, AlertDescription, AlertContent,
		Card, CardHeader, CardTitle, CardDescription, CardContent, CardFooter,
		Toggle, ToggleGroup, ToggleGroupItem,
		ButtonGroup, ButtonGroupText, ButtonGroupSeparator,
		Input,
		Skeleton, SkeletonText, SkeletonCard, SkeletonAvatar,
	} {
		catalog[c.name] = c
	}
}

// Lookup returns the catalog component named name ("card-header").
func Lookup(name string) (*Component, bool) {
	c, ok := catalog[name]
	return c, ok
}

// Names returns every catalog name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
