package config

import "sort"

// Views are named starting selections.
var Views = map[string]AxesConfig{
	"default":           {X: "poverty", Y: "healthcare"},
	"poverty-smokes":    {X: "poverty", Y: "smokes"},
	"poverty-obesity":   {X: "poverty", Y: "obesity"},
	"age-healthcare":    {X: "age", Y: "healthcare"},
	"age-smokes":        {X: "age", Y: "smokes"},
	"age-obesity":       {X: "age", Y: "obesity"},
	"income-healthcare": {X: "income", Y: "healthcare"},
	"income-smokes":     {X: "income", Y: "smokes"},
	"income-obesity":    {X: "income", Y: "obesity"},
}

func GetView(name string) (AxesConfig, bool) {
	v, ok := Views[name]
	return v, ok
}

func ListViews() []string {
	names := make([]string, 0, len(Views))
	for name := range Views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyView replaces the initial axes with a named view.
func (c *Config) ApplyView(name string) bool {
	v, ok := GetView(name)
	if !ok {
		return false
	}
	c.Initial = v
	return true
}
