// Package content generates synthetic notification text.
//
// A Table maps each category to independent lists of candidate titles and
// descriptions. The built-in table is embedded from content.yaml; custom
// tables can be parsed with ParseTable or LoadTable.
//
// Generator picks one title and one description uniformly at random. Picker
// draws a category from ordered Weights by walking the list and subtracting
// each weight from a uniform value, falling back to the last category.
//
//	gen, _ := content.NewGenerator(content.WithRand(rand.New(rand.NewSource(1))))
//	picker, _ := content.NewPicker(content.DefaultWeights())
//
//	c, _ := gen.Generate(picker.Pick())
//	fmt.Println(c.Title, c.Description)
package content
