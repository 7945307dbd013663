package recipe

type yamlRecipe struct {
	Name string   `yaml:"name"`
	Data []string `yaml:"data"`

	SpecialChars    []string `yaml:"special_chars"`
	AllSpecialChars bool     `yaml:"all_special_chars"`

	Numbers      string `yaml:"numbers"`
	NumberLength int    `yaml:"number_length"`

	ToggleCase      bool `yaml:"toggle_case"`
	CapitalizeIndex *int `yaml:"capitalize_index"`
	Leet            bool `yaml:"leet"`
	Audibles        bool `yaml:"audibles"`

	Output string `yaml:"output"`
}
