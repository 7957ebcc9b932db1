package config

type CharactersConfig struct {
	Archetypes []ArchetypeDef `yaml:"archetypes"`
}

type ArchetypeDef struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	MaxHP   int      `yaml:"max_hp"`
	MaxSP   int      `yaml:"max_sp"`
	Defense int      `yaml:"defense"`
	Attack  SkillDef `yaml:"attack"`
	Special SkillDef `yaml:"special"`
}

type SkillDef struct {
	Cost   int `yaml:"cost"`
	Damage int `yaml:"damage"`
}
